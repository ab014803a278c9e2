package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats <learner-id>",
	Short: "Show a learner's progress snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		stats, err := eng.Stats(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		l := stats.Learner

		fmt.Println(styleTitle.Render(l.Name))
		fmt.Printf("Level %d  %s  %d points (%d to next level)\n",
			l.Level, progressBar(stats.LevelProgress, 10), l.Points, stats.PointsToNextLevel)

		streakLine := fmt.Sprintf("Streak: %s", plural(l.Streak, "day"))
		if stats.StreakAtRisk {
			streakLine += "  " + styleWarn.Render("at risk — study today to keep it!")
		}
		fmt.Println(streakLine)

		fmt.Printf("Documents: %d  Reviews: %d  Sessions: %d  Quizzes: %d  Notes: %d\n",
			stats.Aggregates.Documents, stats.Aggregates.FlashcardsReviewed,
			stats.Aggregates.StudySessions, stats.Aggregates.QuizzesCompleted,
			stats.Aggregates.NotesCreated)
		fmt.Printf("Achievements: %d  Cards due: %d\n", stats.Achievements, stats.CardsDue)
		return nil
	},
}
