package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the points leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		periodFlag, _ := cmd.Flags().GetString("period")
		period, err := leaderboard.ParsePeriod(periodFlag)
		if err != nil {
			return err
		}
		limit, _ := cmd.Flags().GetInt("limit")

		_, boards, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		entries, err := boards.Top(cmd.Context(), period, limit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println(styleDim.Render("No activity in this period."))
			return nil
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				strconv.Itoa(e.Rank),
				e.Name,
				strconv.Itoa(e.Points),
				strconv.Itoa(e.Level),
				strconv.Itoa(e.Streak),
			})
		}
		fmt.Println(styleTitle.Render(fmt.Sprintf("Leaderboard — %s", period)))
		fmt.Print(renderTable([]string{"#", "NAME", "POINTS", "LEVEL", "STREAK"}, rows))
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().String("period", "alltime", "Ranking period: weekly, monthly, or alltime")
	leaderboardCmd.Flags().Int("limit", 10, "Number of entries to show")
}
