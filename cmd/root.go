package cmd

import (
	"github.com/spf13/cobra"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/engine"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/leaderboard"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyflux",
	Short: "Learning progress engine for spaced repetition study",
	Long: "StudyFlux tracks flashcard reviews, points, streaks, achievements\n" +
		"and leaderboards for study sessions, all in a local SQLite database.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYFLUX_DB env var)")

	rootCmd.AddCommand(learnerCmd)
	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDYFLUX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openEngine opens the store and builds the engine with an attached
// leaderboard service. The returned close func must be deferred.
func openEngine(cmd *cobra.Command) (*engine.Engine, *leaderboard.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}
	repos := st.Repos()
	boards := leaderboard.NewService(repos.Learners, repos.Ledger)
	eng := engine.New(st, engine.WithLeaderboard(boards))
	return eng, boards, func() { st.Close() }, nil
}
