package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/leaderboard"
)

var rankCmd = &cobra.Command{
	Use:   "rank <learner-id>",
	Short: "Show a learner's leaderboard rank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		periodFlag, _ := cmd.Flags().GetString("period")
		period, err := leaderboard.ParsePeriod(periodFlag)
		if err != nil {
			return err
		}

		_, boards, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		rank, ranked, err := boards.RankOf(cmd.Context(), args[0], period)
		if err != nil {
			return err
		}
		if !ranked {
			fmt.Println(styleDim.Render(fmt.Sprintf("Not ranked for %s — no activity in this period.", period)))
			return nil
		}
		fmt.Printf("Rank #%d (%s)\n", rank, period)
		return nil
	},
}

func init() {
	rankCmd.Flags().String("period", "alltime", "Ranking period: weekly, monthly, or alltime")
}
