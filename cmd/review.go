package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review <card-id>",
	Short: "Grade one flashcard recall (quality 0-5)",
	Long: "Grades a recall and reschedules the card: 0-2 resets the card to a\n" +
		"1 day interval, 3-5 grows it per the SM-2 schedule. Points are awarded\n" +
		"by quality (5 for easy, down to 1 for a failed recall).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		if learnerID == "" {
			return fmt.Errorf("--learner is required")
		}
		quality, _ := cmd.Flags().GetInt("quality")

		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		res, err := eng.SubmitReview(cmd.Context(), args[0], learnerID, quality)
		if err != nil {
			return err
		}

		if res.State.Repetitions == 0 {
			fmt.Println(styleWarn.Render("Missed — card resets to a 1 day interval."))
		} else {
			fmt.Println(styleGood.Render(fmt.Sprintf("Recalled — next review in %s.",
				plural(res.State.IntervalDays, "day"))))
		}
		fmt.Printf("+%d points (total %d, level %d)\n", res.PointsAwarded, res.NewTotal, res.NewLevel)
		printSettlement(&res.ActionResult)
		return nil
	},
}

func init() {
	reviewCmd.Flags().String("learner", "", "Learner ID reviewing the card")
	reviewCmd.Flags().Int("quality", 4, "Recall quality 0-5")
}
