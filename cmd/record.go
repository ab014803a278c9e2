package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/engine"
	"github.com/N1KH1LT0X1N/StudyFlux/internal/points"
)

var recordCmd = &cobra.Command{
	Use:   "record <action>",
	Short: "Record a study action for a learner",
	Long: "Appends one action to the learner's points ledger, advancing their\n" +
		"streak and unlocking any newly earned achievements. Known actions:\n" +
		"upload_document, complete_summary, ask_question, complete_quiz,\n" +
		"daily_login, create_note, complete_study_session.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID, _ := cmd.Flags().GetString("learner")
		if learnerID == "" {
			return fmt.Errorf("--learner is required")
		}

		action := args[0]
		amount, _ := cmd.Flags().GetInt("points")
		if !cmd.Flags().Changed("points") {
			base, ok := points.BaseAmount(action)
			if !ok {
				return fmt.Errorf("action %q has no base amount; pass --points explicitly", action)
			}
			amount = base
		}

		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		res, err := eng.RecordAction(cmd.Context(), learnerID, action, amount, nil)
		if err != nil {
			return err
		}

		fmt.Printf("+%d points for %s (total %d, level %d, streak %d)\n",
			res.PointsAwarded, action, res.NewTotal, res.NewLevel, res.Streak)
		printSettlement(res)
		return nil
	},
}

// printSettlement prints the side effects shared by record and review:
// level-ups, streak bonuses, and achievement unlocks.
func printSettlement(res *engine.ActionResult) {
	if res.LeveledUp {
		fmt.Println(styleGood.Render(fmt.Sprintf("Level up! Now level %d.", res.NewLevel)))
	}
	if res.StreakBonus > 0 {
		fmt.Println(styleGood.Render(fmt.Sprintf("%d day streak! +%d bonus points.",
			res.Streak, res.StreakBonus)))
	}
	for _, def := range res.Unlocked {
		fmt.Println(styleTitle.Render(fmt.Sprintf("%s  Achievement unlocked: %s (+%d)",
			def.Icon, def.Name, def.Points)))
	}
}

func init() {
	recordCmd.Flags().String("learner", "", "Learner ID performing the action")
	recordCmd.Flags().Int("points", 0, "Override the action's base point amount")
}
