package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var learnerCmd = &cobra.Command{
	Use:   "learner",
	Short: "Manage learner profiles",
}

var learnerAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		id, _ := cmd.Flags().GetString("id")
		rec, err := eng.CreateLearner(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created learner %s (%s)\n", styleTitle.Render(rec.Name), rec.ID)
		return nil
	},
}

var learnerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List learners by points",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		limit, _ := cmd.Flags().GetInt("limit")
		learners, err := eng.Learners(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(learners) == 0 {
			fmt.Println(styleDim.Render("No learners yet. Add one with: studyflux learner add <name>"))
			return nil
		}

		rows := make([][]string, 0, len(learners))
		for _, l := range learners {
			rows = append(rows, []string{
				l.ID,
				l.Name,
				strconv.Itoa(l.Points),
				strconv.Itoa(l.Level),
				strconv.Itoa(l.Streak),
			})
		}
		fmt.Print(renderTable([]string{"ID", "NAME", "POINTS", "LEVEL", "STREAK"}, rows))
		return nil
	},
}

func init() {
	learnerAddCmd.Flags().String("id", "", "Explicit learner ID (default: generated UUID)")
	learnerListCmd.Flags().Int("limit", 0, "Maximum learners to list (0 = all)")

	learnerCmd.AddCommand(learnerAddCmd)
	learnerCmd.AddCommand(learnerListCmd)
}
