package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements <learner-id>",
	Short: "Show achievement progress for a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		progress, err := eng.AchievementProgress(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		unlocked := 0
		rows := make([][]string, 0, len(progress))
		for _, p := range progress {
			status := fmt.Sprintf("%s %d/%d", progressBar(p.Fraction, 10), p.Current, p.Target)
			if p.Unlocked {
				status = styleGood.Render("unlocked")
				unlocked++
			}
			rows = append(rows, []string{
				p.Definition.Icon,
				p.Definition.Name,
				string(p.Definition.Tier),
				fmt.Sprintf("%d", p.Definition.Points),
				status,
			})
		}
		fmt.Print(renderTable([]string{"", "ACHIEVEMENT", "TIER", "PTS", "PROGRESS"}, rows))
		fmt.Println(styleDim.Render(fmt.Sprintf("%d of %d unlocked", unlocked, len(progress))))
		return nil
	},
}
