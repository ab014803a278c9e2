package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learner data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes the entire database; re-run with --force to confirm")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println(styleDim.Render("Nothing to reset."))
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Printf("Removed %s\n", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deleting all data")
}
