package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/N1KH1LT0X1N/StudyFlux/internal/srs"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage flashcards",
}

var cardAddCmd = &cobra.Command{
	Use:   "add <learner-id>",
	Short: "Add a flashcard for a learner",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		front, _ := cmd.Flags().GetString("front")
		back, _ := cmd.Flags().GetString("back")
		if front == "" || back == "" {
			return fmt.Errorf("both --front and --back are required")
		}

		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		card, err := eng.CreateCard(cmd.Context(), args[0], front, back)
		if err != nil {
			return err
		}
		fmt.Printf("Created card %s (due now)\n", card.ID)
		return nil
	},
}

var cardDueCmd = &cobra.Command{
	Use:   "due <learner-id>",
	Short: "List cards due for review, most overdue first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, _, closeStore, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		cards, err := eng.DueCards(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println(styleGood.Render("All caught up — no cards due."))
			return nil
		}

		rows := make([][]string, 0, len(cards))
		for _, c := range cards {
			rows = append(rows, []string{
				c.ID,
				c.Front,
				srs.DifficultyLabel(c.IntervalDays),
				fmt.Sprintf("%d", c.Repetitions),
				fmt.Sprintf("%d%%", srs.EstimateRetention(c.EasinessFactor)),
				c.NextReviewAt.Format(time.DateOnly),
			})
		}
		fmt.Print(renderTable([]string{"ID", "FRONT", "STAGE", "REPS", "RETENTION", "DUE"}, rows))
		fmt.Println(styleDim.Render(plural(len(cards), "card") + " due"))
		return nil
	},
}

func init() {
	cardAddCmd.Flags().String("front", "", "Card front (prompt)")
	cardAddCmd.Flags().String("back", "", "Card back (answer)")

	cardCmd.AddCommand(cardAddCmd)
	cardCmd.AddCommand(cardDueCmd)
}
