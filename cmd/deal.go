package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/dealer/internal/console"
	"github.com/arcanaland/dealer/internal/deck"
)

// dealCmd represents the deal command
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal four cards and record them",
	Long: `Deal shuffles a fresh deck, deals four cards, prints them and appends
them to the deal log. Use --count to deal several hands from the same deck.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be at least 1, got %d", count)
		}

		d, err := newDeck(settings)
		if err != nil {
			return err
		}
		dealLog := newDealLog(settings)
		out := cmd.OutOrStdout()

		for i := 0; i < count; i++ {
			hand, err := d.Deal()
			if errors.Is(err, deck.ErrDeckEmpty) {
				fmt.Fprintln(out, "Sorry, the deck is empty")
				break
			}

			if count > 1 {
				fmt.Fprintf(out, "Hand %d:\n", i+1)
			}
			console.PrintHand(out, hand)
			dealLog.Append(hand)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().IntP("count", "n", 1, "number of hands to deal")
}
