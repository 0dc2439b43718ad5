package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show hands recorded in the deal log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		last, _ := cmd.Flags().GetInt("last")

		records, err := newDealLog(settings).Last(last)
		if err != nil {
			return fmt.Errorf("error reading deal log: %v", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintf(out, "No deals recorded in %s\n", settings.LogFile)
			return nil
		}

		for _, r := range records {
			fmt.Fprintf(out, "%s  %s\n", color.CyanString("%s", r.Stamp), r.Cards)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("last", "l", 0, "only show the most recent hands")
}
