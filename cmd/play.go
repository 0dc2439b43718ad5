package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/dealer/internal/console"
)

// playCmd represents the interactive console
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Deal hands interactively until you quit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeck(settings)
		if err != nil {
			return err
		}

		s := &console.Session{
			Deck:   d,
			Log:    newDealLog(settings),
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Prompt: term.IsTerminal(int(os.Stdin.Fd())),
			Logger: logrus.StandardLogger(),
		}

		return s.Run()
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}
