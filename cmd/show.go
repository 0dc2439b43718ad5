package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/console"
	"github.com/arcanaland/dealer/internal/images"
)

var showCmd = &cobra.Command{
	Use:   "show [card_code...]",
	Short: "Display cards with ANSI art rendered from their images",
	Long: `Show displays playing cards next to ANSI art rendered from the card image
directory. Images are looked up by card code, e.g. AS.png or 10H.jpg; a
pre-rendered 10H.ansi file is used instead when present.

Examples:
  dealer show AS
  dealer show --images ./cards 10H QD`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		imageDir, _ := cmd.Flags().GetString("images")
		if imageDir == "" {
			imageDir = settings.ImageDir
		}
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		if width < 1 || height < 1 {
			return fmt.Errorf("%w, got %dx%d", images.ErrBadSize, width, height)
		}

		if imageDir == "" {
			return fmt.Errorf("no image directory: set image_dir in %s or pass --images", settingsPath())
		}

		cards := make([]card.Card, len(args))
		for i, arg := range args {
			c, err := card.Parse(arg)
			if err != nil {
				return err
			}
			cards[i] = c
		}

		lib, missing, err := images.Load(imageDir)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			logrus.WithField("count", len(missing)).Debug("cards without images")
		}

		for _, c := range cards {
			art, err := lib.Ansi(c, width, height)
			if err != nil {
				// a missing image is reported but does not stop the other cards
				logrus.WithError(err).WithField("card", c.Code()).Error("error loading card art")
				art = ""
			}

			displayCard(cmd.OutOrStdout(), c, art)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().String("images", "", "card image directory (default image_dir from config)")
	showCmd.Flags().Int("width", 20, "art width in character cells")
	showCmd.Flags().Int("height", 14, "art height in character cells")
}

// termWidth is the width of w when it is a terminal, 80 otherwise
func termWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayCard prints the ANSI art on the left and card info on the right
func displayCard(w io.Writer, c card.Card, ansiArt string) {
	ansiLines := strings.Split(strings.TrimSuffix(ansiArt, "\n"), "\n")
	maxAnsiWidth := 0
	for _, line := range ansiLines {
		if n := utf8.RuneCountInString(images.StripAnsi(line)); n > maxAnsiWidth {
			maxAnsiWidth = n
		}
	}

	width := termWidth(w)

	infoLines := []string{
		colorize.CyanString("Card: ") + console.SuitColor(c).Sprint(c.Name()),
		colorize.CyanString("Code: ") + colorize.HiWhiteString("%s", c.Code()),
		colorize.CyanString("Rank: ") + colorize.HiWhiteString("%s", c.RankName()),
		colorize.CyanString("Suit: ") + colorize.HiWhiteString("%s", c.SuitName()),
	}

	spacing := 4
	infoStartCol := maxAnsiWidth + spacing
	if infoStartCol+20 > width {
		// not enough room beside the art, print info underneath
		infoStartCol = 0
		for _, line := range ansiLines {
			fmt.Fprintln(w, "  "+line)
		}
		ansiLines = nil
	}

	fmt.Fprintln(w)

	maxLines := max(len(ansiLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(w, "  ")
		if i < len(ansiLines) {
			fmt.Fprint(w, ansiLines[i])
			visibleWidth := utf8.RuneCountInString(images.StripAnsi(ansiLines[i]))
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Fprint(w, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(w, infoLines[i])
		}

		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
}
