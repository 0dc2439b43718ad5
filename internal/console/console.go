package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/deallog"
	"github.com/arcanaland/dealer/internal/deck"
)

const (
	welcome = "Welcome to the Card Dealing Program!"
	goodbye = "Thanks for playing! Goodbye!"
	usage   = "Press Enter or type 'deal' to deal cards, 'quit' to exit."
)

var suitSymbols = map[string]string{
	"S": "♠",
	"H": "♥",
	"D": "♦",
	"C": "♣",
}

var (
	red   = color.New(color.FgHiRed, color.Bold)
	black = color.New(color.FgHiWhite, color.Bold)
	cyan  = color.New(color.FgCyan)
)

// Session is an interactive deal/quit loop over a deck and a log
type Session struct {
	Deck   *deck.Deck
	Log    *deallog.Log
	In     io.Reader
	Out    io.Writer
	Prompt bool // print a prompt before each read
	Logger logrus.FieldLogger
}

// Run reads commands until quit or EOF
func (s *Session) Run() error {
	fmt.Fprintln(s.Out, welcome)
	fmt.Fprintln(s.Out, usage)

	scanner := bufio.NewScanner(s.In)
	for {
		if s.Prompt {
			cyan.Fprint(s.Out, "> ")
		}

		if !scanner.Scan() {
			break
		}

		switch cmd := strings.ToLower(strings.TrimSpace(scanner.Text())); cmd {
		case "", "d", "deal":
			s.Deal()
		case "q", "quit", "exit":
			fmt.Fprintln(s.Out, goodbye)
			return nil
		case "h", "help", "?":
			fmt.Fprintln(s.Out, usage)
		default:
			fmt.Fprintf(s.Out, "Unknown command: %s\n", cmd)
			fmt.Fprintln(s.Out, usage)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	fmt.Fprintln(s.Out, goodbye)
	return nil
}

// Deal deals one hand, prints it and records it
func (s *Session) Deal() card.Hand {
	hand, err := s.Deck.Deal()
	if errors.Is(err, deck.ErrDeckEmpty) {
		fmt.Fprintln(s.Out, "Sorry, the deck is empty")
	} else if err != nil {
		s.logger().WithError(err).Error("deal failed")
	}

	PrintHand(s.Out, hand)
	s.Log.Append(hand)
	return hand
}

func (s *Session) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

// PrintHand writes each card on its own line with its suit symbol
func PrintHand(w io.Writer, hand card.Hand) {
	for i, c := range hand {
		fmt.Fprintf(w, "Card %d: ", i+1)
		SuitColor(c).Fprint(w, c.Rank+suitSymbols[c.Suit])
		fmt.Fprintf(w, "  %s (%s)\n", c.Name(), c.Code())
	}
}

// SuitColor returns the colour a card is drawn in
func SuitColor(c card.Card) *color.Color {
	if c.Red() {
		return red
	}
	return black
}
