package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/deallog"
	"github.com/arcanaland/dealer/internal/deck"
)

func newSession(t *testing.T, input string, policy deck.Policy) (*Session, *bytes.Buffer, string) {
	t.Helper()

	color.NoColor = true
	logger, _ := test.NewNullLogger()

	d := deck.New(deck.WithLogger(logger), deck.WithPolicy(policy))
	require.NoError(t, d.Initialize())

	path := filepath.Join(t.TempDir(), "CardsDealt.txt")
	clock := func() time.Time { return time.Date(2024, time.February, 8, 9, 30, 0, 0, time.Local) }

	out := &bytes.Buffer{}
	return &Session{
		Deck:   d,
		Log:    deallog.New(path, deallog.WithClock(clock), deallog.WithLogger(logger)),
		In:     strings.NewReader(input),
		Out:    out,
		Logger: logger,
	}, out, path
}

func TestRun_DealThenQuit(t *testing.T) {
	a := assert.New(t)

	s, out, path := newSession(t, "deal\n\nquit\nd\n", deck.ShuffleAndReplace)
	require.NoError(t, s.Run())

	text := out.String()
	a.True(strings.HasPrefix(text, welcome+"\n"))
	a.Equal(2, strings.Count(text, "Card 1: "))
	a.Equal(2, strings.Count(text, "Card 4: "))
	a.True(strings.HasSuffix(text, goodbye+"\n"))

	records, err := s.Log.Records()
	require.NoError(t, err)
	a.Len(records, 2)
	for _, r := range records {
		a.Len(r.Cards, card.HandSize)
		a.NoError(r.Cards.Distinct())
	}

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	a.Equal(4, strings.Count(string(b), "\n"))
}

func TestRun_UnknownCommandAndEOF(t *testing.T) {
	a := assert.New(t)

	s, out, path := newSession(t, "shuffle\nhelp", deck.ShuffleAndReplace)
	s.Prompt = true
	require.NoError(t, s.Run())

	text := out.String()
	a.Contains(text, "Unknown command: shuffle\n")
	a.Equal(3, strings.Count(text, usage))
	a.Equal(3, strings.Count(text, "> "))
	a.True(strings.HasSuffix(text, goodbye+"\n"))

	_, err := os.Stat(path)
	a.True(os.IsNotExist(err))
}

func TestRun_DeckRunsOut(t *testing.T) {
	a := assert.New(t)

	s, out, _ := newSession(t, strings.Repeat("d\n", 14)+"q\n", deck.RemovePermanently)
	require.NoError(t, s.Run())

	a.Equal(13, strings.Count(out.String(), "Card 1: "))
	a.Contains(out.String(), "Sorry, the deck is empty\n")

	records, err := s.Log.Records()
	require.NoError(t, err)
	a.Len(records, 13)
}

func TestPrintHand(t *testing.T) {
	color.NoColor = true

	hand, err := card.ParseHand("AS, 10H")
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	PrintHand(buf, hand)
	assert.Equal(t, "Card 1: A♠  Ace of Spades (AS)\nCard 2: 10♥  Ten of Hearts (10H)\n", buf.String())
}
