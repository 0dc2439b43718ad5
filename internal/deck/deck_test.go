package deck

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/rng"
)

func newTestDeck(t *testing.T, opts ...Option) (*Deck, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	opts = append([]Option{WithLogger(logger)}, opts...)
	d := New(opts...)
	require.NoError(t, d.Initialize())
	return d, hook
}

func codeSet(cards []card.Card) map[string]bool {
	m := make(map[string]bool, len(cards))
	for _, c := range cards {
		m[c.Code()] = true
	}
	return m
}

func TestInitialize(t *testing.T) {
	a := assert.New(t)

	d := New()
	a.Equal(0, d.Remaining())
	a.NoError(d.Initialize())
	a.Equal(52, d.Remaining())
	a.Equal(card.All(), d.Cards())
	a.Len(codeSet(d.Cards()), 52)

	a.ErrorIs(d.Initialize(), ErrAlreadyInitialized)
	a.Equal(52, d.Remaining())
}

func TestDeal_ShuffleAndReplace(t *testing.T) {
	a := assert.New(t)

	d, hook := newTestDeck(t)
	a.Equal(ShuffleAndReplace, d.Policy())

	for i := 0; i < 100; i++ {
		hand, err := d.Deal()
		a.NoError(err)
		a.Len(hand, card.HandSize)
		a.NoError(hand.Distinct())
		a.Equal(52, d.Remaining())
		a.Len(codeSet(d.Cards()), 52)
	}

	entries := hook.AllEntries()
	a.Len(entries, 400)
	a.Regexp(`^Card 1: (10|[2-9JQKA])[SHDC]$`, entries[0].Message)
	a.Regexp(`^Card 4: `, entries[3].Message)
}

func TestDeal_Reported(t *testing.T) {
	a := assert.New(t)

	d, hook := newTestDeck(t)
	hand, err := d.Deal()
	a.NoError(err)

	entries := hook.AllEntries()
	a.Len(entries, 4)
	for i, c := range hand {
		a.Equal(logrus.DebugLevel, entries[i].Level)
		a.Equal("Card "+string(rune('1'+i))+": "+c.Code(), entries[i].Message)
	}
}

func TestDeal_Deterministic(t *testing.T) {
	a := assert.New(t)

	// always swapping with index 0 rotates the first card to the back
	d, _ := newTestDeck(t, WithGenerator(&rng.Sequence{Values: []int{0}}))
	hand, err := d.Deal()
	a.NoError(err)
	a.Equal("3S, 4S, 5S, 6S", hand.String())
}

func TestDeal_RemovePermanently(t *testing.T) {
	a := assert.New(t)

	d, hook := newTestDeck(t, WithPolicy(RemovePermanently))
	dealt := map[string]bool{}
	for i := 0; i < 13; i++ {
		hand, err := d.Deal()
		a.NoError(err)
		a.Len(hand, card.HandSize)
		for _, c := range hand {
			a.False(dealt[c.Code()], "card dealt twice: %s", c)
			dealt[c.Code()] = true
		}
		a.Equal(52-4*(i+1), d.Remaining())
		for code := range codeSet(d.Cards()) {
			a.False(dealt[code])
		}
	}
	a.Len(dealt, 52)

	hook.Reset()
	hand, err := d.Deal()
	a.ErrorIs(err, ErrDeckEmpty)
	a.True(hand.Empty())
	a.Equal(0, d.Remaining())
	a.Equal(logrus.WarnLevel, hook.LastEntry().Level)
}

func TestDeal_FewerThanHandSize(t *testing.T) {
	a := assert.New(t)

	d, _ := newTestDeck(t, WithPolicy(RemovePermanently))
	d.cards = d.cards[:3]
	before := d.Cards()

	hand, err := d.Deal()
	a.ErrorIs(err, ErrDeckEmpty)
	a.Empty(hand)
	a.Equal(before, d.Cards())
}

func TestDeal_Uninitialized(t *testing.T) {
	logger, _ := test.NewNullLogger()
	hand, err := New(WithLogger(logger)).Deal()
	assert.ErrorIs(t, err, ErrDeckEmpty)
	assert.Empty(t, hand)
}

func TestParsePolicy(t *testing.T) {
	a := assert.New(t)

	p, err := ParsePolicy("replace")
	a.NoError(err)
	a.Equal(ShuffleAndReplace, p)

	p, err = ParsePolicy("")
	a.NoError(err)
	a.Equal(ShuffleAndReplace, p)

	p, err = ParsePolicy(" Remove ")
	a.NoError(err)
	a.Equal(RemovePermanently, p)
	a.Equal("remove", p.String())

	_, err = ParsePolicy("burn")
	a.EqualError(err, "unknown deal policy: burn (expected replace or remove)")

	a.Equal("Policy(9)", Policy(9).String())
}
