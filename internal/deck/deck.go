package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/arcanaland/dealer/internal/card"
	"github.com/arcanaland/dealer/internal/rng"
)

// ErrDeckEmpty is returned by Deal when there are not enough cards to deal a hand
var ErrDeckEmpty = errors.New("the deck is empty")

// ErrAlreadyInitialized is returned when Initialize is called a second time
var ErrAlreadyInitialized = errors.New("deck already initialized")

// Policy decides what happens to dealt cards
type Policy int

// dealing policies
const (
	// ShuffleAndReplace returns dealt cards to the deck after every deal
	ShuffleAndReplace Policy = iota
	// RemovePermanently keeps dealt cards out of the deck
	RemovePermanently
)

func (p Policy) String() string {
	switch p {
	case ShuffleAndReplace:
		return "replace"
	case RemovePermanently:
		return "remove"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts "replace" or "remove" to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "replace":
		return ShuffleAndReplace, nil
	case "remove":
		return RemovePermanently, nil
	default:
		return 0, fmt.Errorf("unknown deal policy: %s (expected replace or remove)", s)
	}
}

// Deck holds the cards available to be dealt.
// A Deck is not safe for concurrent use.
type Deck struct {
	cards       []card.Card
	policy      Policy
	rng         rng.Generator
	logger      logrus.FieldLogger
	initialized bool
}

// Option configures a Deck
type Option func(*Deck)

// WithPolicy sets the dealing policy
func WithPolicy(p Policy) Option {
	return func(d *Deck) {
		d.policy = p
	}
}

// WithGenerator sets the random source used to shuffle
func WithGenerator(g rng.Generator) Option {
	return func(d *Deck) {
		d.rng = g
	}
}

// WithLogger sets the logger dealt cards are reported to
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Deck) {
		d.logger = l
	}
}

// New returns an empty deck. Call Initialize before dealing.
func New(opts ...Option) *Deck {
	d := &Deck{
		policy: ShuffleAndReplace,
		rng:    rng.Crypto{},
		logger: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Initialize fills the deck with all 52 cards in generation order
func (d *Deck) Initialize() error {
	if d.initialized {
		return ErrAlreadyInitialized
	}

	d.cards = card.All()
	d.initialized = true
	return nil
}

// Policy returns the dealing policy
func (d *Deck) Policy() Policy {
	return d.policy
}

// Remaining returns the number of cards available
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the cards in their current order
func (d *Deck) Cards() []card.Card {
	cp := make([]card.Card, len(d.cards))
	copy(cp, d.cards)
	return cp
}

// Deal shuffles the deck and deals card.HandSize cards.
// If there are fewer cards than that, an empty hand and ErrDeckEmpty are
// returned and the deck is left untouched.
func (d *Deck) Deal() (card.Hand, error) {
	if len(d.cards) < card.HandSize {
		d.logger.WithField("remaining", len(d.cards)).Warn("Sorry, the deck is empty")
		return card.Hand{}, ErrDeckEmpty
	}

	d.shuffle()

	hand := make(card.Hand, card.HandSize)
	copy(hand, d.cards[:card.HandSize])
	d.cards = d.cards[card.HandSize:]

	for i, c := range hand {
		d.logger.Debugf("Card %d: %s", i+1, c)
	}

	if d.policy == ShuffleAndReplace {
		d.cards = append(d.cards, hand...)
	}

	return hand, nil
}

func (d *Deck) shuffle() {
	for j := len(d.cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}
