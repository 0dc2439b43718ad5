package card

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards produced by one deal
const HandSize = 4

// Hand is an ordered set of dealt cards
type Hand []Card

// Empty returns true if nothing was dealt
func (h Hand) Empty() bool {
	return len(h) == 0
}

// Codes returns the card codes in deal order
func (h Hand) Codes() []string {
	codes := make([]string, len(h))
	for i, c := range h {
		codes[i] = c.Code()
	}
	return codes
}

// String joins the codes with ", " e.g. "AS, 10H, 2C, KD"
func (h Hand) String() string {
	return strings.Join(h.Codes(), ", ")
}

// ParseHand parses a ", " separated list of card codes
func ParseHand(s string) (Hand, error) {
	if strings.TrimSpace(s) == "" {
		return Hand{}, nil
	}

	parts := strings.Split(s, ",")
	h := make(Hand, len(parts))
	for i, p := range parts {
		c, err := Parse(p)
		if err != nil {
			return nil, err
		}
		h[i] = c
	}

	return h, nil
}

// Distinct returns an error naming the first repeated card
func (h Hand) Distinct() error {
	seen := make(map[Card]bool, len(h))
	for _, c := range h {
		if seen[c] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	return nil
}
