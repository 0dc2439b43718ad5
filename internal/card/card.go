package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCode is returned when a string is not a valid card code
var ErrInvalidCode = errors.New("invalid card code")

// Ranks in generation order
var Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Suits in generation order
var Suits = []string{"S", "H", "D", "C"}

// DeckSize is the number of distinct cards
const DeckSize = 52

// Card represents a playing card
type Card struct {
	Rank string // 2-10, J, Q, K or A
	Suit string // S, H, D or C
}

// Code returns the canonical <rank><suit> form, e.g. "10H"
func (c Card) Code() string {
	return c.Rank + c.Suit
}

func (c Card) String() string {
	return c.Code()
}

// Name returns the long name of the card, e.g. "Ten of Hearts"
func (c Card) Name() string {
	return fmt.Sprintf("%s of %s", c.RankName(), c.SuitName())
}

// RankName returns e.g. "Ten" or "Queen"
func (c Card) RankName() string {
	return rankNames[c.Rank]
}

// SuitName returns e.g. "Hearts"
func (c Card) SuitName() string {
	return suitNames[c.Suit]
}

// Red reports whether the card is a heart or a diamond
func (c Card) Red() bool {
	return c.Suit == "H" || c.Suit == "D"
}

// Parse parses a card code such as "AS" or "10h"
func Parse(code string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	c := Card{Rank: s[:len(s)-1], Suit: s[len(s)-1:]}
	if _, ok := rankNames[c.Rank]; !ok {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCode, code)
	}
	if _, ok := suitNames[c.Suit]; !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCode, code)
	}

	return c, nil
}

// All returns the 52 cards in generation order: every rank of spades,
// then hearts, diamonds and clubs
func All() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Codes returns the codes of All()
func Codes() []string {
	all := All()
	codes := make([]string, len(all))
	for i, c := range all {
		codes[i] = c.Code()
	}
	return codes
}

var rankNames = map[string]string{
	"2": "Two", "3": "Three", "4": "Four", "5": "Five", "6": "Six",
	"7": "Seven", "8": "Eight", "9": "Nine", "10": "Ten",
	"J": "Jack", "Q": "Queen", "K": "King", "A": "Ace",
}

var suitNames = map[string]string{
	"S": "Spades",
	"H": "Hearts",
	"D": "Diamonds",
	"C": "Clubs",
}
