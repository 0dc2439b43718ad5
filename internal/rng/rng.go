package rng

import (
	"crypto/rand"
	"math/big"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Sequence replays fixed values, wrapping around, reduced modulo n.
// Used to get repeatable shuffles.
type Sequence struct {
	Values []int
	pos    int
}

// Intn returns the next value modulo n
func (s *Sequence) Intn(n int) int {
	if len(s.Values) == 0 {
		return 0
	}

	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return ((v % n) + n) % n
}
