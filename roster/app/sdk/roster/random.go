package roster

import "strings"

// Random is the source of uniform integers used for identifiers and the
// random increment. *math/rand/v2.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

const (
	idAlphabet = "ABCDEF123456"
	idLength   = 6
)

// RandomBetween returns a uniform integer in [min, max].
func RandomBetween(rnd Random, min int, max int) int {
	return rnd.IntN(max-min+1) + min
}

// NewID draws a 6 character identifier from the alphabet ABCDEF123456.
// Identifiers are not checked for uniqueness.
func NewID(rnd Random) string {
	var b strings.Builder
	b.Grow(idLength)

	for range idLength {
		b.WriteByte(idAlphabet[rnd.IntN(len(idAlphabet))])
	}

	return b.String()
}

// NextOdd returns the smallest odd number strictly greater than n.
func NextOdd(n int) int {
	if n%2 == 0 {
		return n + 1
	}

	return n + 2
}
