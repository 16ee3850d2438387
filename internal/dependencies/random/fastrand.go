package random

import "github.com/valyala/fastrand"

// PseudoRandom implements Random using valyala/fastrand. It is not
// cryptographically secure; use it for gameplay randomness like team
// shuffling, not for tokens.
type PseudoRandom struct{}

// NewPseudo creates a new PseudoRandom
func NewPseudo() *PseudoRandom {
	return &PseudoRandom{}
}

// Intn returns a pseudo-random int in [0, n)
func (r *PseudoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(fastrand.Uint32n(uint32(n)))
}

// String generates a random string of the given length from the given alphabet
func (r *PseudoRandom) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}

// Shuffle performs a Fisher-Yates shuffle over n elements
func (r *PseudoRandom) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.Intn(i+1))
	}
}

var _ Random = (*PseudoRandom)(nil)
