package crypto

import (
	"crypto/rand"
	"errors"
	"math/big"
	mrand "math/rand/v2"
)

// ErrInvalidBound is returned by a RandomSource asked for a non-positive bound.
var ErrInvalidBound = errors.New("random bound must be positive")

// RandomSource produces uniformly distributed integers in [0, n).
// Implementations are not required to be safe for concurrent use.
type RandomSource interface {
	Intn(n int) (int, error)
}

// CryptoSource implements RandomSource using crypto/rand.
type CryptoSource struct{}

// NewCryptoSource creates a new CryptoSource.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// Intn returns a cryptographically random int in [0, n).
func (s *CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// SeededSource implements RandomSource with a seeded PCG generator, so the
// same seed always yields the same sequence.
type SeededSource struct {
	rng *mrand.Rand
}

// NewSeededSource creates a SeededSource for the given seed.
func NewSeededSource(seed uint64) *SeededSource {
	return &SeededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Intn returns a pseudo-random int in [0, n).
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	return s.rng.IntN(n), nil
}
