package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// DefaultDigits is the code length used when a Numeric generator is built
// with a non-positive digit count.
const DefaultDigits = 6

// Generator defines the contract for producing one-time codes.
type Generator interface {
	// Generate returns a fresh one-time code.
	Generate() (string, error)
}

// Numeric generates uniformly random, zero-padded numeric codes.
type Numeric struct {
	digits int
	max    *big.Int
}

// NewNumeric constructs a Numeric generator producing codes of the given
// digit count.
func NewNumeric(digits int) *Numeric {
	if digits <= 0 {
		digits = DefaultDigits
	}

	max := big.NewInt(10)
	max.Exp(max, big.NewInt(int64(digits)), nil)

	return &Numeric{digits: digits, max: max}
}

// Generate returns a zero-padded random numeric code, e.g. "042137".
func (n *Numeric) Generate() (string, error) {
	v, err := rand.Int(rand.Reader, n.max)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", n.digits, v), nil
}
