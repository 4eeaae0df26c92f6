package otp

import (
	"crypto/rand"
	"math/big"
)

// DefaultLength is the code length used when callers pass a non-positive length.
const DefaultLength = 6

// Generator defines the contract for one-time passcode generation.
type Generator interface {
	// Generate creates a numeric code of the given length.
	Generate(length int) (string, error)
}

// Numeric implements Generator using crypto/rand.
//
// Each digit is drawn independently and uniformly from 0-9, so every code of a
// given length is equally likely. Codes are not tracked for uniqueness.
type Numeric struct{}

// NewNumeric returns a numeric passcode generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

var ten = big.NewInt(10)

// Generate returns a string of length decimal digits.
func (n *Numeric) Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	buf := make([]byte, length)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = '0' + byte(d.Int64())
	}

	return string(buf), nil
}
