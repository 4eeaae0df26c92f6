package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericGenerateLength(t *testing.T) {
	gen := NewNumeric()

	for _, length := range []int{4, 6, 8} {
		code, err := gen.Generate(length)
		require.NoError(t, err)
		assert.Len(t, code, length)
	}
}

func TestNumericGenerateDigitsOnly(t *testing.T) {
	gen := NewNumeric()

	for i := 0; i < 50; i++ {
		code, err := gen.Generate(6)
		require.NoError(t, err)
		for _, r := range code {
			assert.GreaterOrEqual(t, r, '0')
			assert.LessOrEqual(t, r, '9')
		}
	}
}

func TestNumericGenerateClampsLength(t *testing.T) {
	gen := NewNumeric()

	for _, length := range []int{0, -3} {
		code, err := gen.Generate(length)
		require.NoError(t, err)
		assert.Len(t, code, DefaultLength)
	}
}

func TestNumericGenerateVaries(t *testing.T) {
	gen := NewNumeric()

	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		code, err := gen.Generate(6)
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 1, "repeated generation should not always produce the same code")
}
