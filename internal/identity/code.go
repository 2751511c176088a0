package identity

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Alphabet leaves out 0, O, 1, I and L so codes survive being read aloud.
const Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

var ErrInvalidLength = errors.New("code length must be positive")

// Generator produces a candidate code of the given length.
type Generator func(length int) (string, error)

// Generate draws length characters from Alphabet using crypto/rand.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	limit := big.NewInt(int64(len(Alphabet)))
	code := make([]byte, length)

	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}

		code[i] = Alphabet[n.Int64()]
	}

	return string(code), nil
}

// Normalize turns user input into the canonical form of a code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Valid reports whether code has the given length and only uses Alphabet.
func Valid(code string, length int) bool {
	if len(code) != length {
		return false
	}

	for _, r := range code {
		if !strings.ContainsRune(Alphabet, r) {
			return false
		}
	}

	return true
}
