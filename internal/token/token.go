// Package token generates the unguessable strings embedded in a client's
// private project URL.
package token

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Length is 26 base-36 characters, about 134 bits of entropy. Collisions
// and guesses are negligible at any plausible project count; the url_privada
// column is UNIQUE regardless.
const Length = 26

var alphabetSize = big.NewInt(int64(len(alphabet)))

// Generate returns a new private-link token from the system CSPRNG.
func Generate() (string, error) {
	buf := make([]byte, Length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}
