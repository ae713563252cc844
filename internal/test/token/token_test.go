package token_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arqzoy-backend/internal/token"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	for i := 0; i < 100; i++ {
		tok, err := token.Generate()
		require.NoError(t, err)
		assert.Len(t, tok, token.Length)
		for _, r := range tok {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q in %s", r, tok)
		}
	}
}

func TestGenerateNoRepeats(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok, err := token.Generate()
		require.NoError(t, err)
		assert.False(t, seen[tok], "token %s generated twice", tok)
		seen[tok] = true
	}
}
