//go:build unit

package token_test

import (
	"strings"
	"testing"

	"wishkeeper/internal/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuestToken(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		tok, err := token.NewGuestToken()
		require.NoError(t, err)

		// 32 bytes in unpadded base64url.
		assert.Len(t, tok, 43)
		assert.NotContains(t, tok, "=")
		assert.NotContains(t, tok, "+")
		assert.NotContains(t, tok, "/")
		assert.False(t, seen[tok], "tokens must not repeat")
		seen[tok] = true
	}
}

func TestNewInviteCode(t *testing.T) {
	const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

	for range 100 {
		code, err := token.NewInviteCode()
		require.NoError(t, err)
		require.Len(t, code, token.InviteCodeLength)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r),
				"code %q contains character outside the unambiguous alphabet", code)
		}
	}
}

func TestNewInviteCode_CharactersDrawnUniformly(t *testing.T) {
	const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

	// 2000 codes of 6 characters give ~387 expected hits per character.
	// A skewed draw (e.g. one favouring the low end of the alphabet) would
	// push some characters far outside the tolerance below.
	counts := make(map[rune]int, len(alphabet))
	const draws = 2000
	for range draws {
		code, err := token.NewInviteCode()
		require.NoError(t, err)
		for _, r := range code {
			counts[r]++
		}
	}

	expected := float64(draws*token.InviteCodeLength) / float64(len(alphabet))
	for _, r := range alphabet {
		assert.Greater(t, counts[r], 0, "character %q never drawn", r)
		assert.InDelta(t, expected, float64(counts[r]), expected*0.5,
			"character %q drawn %d times, expected about %.0f", r, counts[r], expected)
	}
}
