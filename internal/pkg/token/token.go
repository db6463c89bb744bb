package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// Guest tokens guard anonymous read access to a single list, so they must be
// unguessable: 32 random bytes gives 256 bits of entropy.
const guestTokenBytes = 32

// Invite codes are typed by hand, so the alphabet drops visually ambiguous
// characters (0/O, 1/I/L).
const (
	InviteCodeLength   = 6
	inviteCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

func NewGuestToken() (string, error) {
	buf := make([]byte, guestTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate guest token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func NewInviteCode() (string, error) {
	// Bytes at or past the largest multiple of the alphabet size are
	// rejected; a plain modulo would skew the low characters.
	const cutoff = 256 - 256%len(inviteCodeAlphabet)

	code := make([]byte, 0, InviteCodeLength)
	buf := make([]byte, InviteCodeLength*2)
	for len(code) < InviteCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		for _, b := range buf {
			if int(b) >= cutoff {
				continue
			}
			code = append(code, inviteCodeAlphabet[int(b)%len(inviteCodeAlphabet)])
			if len(code) == InviteCodeLength {
				break
			}
		}
	}
	return string(code), nil
}
