package cryptox

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "пароль密码"},
		{"whitespace password", "   spaces   "},
	}

	salt := NewSalt()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := HashPassword(tt.password, salt)
			second := HashPassword(tt.password, salt)
			require.Equal(t, first, second, "same inputs must produce the same digest")

			raw, err := hex.DecodeString(first)
			require.NoError(t, err, "digest should be hex encoded")
			require.Len(t, raw, keyLength)

			require.NotEqual(t, tt.password, first, "digest must never equal the plaintext")
		})
	}
}

func TestHashPassword_SaltChangesDigest(t *testing.T) {
	t.Parallel()

	password := "samepassword"
	saltA := NewSalt()
	saltB := NewSalt()
	require.NotEqual(t, saltA, saltB, "NewSalt must not repeat")

	require.NotEqual(t, HashPassword(password, saltA), HashPassword(password, saltB))
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	pairs := []struct {
		password string
		wrong    string
	}{
		{"123456", "1234567"},
		{"correct horse battery staple", "correct horse battery"},
		{"", "not empty"},
	}

	for _, p := range pairs {
		salt := NewSalt()
		digest := HashPassword(p.password, salt)

		require.True(t, VerifyPassword(p.password, digest, salt))
		require.False(t, VerifyPassword(p.wrong, digest, salt))
		require.False(t, VerifyPassword(p.password, digest, NewSalt()),
			"digest must not verify under a different salt")
	}
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	seen := map[string]struct{}{}
	for range 20 {
		pw, err := GeneratePassword()
		require.NoError(t, err)
		require.Len(t, pw, 12)

		_, dup := seen[pw]
		require.False(t, dup, "generated passwords should not repeat")
		seen[pw] = struct{}{}
	}
}
