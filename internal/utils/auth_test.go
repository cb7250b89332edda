package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bayanihan/restaurant-reservation/internal/utils"
)

func TestNewAdminToken(t *testing.T) {
	tok, err := utils.NewAdminToken("secret", 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), tok.Exp, 5*time.Second)

	parsed, err := jwt.Parse(tok.Token, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims["sub"])
	assert.Equal(t, "ADMIN", claims["role"])

	// Wrong secret must not verify.
	_, err = jwt.Parse(tok.Token, func(*jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("kare-kare")
	require.NoError(t, err)
	assert.True(t, utils.VerifyPassword(hash, "kare-kare"))
	assert.False(t, utils.VerifyPassword(hash, "sisig"))
	assert.False(t, utils.VerifyPassword("not-a-hash", "kare-kare"))
}
