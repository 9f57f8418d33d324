package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forfeolab/forfeo-be/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("secret-for-tests", "forfeo-lab", time.Hour)

	account := models.Account{ID: 42, LoginKey: "test"}
	token, err := tokens.Generate(account)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "forfeo-lab", time.Hour)
	verifier := NewTokenManager("secret-b", "forfeo-lab", time.Hour)

	token, err := issuer.Generate(models.Account{ID: 1, LoginKey: "test"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsWrongIssuer(t *testing.T) {
	issuer := NewTokenManager("secret", "someone-else", time.Hour)
	verifier := NewTokenManager("secret", "forfeo-lab", time.Hour)

	token, err := issuer.Generate(models.Account{ID: 1, LoginKey: "test"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpires(t *testing.T) {
	tokens := NewTokenManager("secret", "forfeo-lab", -time.Minute)

	token, err := tokens.Generate(models.Account{ID: 7, LoginKey: "test"})
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("secret", "forfeo-lab", time.Hour)

	_, err := tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
