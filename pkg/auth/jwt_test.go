package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	tk := NewTokens("test-secret", time.Hour)

	token, err := tk.Issue("user-123", "EMPLOYER")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tk.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Sub)
	assert.Equal(t, "EMPLOYER", claims.Role)
}

func TestVerifyExpired(t *testing.T) {
	tk := NewTokens("test-secret", -time.Minute)

	token, err := tk.Issue("user-123", "APPLICANT")
	require.NoError(t, err)

	_, err = tk.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewTokens("secret-a", time.Hour).Issue("user-123", "APPLICANT")
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := NewTokens("test-secret", time.Hour).Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
