package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nugrahsdhka/job-portal-api/internal/domain"
	"github.com/nugrahsdhka/job-portal-api/internal/repository"
	"github.com/nugrahsdhka/job-portal-api/pkg/auth"
)

func TestRegisterNeverExposesPasswordHash(t *testing.T) {
	e := newEnv(t)

	u, err := e.auth.Register(context.Background(), "Alice", "alice@mail.com", "s3cret", "APPLICANT")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "s3cret", u.PasswordHash)

	pub, err := json.Marshal(u.Public())
	require.NoError(t, err)
	assert.NotContains(t, string(pub), u.PasswordHash)

	// the model itself also hides the hash from JSON
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), u.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Register(ctx, "Alice", "alice@mail.com", "s3cret", "APPLICANT")
	require.NoError(t, err)

	_, err = e.auth.Register(ctx, "Alice Again", "alice@mail.com", "other", "EMPLOYER")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestRegisterRoleCoercion(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	emp, err := e.auth.Register(ctx, "Boss", "boss@mail.com", "pw", "EMPLOYER")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEmployer, emp.Role)

	odd, err := e.auth.Register(ctx, "Odd", "odd@mail.com", "pw", "SUPERADMIN")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleApplicant, odd.Role)
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginFailuresShareOneError(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.auth.Register(ctx, "Alice", "alice@mail.com", "s3cret", "APPLICANT")
	require.NoError(t, err)

	_, _, errWrongPw := e.auth.Login(ctx, "alice@mail.com", "nope")
	_, _, errNoUser := e.auth.Login(ctx, "ghost@mail.com", "nope")

	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errNoUser.Error())
}

func TestLoginTokenCarriesIdentity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	u, err := e.auth.Register(ctx, "Boss", "boss@mail.com", "pw", "EMPLOYER")
	require.NoError(t, err)

	got, token, err := e.auth.Login(ctx, "boss@mail.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	claims, err := auth.NewTokens("test-secret", time.Hour).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.Sub)
	assert.Equal(t, "EMPLOYER", claims.Role)
}
