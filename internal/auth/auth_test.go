package auth

import (
	"context"
	"testing"
	"time"

	"storefront/internal/storeerrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestService() (*MemoryService, *clock) {
	c := &clock{t: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	return NewMemoryService("test-secret", time.Hour, bcrypt.MinCost).WithClock(c.now), c
}

func TestMemoryService_SignUpAndSignIn(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()

	user, err := svc.SignUp(ctx, "  Ada@Example.com ", "s3cret!", map[string]string{"full_name": "Ada"})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "ada@example.com", user.Email)
	require.Equal(t, "Ada", user.Metadata["full_name"])

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid_credentials", email: "ada@example.com", password: "s3cret!"},
		{name: "email_case_insensitive", email: "ADA@example.com", password: "s3cret!"},
		{name: "wrong_password", email: "ada@example.com", password: "nope123", wantErr: storeerrors.ErrInvalidCredentials},
		{name: "unknown_email", email: "bob@example.com", password: "s3cret!", wantErr: storeerrors.ErrInvalidCredentials},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, token, err := svc.SignIn(ctx, tc.email, tc.password)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Empty(t, token)
				return
			}
			require.NoError(t, err)
			require.Equal(t, user.ID, got.ID)

			resolved, err := svc.GetUser(ctx, token)
			require.NoError(t, err)
			require.Equal(t, user.ID, resolved.ID)
		})
	}
}

func TestMemoryService_SignUpRejects(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := context.Background()
	_, err := svc.SignUp(ctx, "ada@example.com", "s3cret!", nil)
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "ADA@example.com", "another1", nil)
	require.ErrorIs(t, err, storeerrors.ErrConflict)

	_, err = svc.SignUp(ctx, "short@example.com", "abc", nil)
	require.ErrorIs(t, err, storeerrors.ErrValidation)
}

func TestMemoryService_GetUser(t *testing.T) {
	t.Parallel()

	svc, c := newTestService()
	ctx := context.Background()
	user, err := svc.SignUp(ctx, "ada@example.com", "s3cret!", nil)
	require.NoError(t, err)
	_, token, err := svc.SignIn(ctx, "ada@example.com", "s3cret!")
	require.NoError(t, err)

	t.Run("garbage_token", func(t *testing.T) {
		_, err := svc.GetUser(ctx, "not-a-token")
		require.ErrorIs(t, err, storeerrors.ErrNotAuthenticated)
	})

	t.Run("foreign_signature", func(t *testing.T) {
		other := NewMemoryService("other-secret", time.Hour, bcrypt.MinCost).WithClock(c.now)
		forged, err := other.issue(user)
		require.NoError(t, err)

		_, err = svc.GetUser(ctx, forged)
		require.ErrorIs(t, err, storeerrors.ErrNotAuthenticated)
	})

	t.Run("unsigned_token", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID, Issuer: issuer},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.GetUser(ctx, unsigned)
		require.ErrorIs(t, err, storeerrors.ErrNotAuthenticated)
	})

	t.Run("expired_then_deleted", func(t *testing.T) {
		c.t = c.t.Add(2 * time.Hour)
		_, err := svc.GetUser(ctx, token)
		require.ErrorIs(t, err, storeerrors.ErrNotAuthenticated)
		require.Contains(t, err.Error(), "token expired")

		c.t = c.t.Add(-2 * time.Hour)
		require.NoError(t, svc.DeleteUser(ctx, user.ID))
		_, err = svc.GetUser(ctx, token)
		require.ErrorIs(t, err, storeerrors.ErrNotAuthenticated)

		require.ErrorIs(t, svc.DeleteUser(ctx, user.ID), storeerrors.ErrNotFound)
		_, _, err = svc.SignIn(ctx, "ada@example.com", "s3cret!")
		require.ErrorIs(t, err, storeerrors.ErrInvalidCredentials)
	})
}

func TestMemoryService_CancelledContext(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.SignIn(ctx, "ada@example.com", "s3cret!")
	require.ErrorIs(t, err, storeerrors.ErrAuthUnavailable)
	require.ErrorIs(t, err, context.Canceled)
}
