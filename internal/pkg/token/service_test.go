package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHMACService_IssueValidateRoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewHMACService("test-secret", 24*time.Hour)

	tok, err := svc.Issue(42, "seeker")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := svc.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "seeker", claims.Role)
}

func TestHMACService_Expiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	svc := NewHMACService("test-secret", 24*time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.Issue(7, "provider")
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(24*time.Hour - time.Second) }
		claims, err := svc.Validate(tok)
		require.NoError(t, err)
		require.Equal(t, int64(7), claims.UserID)
		require.Equal(t, "provider", claims.Role)
	})

	t.Run("expired at the expiry instant", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(24 * time.Hour) }
		_, err := svc.Validate(tok)
		require.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("expired after expiry", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(48 * time.Hour) }
		_, err := svc.Validate(tok)
		require.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestHMACService_RejectsForeignAndMalformedTokens(t *testing.T) {
	t.Parallel()

	svc := NewHMACService("test-secret", time.Hour)

	t.Run("malformed token", func(t *testing.T) {
		_, err := svc.Validate("not.a.token")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.Validate("")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewHMACService("other-secret", time.Hour)
		tok, err := other.Issue(1, "seeker")
		require.NoError(t, err)

		_, err = svc.Validate(tok)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestHMACService_IssueRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := NewHMACService("", time.Hour).Issue(1, "seeker")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = NewHMACService("secret", 0).Issue(1, "seeker")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
