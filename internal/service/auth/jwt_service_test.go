package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesto-project/mesto-api/internal/config"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

// newTestJWTService builds a service with a fixed clock for predictable expiry tests.
func newTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{JWTSecret: "too-short", TokenLifetimeMinutes: 60})
		assert.Error(t, err)
	})

	t.Run("rejects non-positive lifetime", func(t *testing.T) {
		t.Parallel()
		_, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
		assert.Error(t, err)
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()
		svc, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 7 * 24 * 60})
		require.NoError(t, err)
		assert.Equal(t, 7*24*time.Hour, svc.TokenLifetime())
	})
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 7 * 24 * time.Hour
	userID := uuid.New()

	svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time {
		return fixedTime
	})

	t.Run("generates valid token", func(t *testing.T) {
		t.Parallel()
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(context.Background(), token)
		require.NoError(t, err)

		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, userID.String(), claims.Subject)
		// Compare Unix timestamps to avoid timezone issues
		assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
		assert.Equal(t, fixedTime.Add(tokenLifetime).Unix(), claims.ExpiresAt.Unix())
		assert.NotEmpty(t, claims.ID)
	})
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tokenLifetime := 60 * time.Minute
	wrongSecret := "wrong-secret-that-is-long-enough-for-testing"
	userID := uuid.New()

	issue := func(secret string, at time.Time) string {
		svc := newTestJWTService(secret, tokenLifetime, func() time.Time { return at })
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name    string
		token   func() string
		now     time.Time
		wantErr error
	}{
		{
			name:  "valid token",
			token: func() string { return issue(testSecret, fixedTime) },
			now:   fixedTime.Add(30 * time.Minute),
		},
		{
			name:    "expired token",
			token:   func() string { return issue(testSecret, fixedTime) },
			now:     fixedTime.Add(tokenLifetime + time.Minute),
			wantErr: ErrExpiredToken,
		},
		{
			name:    "token signed with wrong secret",
			token:   func() string { return issue(wrongSecret, fixedTime) },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "malformed token",
			token:   func() string { return "not.a.jwt" },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name: "tampered token",
			token: func() string {
				token := issue(testSecret, fixedTime)
				return token[:len(token)-4] + "AAAA"
			},
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
		{
			name:    "empty token",
			token:   func() string { return "" },
			now:     fixedTime,
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestJWTService(testSecret, tokenLifetime, func() time.Time { return tt.now })
			claims, err := svc.ValidateToken(context.Background(), tt.token())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher()
	verifier := NewBcryptVerifier()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "correct horse")

	assert.NoError(t, verifier.Compare(hash, "correct horse battery staple"))
	assert.Error(t, verifier.Compare(hash, "wrong password"))
}
