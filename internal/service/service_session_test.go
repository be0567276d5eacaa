package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSessionConfig() config.App {
	return config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "chatterbox-test",
		SessionLifetime: time.Hour,
	}
}

func newTestSessionService(sessions *fakeSessionRepository, users *fakeUserRepository) SessionService {
	return NewSessionService(sessions, users, testSessionConfig(), logger.Nop())
}

func seedUser(t *testing.T, users *fakeUserRepository) models.User {
	t.Helper()

	user, err := users.CreateUser(context.Background(), models.User{
		Username:     "alice",
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	return user
}

func TestSessionService_OpenAndResolve(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepository()
	users := newFakeUserRepository()
	svc := newTestSessionService(sessions, users)
	user := seedUser(t, users)

	token, err := svc.Open(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	require.NotEmpty(t, token.SessionID)
	assert.Equal(t, user.ID, token.UserID)

	resolved, ok := svc.Resolve(ctx, token.SignedString)
	require.True(t, ok)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)
}

func TestSessionService_Open_PersistenceFailure(t *testing.T) {
	sessions := newFakeSessionRepository()
	sessions.errCreate = errors.New("connection reset")
	svc := newTestSessionService(sessions, newFakeUserRepository())

	_, err := svc.Open(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSessionCreationFailed)
}

func TestSessionService_Resolve_Anonymous(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepository()
	users := newFakeUserRepository()
	svc := newTestSessionService(sessions, users)
	user := seedUser(t, users)

	t.Run("empty token", func(t *testing.T) {
		_, ok := svc.Resolve(ctx, "")
		assert.False(t, ok)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, ok := svc.Resolve(ctx, "not-a-jwt-at-all")
		assert.False(t, ok)
	})

	t.Run("token signed with another key", func(t *testing.T) {
		otherCfg := testSessionConfig()
		otherCfg.SessionSignKey = "some-other-key"
		other := NewSessionService(sessions, users, otherCfg, logger.Nop())

		token, err := other.Open(ctx, user.ID)
		require.NoError(t, err)

		_, ok := svc.Resolve(ctx, token.SignedString)
		assert.False(t, ok)
	})

	t.Run("session row deleted", func(t *testing.T) {
		token, err := svc.Open(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, sessions.DeleteSession(ctx, token.SessionID))

		_, ok := svc.Resolve(ctx, token.SignedString)
		assert.False(t, ok)
	})

	t.Run("session row expired", func(t *testing.T) {
		token, err := svc.Open(ctx, user.ID)
		require.NoError(t, err)

		expired, err := sessions.FindSession(ctx, token.SessionID)
		require.NoError(t, err)
		expired.ExpiresAt = time.Now().UTC().Add(-time.Minute)
		require.NoError(t, sessions.CreateSession(ctx, expired))

		_, ok := svc.Resolve(ctx, token.SignedString)
		assert.False(t, ok)

		// the stale row is removed on the way out
		_, err = sessions.FindSession(ctx, token.SessionID)
		assert.Error(t, err)
	})

	t.Run("owner account missing", func(t *testing.T) {
		orphans := newFakeSessionRepository()
		svc := newTestSessionService(orphans, newFakeUserRepository())

		token, err := svc.Open(ctx, 404)
		require.NoError(t, err)

		_, ok := svc.Resolve(ctx, token.SignedString)
		assert.False(t, ok)
	})
}

func TestSessionService_Close(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepository()
	users := newFakeUserRepository()
	svc := newTestSessionService(sessions, users)
	user := seedUser(t, users)

	t.Run("closed session no longer resolves", func(t *testing.T) {
		token, err := svc.Open(ctx, user.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Close(ctx, token.SignedString))

		_, ok := svc.Resolve(ctx, token.SignedString)
		assert.False(t, ok)
	})

	t.Run("idempotent", func(t *testing.T) {
		token, err := svc.Open(ctx, user.ID)
		require.NoError(t, err)

		require.NoError(t, svc.Close(ctx, token.SignedString))
		assert.NoError(t, svc.Close(ctx, token.SignedString))
	})

	t.Run("invalid token is a no-op", func(t *testing.T) {
		assert.NoError(t, svc.Close(ctx, ""))
		assert.NoError(t, svc.Close(ctx, "garbage"))
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		token, err := svc.Open(ctx, user.ID)
		require.NoError(t, err)

		sessions.errDelete = errors.New("connection reset")
		defer func() { sessions.errDelete = nil }()

		assert.Error(t, svc.Close(ctx, token.SignedString))
	})
}
