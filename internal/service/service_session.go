// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/internal/utils"
	"github.com/MKhiriev/chatterbox/models"
	"github.com/google/uuid"
)

// sessionService is the concrete implementation of SessionService.
//
// A login session lives in two places: a row in the sessions table and a
// signed HMAC-SHA256 token in the browser cookie whose "jti" claim points at
// that row. Resolving a request requires both halves, so deleting the row is
// enough to revoke a session no matter what cookies are still out there.
type sessionService struct {
	// sessionRepository is the data-access layer for server-side session
	// records.
	sessionRepository store.SessionRepository

	// userRepository resolves session owners to full account records.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token. Tokens
	// whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// sessionLifetime controls how long an opened session remains valid.
	sessionLifetime time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a SessionService wired to the given
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		tokenSignKey:      cfg.SessionSignKey,
		tokenIssuer:       cfg.SessionIssuer,
		sessionLifetime:   cfg.SessionLifetime,
		logger:            logger,
	}
}

// Open starts a new session for the given user.
//
// It persists a session row keyed by a fresh UUID, then signs a token whose
// "jti" claim references that row. Returns the signed token or
// ErrSessionCreationFailed if either step fails.
func (s *sessionService) Open(ctx context.Context, userID int64) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	session := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionLifetime),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session persistence failed")
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	token, err := utils.GenerateSessionToken(s.tokenIssuer, userID, session.ID, s.sessionLifetime, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session token signing failed")
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return token, nil
}

// Resolve maps a raw cookie token to the logged-in user.
//
// The chain is: verify the token signature and claims, load the referenced
// session row, check its expiry, then load the owning user. Any break in the
// chain yields the anonymous result (zero User, false); an anonymous request
// is a normal outcome, not an error. A session found past its expiry is
// deleted on the way out, best effort.
func (s *sessionService) Resolve(ctx context.Context, rawToken string) (models.User, bool) {
	log := logger.FromContext(ctx)

	if rawToken == "" {
		return models.User{}, false
	}

	token, err := utils.ValidateAndParseSessionToken(rawToken, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.User{}, false
	}

	session, err := s.sessionRepository.FindSession(ctx, token.SessionID)
	if err != nil {
		return models.User{}, false
	}

	if !time.Now().UTC().Before(session.ExpiresAt) {
		if err := s.sessionRepository.DeleteSession(ctx, session.ID); err != nil {
			log.Err(err).Str("session_id", session.ID).Msg("expired session cleanup failed")
		}
		return models.User{}, false
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).
			Str("session_id", session.ID).
			Int64("user_id", session.UserID).
			Msg("session owner lookup failed")
		return models.User{}, false
	}

	return user, true
}

// Close terminates the session referenced by the raw token.
//
// An invalid or already-expired token closes nothing and returns nil, so
// logout is idempotent. Only a storage failure during deletion surfaces as an
// error.
func (s *sessionService) Close(ctx context.Context, rawToken string) error {
	log := logger.FromContext(ctx)

	if rawToken == "" {
		return nil
	}

	token, err := utils.ValidateAndParseSessionToken(rawToken, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, token.SessionID); err != nil {
		log.Err(err).Str("session_id", token.SessionID).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}
