// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/chatterbox/internal/crypto"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/models"
)

// accountService is the concrete implementation of AccountService.
// It validates registration input, hashes passwords with the injected
// Hasher, and delegates persistence to a UserRepository.
type accountService struct {
	// userRepository is the data-access layer used to create and look up
	// accounts.
	userRepository store.UserRepository

	// hasher computes and verifies password digests.
	hasher crypto.Hasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAccountService constructs an AccountService wired to the given
// UserRepository and password hasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAccountService(userRepository store.UserRepository, hasher crypto.Hasher, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Register creates a new account.
//
// Username and about are trimmed before validation; the password is taken as
// submitted so that leading or trailing spaces chosen by the user survive.
// The uniqueness of the username is ultimately enforced by the storage
// layer's unique index, so two concurrent registrations of the same name
// cannot both succeed.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrMissingFields if username or password is empty.
//   - ErrPasswordMismatch if password and confirm differ.
//   - store.ErrUsernameTaken if the username is already registered.
func (a *accountService) Register(ctx context.Context, username, password, confirm, about string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	about = strings.TrimSpace(about)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("registration with missing fields")
		return models.User{}, ErrMissingFields
	}
	if password != confirm {
		log.Error().Str("username", username).Msg("registration password confirmation mismatch")
		return models.User{}, ErrPasswordMismatch
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: digest,
		About:        about,
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			log.Error().Str("username", username).Msg("username already taken")
			return models.User{}, err
		}
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a username/password pair.
//
// An unknown username and a wrong password both return
// ErrInvalidCredentials. The bcrypt comparison still runs against the stored
// digest when the account exists, so the two failure paths stay
// indistinguishable to the caller.
func (a *accountService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", username).Msg("login for unknown username")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(password, foundUser.PasswordHash) {
		log.Error().
			Int64("id", foundUser.ID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// GetByUsername returns the account with the given username.
//
// Returns store.ErrUserNotFound when no such account exists; any other
// repository failure is wrapped and returned as-is.
func (a *accountService) GetByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, err
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return foundUser, nil
}
