package service

import (
	"context"

	"github.com/MKhiriev/chatterbox/models"
)

// AccountService manages user accounts: registration, credential
// verification, and profile lookup.
type AccountService interface {
	// Register creates a new account from the submitted form values.
	//
	// Username and about are trimmed of surrounding whitespace before
	// validation; the password is stored as submitted. Returns the persisted
	// user or:
	//   - ErrMissingFields if username or password is empty after trimming.
	//   - ErrPasswordMismatch if password and confirm differ.
	//   - ErrUsernameTaken if the username is already registered.
	Register(ctx context.Context, username, password, confirm, about string) (models.User, error)

	// Authenticate verifies a username/password pair and returns the matching
	// account. An unknown username and a wrong password both yield
	// ErrInvalidCredentials; callers cannot tell the two apart.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// GetByUsername returns the account with the given username, or
	// ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (models.User, error)
}

// FeedService manages the shared, append-only message feed.
type FeedService interface {
	// Post appends a message authored by the given user. Content is trimmed
	// of surrounding whitespace; posting an empty message returns
	// ErrEmptyMessage.
	Post(ctx context.Context, authorID int64, content string) (models.Message, error)

	// ListRecent returns the latest limit messages in ascending chronological
	// order. A non-positive limit falls back to the configured page size.
	ListRecent(ctx context.Context, limit int) ([]models.Message, error)

	// ListAll returns the entire feed in ascending chronological order.
	ListAll(ctx context.Context) ([]models.Message, error)
}

// SessionService manages login sessions. A session is a server-side record
// referenced by a signed token that travels in the session cookie.
type SessionService interface {
	// Open starts a new session for the given user and returns the signed
	// token to place into the cookie.
	Open(ctx context.Context, userID int64) (models.SessionToken, error)

	// Resolve maps a raw cookie token to the logged-in user. It returns
	// (user, true) only when the token is valid, the referenced session still
	// exists and is unexpired, and the user record is present. Every other
	// outcome, including a missing or garbage token, is the anonymous result
	// (zero User, false).
	Resolve(ctx context.Context, rawToken string) (models.User, bool)

	// Close terminates the session referenced by the raw token. Closing an
	// already-closed or invalid session is not an error.
	Close(ctx context.Context, rawToken string) error
}
