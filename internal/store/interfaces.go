package store

import (
	"context"
	"time"

	"github.com/MKhiriev/chatterbox/models"
)

// UserRepository is the data-access contract for account records.
type UserRepository interface {
	// CreateUser persists a new account and returns it with the
	// server-assigned ID. Returns [ErrUsernameTaken] when the username is
	// already present.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given (case-sensitive)
	// username, or [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given ID, or
	// [ErrUserNotFound].
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// MessageRepository is the data-access contract for the append-only chat
// feed. There are deliberately no update or delete operations.
type MessageRepository interface {
	// CreateMessage appends a message and returns it with the
	// server-assigned ID.
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)

	// ListRecent returns the most recent limit messages in ascending
	// chronological order (a suffix of the full history). Each message
	// carries the author's username.
	ListRecent(ctx context.Context, limit int) ([]models.Message, error)

	// ListAll returns the entire feed in ascending chronological order.
	ListAll(ctx context.Context) ([]models.Message, error)
}

// SessionRepository is the data-access contract for server-side session
// records.
type SessionRepository interface {
	// CreateSession persists a freshly opened session.
	CreateSession(ctx context.Context, session models.Session) error

	// FindSession returns the session with the given identifier, or
	// [ErrSessionNotFound].
	FindSession(ctx context.Context, id string) (models.Session, error)

	// DeleteSession removes the session with the given identifier.
	// Deleting an absent session is not an error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteExpiredSessions removes all sessions whose expiry is at or
	// before now and reports how many rows were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator inspects driver-level errors so repositories can react
// to well-known conditions without depending on a concrete backend.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err was caused by a uniqueness
	// constraint (e.g. a duplicate username).
	IsUniqueViolation(err error) bool
}
