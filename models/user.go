package models

import "time"

// User represents a registered chat account.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user, assigned by the
	// database at registration time. Immutable afterwards.
	ID int64 `json:"-"`

	// Username is the unique public name of the account. Comparison is
	// case-sensitive and the value is immutable after creation.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and is used
	// only for credential verification at the persistence layer.
	PasswordHash string `json:"-"`

	// About is the optional free-form profile text supplied at
	// registration. May be empty.
	About string `json:"about,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
