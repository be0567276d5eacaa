package models

import "time"

// Session is the server-side record behind an issued session token.
// A session links an opaque identifier (carried inside the signed cookie
// token as the "jti" claim) to a user account, with an absolute expiry.
type Session struct {
	// ID is the random UUID identifying this session. It is the only part
	// of the server-side state the client ever learns.
	ID string `json:"-"`

	// UserID references the authenticated account.
	UserID int64 `json:"-"`

	// CreatedAt is when the session was opened (successful login).
	CreatedAt time.Time `json:"-"`

	// ExpiresAt is the absolute expiry time. Sessions past this instant are
	// treated as absent and eventually removed by the janitor worker.
	ExpiresAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
