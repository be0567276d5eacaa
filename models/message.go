package models

import "time"

// Message is a single entry of the shared chat feed.
// Messages are append-only: once persisted they are never updated or
// deleted, so every field is immutable after creation.
type Message struct {
	// ID is the database-assigned identifier. IDs grow monotonically with
	// creation order.
	ID int64 `json:"id"`

	// AuthorID references the user who posted the message. Every message
	// has exactly one existing author (enforced by a foreign key).
	AuthorID int64 `json:"-"`

	// Author is the author's username, populated by the feed queries via a
	// JOIN for rendering. It is not a persisted column of the messages table.
	Author string `json:"author"`

	// Content is the non-empty text body of the message.
	Content string `json:"content"`

	// CreatedAt is the server-side UTC timestamp assigned on post.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
