package store

import "github.com/MKhiriev/chatterbox/internal/logger"

// Repositories aggregates every data-access contract the service layer
// depends on, so wiring stays a single call at startup.
type Repositories struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
	SessionRepository SessionRepository
}

// NewRepositories constructs all repositories over the shared database
// connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, logger),
		MessageRepository: NewMessageRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
	}
}
