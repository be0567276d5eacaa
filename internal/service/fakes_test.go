package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/models"
)

// fakeUserRepository is an in-memory UserRepository used by the service
// tests. Optional err* fields force failures for specific calls.
type fakeUserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User

	errCreate error
	errFind   error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]models.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errCreate != nil {
		return models.User{}, f.errCreate
	}
	if _, exists := f.users[user.Username]; exists {
		return models.User{}, store.ErrUsernameTaken
	}

	f.nextID++
	user.ID = f.nextID
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepository) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errFind != nil {
		return models.User{}, f.errFind
	}
	user, exists := f.users[username]
	if !exists {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errFind != nil {
		return models.User{}, f.errFind
	}
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

// fakeMessageRepository is an in-memory MessageRepository that keeps
// messages in insertion order.
type fakeMessageRepository struct {
	mu       sync.Mutex
	nextID   int64
	messages []models.Message

	errCreate error
	errList   error
}

func newFakeMessageRepository() *fakeMessageRepository {
	return &fakeMessageRepository{}
}

func (f *fakeMessageRepository) CreateMessage(_ context.Context, message models.Message) (models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errCreate != nil {
		return models.Message{}, f.errCreate
	}

	f.nextID++
	message.ID = f.nextID
	f.messages = append(f.messages, message)
	return message, nil
}

func (f *fakeMessageRepository) ListRecent(_ context.Context, limit int) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errList != nil {
		return nil, f.errList
	}

	start := len(f.messages) - limit
	if start < 0 {
		start = 0
	}
	out := make([]models.Message, len(f.messages)-start)
	copy(out, f.messages[start:])
	return out, nil
}

func (f *fakeMessageRepository) ListAll(_ context.Context) ([]models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errList != nil {
		return nil, f.errList
	}
	out := make([]models.Message, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

// fakeSessionRepository is an in-memory SessionRepository.
type fakeSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]models.Session

	errCreate error
	errFind   error
	errDelete error
}

func newFakeSessionRepository() *fakeSessionRepository {
	return &fakeSessionRepository{sessions: make(map[string]models.Session)}
}

func (f *fakeSessionRepository) CreateSession(_ context.Context, session models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errCreate != nil {
		return f.errCreate
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepository) FindSession(_ context.Context, id string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errFind != nil {
		return models.Session{}, f.errFind
	}
	session, exists := f.sessions[id]
	if !exists {
		return models.Session{}, store.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionRepository) DeleteSession(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errDelete != nil {
		return f.errDelete
	}
	delete(f.sessions, id)
	return nil
}

func (f *fakeSessionRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.errDelete != nil {
		return 0, f.errDelete
	}
	var removed int64
	for id, session := range f.sessions {
		if !session.ExpiresAt.After(now) {
			delete(f.sessions, id)
			removed++
		}
	}
	return removed, nil
}
