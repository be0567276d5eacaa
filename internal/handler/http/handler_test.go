package http

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/crypto"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/service"
	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// in-memory repositories
// ─────────────────────────────────────────────

type memUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

func (m *memUserRepo) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Username]; exists {
		return models.User{}, store.ErrUsernameTaken
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = user
	return user, nil
}

func (m *memUserRepo) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, exists := m.users[username]
	if !exists {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (m *memUserRepo) FindUserByID(_ context.Context, id int64) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

type memMessageRepo struct {
	mu       sync.Mutex
	nextID   int64
	users    *memUserRepo
	messages []models.Message
}

func (m *memMessageRepo) CreateMessage(_ context.Context, message models.Message) (models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	message.ID = m.nextID
	if m.users != nil {
		if author, err := m.users.FindUserByID(context.Background(), message.AuthorID); err == nil {
			message.Author = author.Username
		}
	}
	m.messages = append(m.messages, message)
	return message, nil
}

func (m *memMessageRepo) ListRecent(_ context.Context, limit int) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	start := len(m.messages) - limit
	if start < 0 {
		start = 0
	}
	out := make([]models.Message, len(m.messages)-start)
	copy(out, m.messages[start:])
	return out, nil
}

func (m *memMessageRepo) ListAll(_ context.Context) ([]models.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Message, len(m.messages))
	copy(out, m.messages)
	return out, nil
}

type memSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]models.Session
}

func (m *memSessionRepo) CreateSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *memSessionRepo) FindSession(_ context.Context, id string) (models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, exists := m.sessions[id]
	if !exists {
		return models.Session{}, store.ErrSessionNotFound
	}
	return session, nil
}

func (m *memSessionRepo) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memSessionRepo) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for id, session := range m.sessions {
		if !session.ExpiresAt.After(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

// ─────────────────────────────────────────────
// test harness
// ─────────────────────────────────────────────

func newTestApp(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	users := &memUserRepo{users: make(map[string]models.User)}
	repos := &store.Repositories{
		UserRepository:    users,
		MessageRepository: &memMessageRepo{users: users},
		SessionRepository: &memSessionRepo{sessions: make(map[string]models.Session)},
	}

	cfg := &config.StructuredConfig{
		App: config.App{
			SessionSignKey:  "test-sign-key",
			SessionIssuer:   "chatterbox-test",
			SessionLifetime: time.Hour,
			FeedPageSize:    20,
		},
	}

	services := service.NewServices(repos, crypto.NewBcryptHasher(bcrypt.MinCost), cfg, logger.Nop())

	h, err := NewHandler(services, cfg.App, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	client := &http.Client{Jar: jar}
	return srv, client
}

// newClient builds an additional browser (a client with its own cookie jar)
// against the same test server.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

// noRedirect stops the client from following redirects so tests can assert
// on Location headers.
func noRedirect(client *http.Client) *http.Client {
	c := *client
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) *http.Response {
	t.Helper()

	resp, err := client.PostForm(target, form)
	require.NoError(t, err)
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func registerUser(t *testing.T, srv *httptest.Server, client *http.Client, username, password string) {
	t.Helper()

	resp := postForm(t, client, srv.URL+"/register", url.Values{
		"username": {username},
		"password": {password},
		"confirm":  {password},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func loginUser(t *testing.T, srv *httptest.Server, client *http.Client, username, password string) {
	t.Helper()

	resp := postForm(t, client, srv.URL+"/login", url.Values{
		"username": {username},
		"password": {password},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasSuffix(resp.Request.URL.Path, "/chat"), "login should land on the chat page")
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ParsesTemplates(t *testing.T) {
	h, err := NewHandler(&service.Services{}, config.App{SessionLifetime: time.Hour}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	for _, page := range pageNames {
		assert.Contains(t, h.templates, page)
	}
}

// ─────────────────────────────────────────────
// middleware
// ─────────────────────────────────────────────

func TestTraceIDHeaderIsSet(t *testing.T) {
	srv, client := newTestApp(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
}

func TestRequireAuth_AnonymousIsRedirectedToLogin(t *testing.T) {
	srv, client := newTestApp(t)
	direct := noRedirect(client)

	for _, path := range []string{"/chat", "/profile/anyone"} {
		resp, err := direct.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get("Location"), path)
	}

	resp, err := direct.Post(srv.URL+"/chat", "application/x-www-form-urlencoded", strings.NewReader("message=hi"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	srv, client := newTestApp(t)

	resp, err := client.Get(srv.URL + "/no-such-page")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Not found")
}
