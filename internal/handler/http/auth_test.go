package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// registration
// ─────────────────────────────────────────────

func TestRegister_SuccessRedirectsToLoginWithNotice(t *testing.T) {
	srv, client := newTestApp(t)
	direct := noRedirect(client)

	resp := postForm(t, direct, srv.URL+"/register", url.Values{
		"username": {"alice"},
		"password": {"secret"},
		"confirm":  {"secret"},
		"about":    {"hi there"},
	})
	resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login?registered=1", resp.Header.Get("Location"))

	loginPage, err := client.Get(srv.URL + "/login?registered=1")
	require.NoError(t, err)
	assert.Contains(t, body(t, loginPage), "Registered! Please login.")
}

func TestRegister_MissingFields(t *testing.T) {
	srv, client := newTestApp(t)

	resp := postForm(t, client, srv.URL+"/register", url.Values{
		"username": {"   "},
		"password": {"secret"},
		"confirm":  {"secret"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Fill all required fields")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	srv, client := newTestApp(t)

	resp := postForm(t, client, srv.URL+"/register", url.Values{
		"username": {"alice"},
		"password": {"secret"},
		"confirm":  {"different"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Passwords do not match")
}

func TestRegister_UsernameTaken(t *testing.T) {
	srv, client := newTestApp(t)
	registerUser(t, srv, client, "alice", "secret")

	resp := postForm(t, client, srv.URL+"/register", url.Values{
		"username": {"alice"},
		"password": {"another"},
		"confirm":  {"another"},
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body(t, resp), "Username taken")
}

// ─────────────────────────────────────────────
// login / logout
// ─────────────────────────────────────────────

func TestLogin_SuccessSetsSessionCookie(t *testing.T) {
	srv, client := newTestApp(t)
	registerUser(t, srv, client, "alice", "secret")
	direct := noRedirect(client)

	resp := postForm(t, direct, srv.URL+"/login", url.Values{
		"username": {"alice"},
		"password": {"secret"},
	})
	resp.Body.Close()

	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/chat", resp.Header.Get("Location"))

	var sessionCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "login must set the session cookie")
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv, client := newTestApp(t)
	registerUser(t, srv, client, "alice", "secret")

	for name, form := range map[string]url.Values{
		"unknown username": {"username": {"ghost"}, "password": {"secret"}},
		"wrong password":   {"username": {"alice"}, "password": {"wrong"}},
	} {
		resp := postForm(t, client, srv.URL+"/login", form)
		require.Equal(t, http.StatusOK, resp.StatusCode, name)
		assert.Contains(t, body(t, resp), "Invalid login", name)
	}
}

func TestLoggedInUserIsRedirectedFromPublicPages(t *testing.T) {
	srv, client := newTestApp(t)
	registerUser(t, srv, client, "alice", "secret")
	loginUser(t, srv, client, "alice", "secret")
	direct := noRedirect(client)

	for _, path := range []string{"/", "/login", "/register"} {
		resp, err := direct.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/chat", resp.Header.Get("Location"), path)
	}
}

func TestLogout_EndsSession(t *testing.T) {
	srv, client := newTestApp(t)
	registerUser(t, srv, client, "alice", "secret")
	loginUser(t, srv, client, "alice", "secret")

	resp, err := client.Get(srv.URL + "/logout")
	require.NoError(t, err)
	resp.Body.Close()

	// the session is gone server-side, so /chat bounces back to login
	direct := noRedirect(client)
	chat, err := direct.Get(srv.URL + "/chat")
	require.NoError(t, err)
	chat.Body.Close()

	assert.Equal(t, http.StatusFound, chat.StatusCode)
	assert.Equal(t, "/login", chat.Header.Get("Location"))
}

func TestLogout_WhileAnonymousIsHarmless(t *testing.T) {
	srv, client := newTestApp(t)
	direct := noRedirect(client)

	resp, err := direct.Get(srv.URL + "/logout")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}
