package http

import (
	"net/http"
	"time"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "chatterbox_session"

// sessionCookie builds the cookie that carries a freshly signed session
// token. The cookie is HttpOnly and SameSite=Lax, and expires together with
// the session it references.
func (h *Handler) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.sessionLifetime),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredSessionCookie builds a cookie that instructs the browser to drop
// the session cookie immediately.
func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// sessionTokenFromRequest extracts the raw session token from the request
// cookie. A missing cookie yields the empty string.
func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
