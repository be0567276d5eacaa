package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/chatterbox/internal/utils"
)

// withSession resolves the session cookie into the current user and stores
// the user in the request context under [utils.CurrentUserCtxKey].
//
// Resolution never fails a request: an absent, malformed, or expired token
// simply leaves the request anonymous. Handlers that need a logged-in user
// are guarded separately by [Handler.requireAuth].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rawToken := sessionTokenFromRequest(r)
		if rawToken == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, ok := h.services.SessionService.Resolve(ctx, rawToken)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth guards routes that only make sense for a logged-in user.
// Anonymous requests are redirected to the login page.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetCurrentUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
