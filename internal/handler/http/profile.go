package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/internal/utils"
	"github.com/go-chi/chi/v5"
)

// profile renders another user's profile page. An unknown username gets the
// styled 404 page.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	currentUser, _ := utils.GetCurrentUserFromContext(ctx)
	username := chi.URLParam(r, "username")

	profileUser, err := h.services.AccountService.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.notFound(w, r)
			return
		}
		log.Err(err).Str("username", username).Msg("profile lookup failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "profile", pageData{
		Title:       profileUser.Username,
		CurrentUser: currentUser,
		LoggedIn:    true,
		Profile:     profileUser,
	})
}
