// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/service"
	"github.com/MKhiriev/chatterbox/internal/store"
	"github.com/MKhiriev/chatterbox/internal/utils"
)

// Flash messages shown on the registration and login pages. The texts are
// part of the user-facing contract and are asserted by the handler tests.
const (
	flashMissingFields    = "Fill all required fields"
	flashPasswordMismatch = "Passwords do not match"
	flashUsernameTaken    = "Username taken"
	flashInvalidLogin     = "Invalid login"
	flashRegistered       = "Registered! Please login."
)

// home renders the landing page. A logged-in user is sent straight to the
// chat.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetCurrentUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/chat", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, "home", pageData{Title: "Chatterbox"})
}

// registerForm renders the empty registration form. A logged-in user is sent
// straight to the chat.
func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetCurrentUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/chat", http.StatusFound)
		return
	}

	h.render(w, r, http.StatusOK, "register", pageData{Title: "Register"})
}

// register handles a submitted registration form.
//
// Validation failures re-render the form with a flash message; a successful
// registration redirects to the login page, which greets the fresh account
// with a confirmation notice.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	if _, ok := utils.GetCurrentUserFromContext(ctx); ok {
		http.Redirect(w, r, "/chat", http.StatusFound)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm")
	about := r.PostFormValue("about")

	_, err := h.services.AccountService.Register(ctx, username, password, confirm, about)
	if err != nil {
		var flash string
		switch {
		case errors.Is(err, service.ErrMissingFields):
			flash = flashMissingFields
		case errors.Is(err, service.ErrPasswordMismatch):
			flash = flashPasswordMismatch
		case errors.Is(err, store.ErrUsernameTaken):
			flash = flashUsernameTaken
		default:
			log.Err(err).Msg("registration failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		h.render(w, r, http.StatusOK, "register", pageData{Title: "Register", Flash: flash})
		return
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

// loginForm renders the login form. A logged-in user is sent straight to the
// chat.
func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetCurrentUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/chat", http.StatusFound)
		return
	}

	var flash string
	if r.URL.Query().Get("registered") != "" {
		flash = flashRegistered
	}

	h.render(w, r, http.StatusOK, "login", pageData{Title: "Login", Flash: flash})
}

// login handles a submitted login form. On success it opens a session, sets
// the session cookie, and redirects to the chat. Any credential failure
// re-renders the form with the same indistinct notice.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	if _, ok := utils.GetCurrentUserFromContext(ctx); ok {
		http.Redirect(w, r, "/chat", http.StatusFound)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.AccountService.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render(w, r, http.StatusOK, "login", pageData{Title: "Login", Flash: flashInvalidLogin})
			return
		}
		log.Err(err).Msg("login failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	token, err := h.services.SessionService.Open(ctx, user.ID)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("session open failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString))
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}

// logout closes the current session, drops the cookie, and sends the user to
// the landing page. Logging out while not logged in is harmless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if rawToken := sessionTokenFromRequest(r); rawToken != "" {
		if err := h.services.SessionService.Close(r.Context(), rawToken); err != nil {
			log.Err(err).Msg("session close failed")
		}
	}

	http.SetCookie(w, expiredSessionCookie())
	http.Redirect(w, r, "/", http.StatusFound)
}
