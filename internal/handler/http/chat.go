// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/service"
	"github.com/MKhiriev/chatterbox/internal/utils"
)

// chat renders the chat page with the most recent slice of the feed, oldest
// message first.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	user, _ := utils.GetCurrentUserFromContext(ctx)

	// limit 0 falls back to the configured page size
	messages, err := h.services.FeedService.ListRecent(ctx, 0)
	if err != nil {
		log.Err(err).Msg("feed listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, "chat", pageData{
		Title:       "Chat",
		CurrentUser: user,
		LoggedIn:    true,
		Messages:    messages,
	})
}

// postMessage appends a submitted message to the feed and redirects back to
// the chat page, so a browser refresh does not repost. A blank submission is
// silently dropped.
func (h *Handler) postMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	user, _ := utils.GetCurrentUserFromContext(ctx)
	content := r.PostFormValue("message")

	if _, err := h.services.FeedService.Post(ctx, user.ID, content); err != nil {
		if !errors.Is(err, service.ErrEmptyMessage) {
			log.Err(err).Int64("user_id", user.ID).Msg("message post failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}
