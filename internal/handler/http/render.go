// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/models"
	"github.com/MKhiriev/chatterbox/web"
)

// pageData carries everything a template needs to render a page. Fields that
// a particular page does not use are left at their zero values.
type pageData struct {
	// Title is the page title shown in the browser tab.
	Title string

	// Flash is a one-off notice rendered at the top of the page, e.g. a
	// validation failure on a submitted form.
	Flash string

	// CurrentUser is the logged-in user, valid only when LoggedIn is true.
	CurrentUser models.User

	// LoggedIn reports whether the request carries a resolved session.
	LoggedIn bool

	// Messages is the slice of feed messages for the chat page, oldest first.
	Messages []models.Message

	// Profile is the account whose profile page is being rendered.
	Profile models.User
}

// templateFuncs are helpers available inside every page template.
var templateFuncs = template.FuncMap{
	// clock renders a timestamp as hours and minutes, the way the chat page
	// displays message times.
	"clock": func(t time.Time) string {
		return t.Format("15:04")
	},
}

// pageNames lists every page template under web/templates. Each page is
// parsed together with the shared layout into its own template set, so two
// pages may both define a "content" block without clashing.
var pageNames = []string{"home", "register", "login", "chat", "profile", "notfound"}

func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(web.Templates, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing page %q: %w", name, err)
		}
		templates[name] = t
	}
	return templates, nil
}

// render executes the named page template into a buffer and writes it out
// with the given status code. Rendering into a buffer first keeps a template
// failure from leaking half a page to the client.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	t, ok := h.templates[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Err(err).Str("page", page).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("page", page).Msg("response write failed")
	}
}

// notFound renders the styled 404 page.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "notfound", pageData{Title: "Not found"})
}
