package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
	})

	// routes that require a logged-in user
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/chat", h.chat)
		r.Post("/chat", h.postMessage)
		r.Get("/profile/{username}", h.profile)
	})

	router.NotFound(h.notFound)

	return router
}
