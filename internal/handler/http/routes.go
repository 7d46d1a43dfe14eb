package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	router.Route("/api/vault", func(r chi.Router) {
		r.Get("/", h.listRecords)
		r.Post("/", h.addRecord)
		r.Get("/{recordID}", h.getRecord)
		r.Put("/{recordID}", h.updateRecord)
		r.Delete("/{recordID}", h.deleteRecord)
	})

	router.Get("/api/suggest", h.suggestPassword)

	return router
}
