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
	router.Use(withGZip)

	router.Route("/api", func(api chi.Router) {
		// public routes; a valid token refines visibility, anonymous works
		api.Group(func(r chi.Router) {
			r.Use(h.optionalAuth)

			r.Get("/entries", h.listEntries)
			r.Get("/entries/search", h.searchEntries)
			r.Get("/entries/{id}", h.getEntry)

			r.Get("/snippets", h.listSnippets)
			r.Get("/snippets/{id}", h.getSnippet)

			r.Get("/tags", h.listTags)
			r.Get("/tags/popular", h.popularTags)
			r.Get("/tags/search", h.searchTags)
			r.Get("/tags/{name}", h.getTag)
			r.Get("/tags/{name}/entries", h.tagEntries)

			r.Get("/users/{id}", h.getUser)
			r.Get("/users/username/{username}", h.getUserByUsername)
			r.Get("/users/{id}/entries", h.userEntries)
		})

		// routes requiring an authenticated, provisioned user
		api.Group(func(r chi.Router) {
			r.Use(h.requireAuth)

			r.Get("/users/me", h.currentUser)
			r.Patch("/users/me", h.updateProfile)

			r.Post("/entries", h.createEntry)
			r.Get("/entries/my", h.myEntries)
			r.Patch("/entries/{id}", h.updateEntry)
			r.Delete("/entries/{id}", h.deleteEntry)
			r.Post("/entries/{id}/summarize", h.summarizeEntry)

			r.Post("/entries/{id}/tags", h.addEntryTags)
			r.Put("/entries/{id}/tags", h.replaceEntryTags)
			r.Delete("/entries/{id}/tags", h.removeEntryTags)

			r.Post("/snippets", h.createSnippet)
			r.Get("/snippets/my", h.mySnippets)
			r.Patch("/snippets/{id}", h.updateSnippet)
			r.Delete("/snippets/{id}", h.deleteSnippet)

			r.Post("/tags", h.createTag)
			r.Delete("/tags/{name}", h.deleteTag)
		})
	})

	return router
}
