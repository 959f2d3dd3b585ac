package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/users", h.listAuthors)
		r.Get("/api/users/{id}", h.getUser)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{id}", h.getPost)
		r.Get("/api/posts/categories/{category}", h.listPostsByCategory)
		r.Get("/api/posts/users/{id}", h.listPostsByCreator)

		r.Get("/uploads/{name}", h.serveUpload)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/users/change-avatar", h.changeAvatar)
		r.Patch("/api/users/edit-user", h.editProfile)

		r.Post("/api/posts", h.createPost)
		r.Patch("/api/posts/{id}", h.editPost)
		r.Delete("/api/posts/{id}", h.deletePost)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.NotFound(h.notFound)

	return router
}
