// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Authentication is bound per endpoint so that an
// unsupported method is answered with 404 before any token is checked.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/sign-up", h.signUp)
		r.Post("/auth/sign-in", h.signIn)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/change-user-role", h.changeUserRole)

		r.Get("/movies/get-movies", h.getMovies)
		r.Post("/movies/create-movie", h.createMovie)
		r.Patch("/movies/update-movie", h.updateMovie)
		r.Delete("/movies/delete-movie", h.deleteMovie)
		r.Post("/movies/seeding-database", h.seedCatalog)
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
