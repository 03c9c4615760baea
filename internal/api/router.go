// Package api implements the Raido REST API using chi.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/raido/internal/posts"
)

// NewRouter creates a chi router with all API routes mounted.
// sseHandler, if non-nil, is mounted at GET /events.
func NewRouter(repo *posts.Repository, sseHandler http.Handler) chi.Router {
	h := NewHandler(repo)

	r := chi.NewRouter()

	// Post repository queries (read-only).
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/ids", h.ListPostIDs)
	r.Get("/posts/{id}", h.GetPost)

	// The single unrelated endpoint.
	r.Get("/hello", h.Hello)

	// SSE endpoint.
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
