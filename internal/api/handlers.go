package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/posts"
)

// Handler holds API route handlers.
type Handler struct {
	repo *posts.Repository
}

// NewHandler creates a new Handler.
func NewHandler(repo *posts.Repository) *Handler {
	return &Handler{repo: repo}
}

// ListPosts handles GET /api/posts. It returns every post's metadata, sorted
// by descending date; no pagination, no filtering.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.repo.ListSummaries(r.Context())
	if err != nil {
		h.writeError(w, "list posts failed", err)
		return
	}
	writeJSON(w, http.StatusOK, PostListResponse{
		Posts: summaries,
		Total: len(summaries),
	})
}

// ListPostIDs handles GET /api/posts/ids. Route generation consumers use
// the result to enumerate which per-post pages exist.
func (h *Handler) ListPostIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.repo.ListIDs(r.Context())
	if err != nil {
		h.writeError(w, "list post ids failed", err)
		return
	}
	writeJSON(w, http.StatusOK, PostIDListResponse{IDs: ids})
}

// GetPost handles GET /api/posts/{id}. The response carries the rendered
// HTML body and an ETag derived from the source file checksum; a matching
// If-None-Match short-circuits to 304.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("id is required"))
		return
	}
	post, err := h.repo.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("get post failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}

	etag := `"` + post.Checksum + `"`
	if match := strings.Trim(r.Header.Get("If-None-Match"), `"`); match != "" && match == post.Checksum {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, post)
}

// Hello handles GET /api/hello: a fixed JSON acknowledgment with no
// dependency on the post repository.
func (h *Handler) Hello(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HelloResponse{Text: "Hello"})
}

// writeError maps repository failures for listing endpoints. A missing
// content directory is a 404; everything else is an unrecoverable 500.
func (h *Handler) writeError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, apperr.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	slog.Error(msg, slog.String("error", err.Error()))
	if errors.Is(err, apperr.ErrMalformedMetadata) {
		writeJSON(w, http.StatusInternalServerError, errorBody("malformed post metadata"))
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
}
