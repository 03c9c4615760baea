package api

import "github.com/starford/raido/internal/models"

// PostDetail is the full post response type (aliased from the domain layer).
type PostDetail = models.Post

// PostSummary is a metadata-only item in a list response (aliased from the
// domain layer).
type PostSummary = models.PostSummary

// PostListResponse wraps post listings. Posts are sorted by descending
// lexical order of their "date" metadata field.
type PostListResponse struct {
	Posts []PostSummary `json:"posts"`
	Total int           `json:"total"`
}

// PostIDListResponse wraps the identifier set consumed by route generation.
type PostIDListResponse struct {
	IDs []models.PostID `json:"ids"`
}

// HelloResponse is the fixed acknowledgment returned by GET /hello.
type HelloResponse struct {
	Text string `json:"text"`
}
