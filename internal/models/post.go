// Package models defines the domain types for Raido.
package models

// Post represents a single Markdown post with its body rendered to HTML.
type Post struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
	BodyHTML string            `json:"body_html"`
	Checksum string            `json:"checksum"`
}

// PostSummary is the lightweight representation returned by list operations.
// It never carries the rendered body.
type PostSummary struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

// Title returns the conventional "title" metadata field, if present.
func (s PostSummary) Title() string { return s.Metadata["title"] }

// Date returns the conventional "date" metadata field, if present.
// Dates are opaque strings whose lexical order matches chronological order.
func (s PostSummary) Date() string { return s.Metadata["date"] }

// PostID wraps an identifier as a structured route parameter. Route
// generation consumers expect `{id: identifier}` rather than a bare string.
type PostID struct {
	ID string `json:"id"`
}
