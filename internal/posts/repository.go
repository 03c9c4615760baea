// Package posts implements the Markdown post repository: it translates a
// directory of frontmatter-prefixed Markdown files into queryable posts.
package posts

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/starford/raido/internal/apperr"
	"github.com/starford/raido/internal/checksum"
	"github.com/starford/raido/internal/frontmatter"
	"github.com/starford/raido/internal/markdown"
	"github.com/starford/raido/internal/models"
	"github.com/starford/raido/internal/storage"
)

// Identifiers come from filename stems, so anything outside this pattern
// cannot match a file and is rejected before touching the filesystem.
var idRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

const ext = ".md"

// Repository answers read-only queries over the content directory. Every
// query reads the directory fresh; posts are immutable and there is no
// in-memory cache.
type Repository struct {
	store storage.Provider
	md    *markdown.Renderer
}

// NewRepository creates a repository over the given content provider.
func NewRepository(store storage.Provider, md *markdown.Renderer) *Repository {
	return &Repository{store: store, md: md}
}

// ListSummaries returns every post's identifier and metadata, sorted by
// descending lexical order of the "date" metadata field. Bodies are neither
// parsed nor returned. A single malformed file fails the whole listing.
func (r *Repository) ListSummaries(_ context.Context) ([]models.PostSummary, error) {
	names, err := r.store.List()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.PostSummary, 0, len(names))
	for _, name := range names {
		data, err := r.store.Read(name)
		if err != nil {
			return nil, err
		}
		meta, _, err := frontmatter.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("posts: %s: %w", name, err)
		}
		summaries = append(summaries, models.PostSummary{
			ID:       strings.TrimSuffix(name, ext),
			Metadata: meta,
		})
	}

	// Lexical comparison on the raw date string; dates are never parsed.
	// Stable so that equal dates keep directory enumeration order, though
	// that order is not part of the contract.
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Date() > summaries[j].Date()
	})

	return summaries, nil
}

// ListIDs returns every valid post identifier wrapped as a route parameter.
func (r *Repository) ListIDs(_ context.Context) ([]models.PostID, error) {
	names, err := r.store.List()
	if err != nil {
		return nil, err
	}
	ids := make([]models.PostID, 0, len(names))
	for _, name := range names {
		ids = append(ids, models.PostID{ID: strings.TrimSuffix(name, ext)})
	}
	return ids, nil
}

// Get reads a single post by identifier, returning its metadata and the body
// rendered to HTML.
func (r *Repository) Get(_ context.Context, id string) (*models.Post, error) {
	if !idRe.MatchString(id) {
		return nil, fmt.Errorf("posts: invalid identifier %q: %w", id, apperr.ErrNotFound)
	}

	data, err := r.store.Read(id + ext)
	if err != nil {
		return nil, err
	}
	meta, body, err := frontmatter.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("posts: %s: %w", id, err)
	}
	bodyHTML, err := r.md.Render([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("posts: %s: %w", id, err)
	}

	return &models.Post{
		ID:       id,
		Metadata: meta,
		BodyHTML: bodyHTML,
		Checksum: checksum.Sum(data),
	}, nil
}
