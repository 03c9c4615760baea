// Package markdown converts post bodies from Markdown to HTML.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/starford/raido/internal/apperr"
)

// Renderer converts CommonMark (plus GFM extensions) to an HTML fragment.
// It is stateless, so a single instance can be shared across requests
// without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer constructs a renderer with GFM extensions enabled. Raw HTML in
// post bodies is passed through: content is trusted-author material and no
// sanitisation is performed.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Linkify),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts src to an HTML fragment (never a full document).
func (r *Renderer) Render(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("markdown: render: %v: %w", err, apperr.ErrConversionFailure)
	}
	return buf.String(), nil
}
