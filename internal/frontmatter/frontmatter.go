// Package frontmatter splits a post file into its metadata block and
// Markdown body.
package frontmatter

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/starford/raido/internal/apperr"
)

const delim = "---"

// Parse separates the leading metadata block (between --- delimiter lines)
// from the Markdown body and decodes it into a flat string map. The block is
// mandatory: a missing opening delimiter, a missing closing delimiter, or a
// block that does not decode as scalar key/value pairs all fail with
// apperr.ErrMalformedMetadata.
func Parse(data []byte) (map[string]string, string, error) {
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, "", fmt.Errorf("frontmatter: missing opening delimiter: %w", apperr.ErrMalformedMetadata)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, "", fmt.Errorf("frontmatter: missing closing delimiter: %w", apperr.ErrMalformedMetadata)
	}

	block := rest[:idx]
	afterDelim := rest[idx+1+len(delim):]
	body := strings.TrimLeft(string(afterDelim), "\n\r")

	meta := map[string]string{}
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return nil, "", fmt.Errorf("frontmatter: decode: %v: %w", err, apperr.ErrMalformedMetadata)
	}

	return meta, body, nil
}
