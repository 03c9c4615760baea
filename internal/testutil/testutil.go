// Package testutil provides shared test helpers for setting up content
// directories.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/starford/raido/internal/storage"
)

// TestContent creates a temporary content directory with a storage.Provider.
func TestContent(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WritePost writes <id>.md into dir with a frontmatter block built from meta
// followed by body. Keys are emitted in sorted order.
func WritePost(t *testing.T, dir, id string, meta map[string]string, body string) {
	t.Helper()

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	content := "---\n"
	for _, k := range keys {
		content += fmt.Sprintf("%s: %q\n", k, meta[k])
	}
	content += "---\n\n" + body

	if err := os.WriteFile(filepath.Join(dir, id+".md"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// WriteRaw writes an arbitrary file into dir, bypassing the frontmatter
// convention, for malformed-content tests.
func WriteRaw(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
