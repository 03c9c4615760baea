// Package storage defines the content directory abstraction.
package storage

// Provider is the read-only interface for content file operations. The
// content directory is the source of truth; there is no write path.
type Provider interface {
	// List returns the file names (not paths) of every .md file directly
	// inside the content root.
	List() ([]string, error)
	// Read returns the raw bytes of the named file inside the content root.
	Read(name string) ([]byte, error)
}
