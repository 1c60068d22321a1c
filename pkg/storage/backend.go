package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"time"
)

// ErrNotDirectory is returned when a backend root is not a directory
var ErrNotDirectory = errors.New("path is not a directory")

// FileInfo represents metadata about a directory entry
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Mode    fs.FileMode
}

// IsRegular reports whether the entry is a regular file
func (fi FileInfo) IsRegular() bool {
	return fi.Mode.IsRegular()
}

// IsDir reports whether the entry is a directory
func (fi FileInfo) IsDir() bool {
	return fi.Mode.IsDir()
}

// Backend defines read-only access to the top level of one directory
// Implementations include the local filesystem and go-billy filesystems
type Backend interface {
	// Root returns the directory path the backend was opened on
	Root() string

	// List returns the immediate children of the root without following symlinks
	List(ctx context.Context) ([]FileInfo, error)

	// Read opens a file directly inside the root for reading
	Read(ctx context.Context, name string) (io.ReadCloser, error)

	// Stat returns file metadata
	Stat(ctx context.Context, name string) (*FileInfo, error)

	// Close releases any resources held by the backend
	Close() error
}
