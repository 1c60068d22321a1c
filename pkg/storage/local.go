package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Local is a filesystem-based storage backend
type Local struct {
	root     string
	rootPath string
}

// NewLocal creates a new local filesystem backend.
// The returned error wraps fs.ErrNotExist when root does not exist and
// ErrNotDirectory when it is not a directory.
func NewLocal(root string) (*Local, error) {
	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, absPath)
	}

	return &Local{root: root, rootPath: absPath}, nil
}

// Root returns the directory path as supplied to NewLocal
func (l *Local) Root() string {
	return l.root
}

// List returns the immediate children of the root directory
func (l *Local) List(ctx context.Context) ([]FileInfo, error) {
	entries, err := os.ReadDir(l.rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, d := range entries {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		// DirEntry.Info uses lstat, so symlinks keep ModeSymlink
		info, err := d.Info()
		if err != nil {
			if os.IsNotExist(err) {
				// Removed between ReadDir and Info
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", d.Name(), err)
		}

		files = append(files, FileInfo{
			Name:    d.Name(),
			Path:    filepath.Join(l.root, d.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		})
	}

	return files, nil
}

// Read opens a file for reading
func (l *Local) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	fullPath := filepath.Join(l.rootPath, name)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Stat returns file metadata
func (l *Local) Stat(ctx context.Context, name string) (*FileInfo, error) {
	fullPath := filepath.Join(l.rootPath, name)

	info, err := os.Stat(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &FileInfo{
		Name:    info.Name(),
		Path:    filepath.Join(l.root, name),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}, nil
}

// Close releases resources (no-op for local filesystem)
func (l *Local) Close() error {
	return nil
}
