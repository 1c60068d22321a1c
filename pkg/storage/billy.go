package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
)

// Billy is a storage backend over a go-billy filesystem.
// It serves one directory (dir) of the filesystem; Root reports the label
// used in findings.
type Billy struct {
	fs    billy.Filesystem
	dir   string
	label string
}

// NewBilly creates a backend for dir inside fsys.
// The returned error wraps fs.ErrNotExist when dir does not exist and
// ErrNotDirectory when it is not a directory.
func NewBilly(fsys billy.Filesystem, dir, label string) (*Billy, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	if label == "" {
		label = dir
	}
	return &Billy{fs: fsys, dir: dir, label: label}, nil
}

// Root returns the backend label
func (b *Billy) Root() string {
	return b.label
}

// List implements Backend.List
func (b *Billy) List(ctx context.Context) ([]FileInfo, error) {
	// billy ReadDir does not follow symlinks
	entries, err := b.fs.ReadDir(b.dir)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", b.dir, err)
	}

	files := make([]FileInfo, 0, len(entries))
	for _, info := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		files = append(files, FileInfo{
			Name:    info.Name(),
			Path:    filepath.Join(b.label, info.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Mode:    info.Mode(),
		})
	}
	return files, nil
}

// Read implements Backend.Read
func (b *Billy) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	f, err := b.fs.Open(b.join(name))
	if err != nil {
		return nil, fmt.Errorf("billy: open %q: %w", name, err)
	}
	return f, nil
}

// Stat implements Backend.Stat
func (b *Billy) Stat(ctx context.Context, name string) (*FileInfo, error) {
	info, err := b.fs.Stat(b.join(name))
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return &FileInfo{
		Name:    info.Name(),
		Path:    filepath.Join(b.label, name),
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Mode:    info.Mode(),
	}, nil
}

// Close implements Backend.Close
func (b *Billy) Close() error {
	return nil
}

func (b *Billy) join(name string) string {
	return path.Join(b.dir, name)
}
