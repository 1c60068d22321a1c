// Package snapshot captures the top-level regular files of a directory
// together with their content digests.
package snapshot

import (
	"context"
	"fmt"

	"github.com/sdejongh/dirsimilar/pkg/compare"
	"github.com/sdejongh/dirsimilar/pkg/logging"
	"github.com/sdejongh/dirsimilar/pkg/models"
	"github.com/sdejongh/dirsimilar/pkg/storage"
)

// Build lists the immediate children of backend's root, keeps regular files
// only and hashes each one. Directories, symlinks and special files are
// skipped silently. A file that cannot be hashed is still recorded, with
// Hashed set to false, so it takes part in name-based reporting.
func Build(ctx context.Context, backend storage.Backend, hasher *compare.Hasher, logger logging.Logger) (*models.Snapshot, error) {
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	entries, err := backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", backend.Root(), err)
	}

	snap := models.NewSnapshot(backend.Root())
	for _, entry := range entries {
		if !entry.IsRegular() {
			logger.Debug(ctx, "skipping non-regular entry", logging.Fields{
				"path": entry.Path,
				"mode": entry.Mode.String(),
			})
			continue
		}

		record := &models.FileRecord{
			Name: entry.Name,
			Path: entry.Path,
			Size: entry.Size,
		}

		digest, err := hasher.Hash(ctx, backend, entry.Name)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			record.HashError = err.Error()
			logger.Warn(ctx, "file could not be hashed", logging.Fields{
				"path":  entry.Path,
				"error": err.Error(),
			})
		} else {
			record.Digest = digest
			record.Hashed = true
		}

		snap.Add(record)
	}

	logger.Debug(ctx, "snapshot built", logging.Fields{
		"root":  snap.Root,
		"files": snap.Len(),
	})

	return snap, nil
}

// Unreadable returns the number of records whose content could not be hashed
func Unreadable(snap *models.Snapshot) int {
	n := 0
	for _, r := range snap.Records {
		if !r.Hashed {
			n++
		}
	}
	return n
}
