package compare

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"sync"

	"github.com/sdejongh/dirsimilar/pkg/models"
	"github.com/sdejongh/dirsimilar/pkg/storage"
)

// DefaultBlockSize is the read size used for hashing and byte scoring
const DefaultBlockSize = 4096

// Hasher computes SHA-256 digests of whole files read in fixed-size blocks
type Hasher struct {
	blockSize  int
	bufferPool *sync.Pool
}

// NewHasher creates a new hasher; blockSize <= 0 selects DefaultBlockSize
func NewHasher(blockSize int) *Hasher {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Hasher{
		blockSize:  blockSize,
		bufferPool: newBufferPool(blockSize),
	}
}

// Hash computes the digest of the named file in backend.
// An empty file hashes the empty byte sequence.
func (h *Hasher) Hash(ctx context.Context, backend storage.Backend, name string) (models.Digest, error) {
	var digest models.Digest

	reader, err := backend.Read(ctx, name)
	if err != nil {
		return digest, fmt.Errorf("failed to open file: %w", err)
	}
	defer reader.Close()

	hasher := sha256.New()

	bufPtr := h.bufferPool.Get().(*[]byte)
	buffer := *bufPtr
	defer h.bufferPool.Put(bufPtr)

	for {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return digest, ctx.Err()
		default:
		}

		n, err := reader.Read(buffer)
		if n > 0 {
			hasher.Write(buffer[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return digest, fmt.Errorf("failed to read file: %w", err)
		}
	}

	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

func newBufferPool(size int) *sync.Pool {
	return &sync.Pool{
		New: func() interface{} {
			buf := make([]byte, size)
			return &buf
		},
	}
}
