package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sdejongh/dirsimilar/pkg/storage"
)

// ErrEmptyFile is returned when either file of a scored pair has zero length
var ErrEmptyFile = errors.New("empty file")

// Score holds the byte-overlap measurement of one file pair
type Score struct {
	SizeA       int64
	SizeB       int64
	CommonBytes int64
}

// Percentage returns CommonBytes relative to the larger file, in percent
func (s Score) Percentage() float64 {
	larger := s.SizeA
	if s.SizeB > larger {
		larger = s.SizeB
	}
	if larger == 0 {
		return 0
	}
	return float64(s.CommonBytes) / float64(larger) * 100.0
}

// Scorer measures positional byte overlap between two files
// Both files are read in parallel fixed-size blocks; within each block only
// the overlap of the two reads is compared.
type Scorer struct {
	blockSize  int
	bufferPool *sync.Pool
}

// NewScorer creates a byte-overlap scorer; blockSize <= 0 selects DefaultBlockSize
func NewScorer(blockSize int) *Scorer {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Scorer{
		blockSize:  blockSize,
		bufferPool: newBufferPool(blockSize),
	}
}

// Score compares nameA in a with nameB in b.
// It returns ErrEmptyFile when either file has zero length, and an error when
// either file cannot be opened or read.
func (s *Scorer) Score(ctx context.Context, a, b storage.Backend, nameA, nameB string) (Score, error) {
	var score Score

	readerA, err := a.Read(ctx, nameA)
	if err != nil {
		return score, fmt.Errorf("failed to open %s: %w", nameA, err)
	}
	defer readerA.Close()

	readerB, err := b.Read(ctx, nameB)
	if err != nil {
		return score, fmt.Errorf("failed to open %s: %w", nameB, err)
	}
	defer readerB.Close()

	infoA, err := a.Stat(ctx, nameA)
	if err != nil {
		return score, fmt.Errorf("failed to stat %s: %w", nameA, err)
	}
	infoB, err := b.Stat(ctx, nameB)
	if err != nil {
		return score, fmt.Errorf("failed to stat %s: %w", nameB, err)
	}
	score.SizeA = infoA.Size
	score.SizeB = infoB.Size

	if score.SizeA == 0 || score.SizeB == 0 {
		return score, ErrEmptyFile
	}

	bufPtrA := s.bufferPool.Get().(*[]byte)
	defer s.bufferPool.Put(bufPtrA)
	bufA := *bufPtrA

	bufPtrB := s.bufferPool.Get().(*[]byte)
	defer s.bufferPool.Put(bufPtrB)
	bufB := *bufPtrB

	for {
		select {
		case <-ctx.Done():
			return score, ctx.Err()
		default:
		}

		// ReadFull yields whole blocks until the final, possibly short, one
		nA, errA := io.ReadFull(readerA, bufA)
		nB, errB := io.ReadFull(readerB, bufB)

		score.CommonBytes += countEqual(bufA[:nA], bufB[:nB])

		if err := readError(errA); err != nil {
			return score, fmt.Errorf("failed to read %s: %w", nameA, err)
		}
		if err := readError(errB); err != nil {
			return score, fmt.Errorf("failed to read %s: %w", nameB, err)
		}

		// Stop once either stream is exhausted
		if errA != nil || errB != nil {
			break
		}
	}

	return score, nil
}

// countEqual counts equal byte positions over the shorter of a and b
func countEqual(a, b []byte) int64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var common int64
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			common++
		}
	}
	return common
}

// readError filters out the end-of-stream errors returned by io.ReadFull
func readError(err error) error {
	if err == nil || err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil
	}
	return err
}
