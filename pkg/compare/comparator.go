package compare

import (
	"context"
	"errors"

	"github.com/sdejongh/dirsimilar/pkg/logging"
	"github.com/sdejongh/dirsimilar/pkg/models"
	"github.com/sdejongh/dirsimilar/pkg/storage"
)

// Result represents the classification of one file pair
type Result string

const (
	// Identical indicates the digests match
	Identical Result = "identical"
	// Similar indicates byte overlap at or above the threshold
	Similar Result = "similar"
	// Unrelated indicates byte overlap below the threshold
	Unrelated Result = "unrelated"
	// Skipped indicates the pair could not be scored (unreadable or empty)
	Skipped Result = "skipped"
)

// Comparison holds the result of comparing two files
type Comparison struct {
	NameA      string
	NameB      string
	Result     Result
	Similarity float64
	Reason     string
	Error      error
}

// Side is one directory of a comparison: its snapshot and the backend it was read from
type Side struct {
	Snapshot *models.Snapshot
	Backend  storage.Backend
}

// PairStats counts what the pairwise comparator did
type PairStats struct {
	Compared int
	Scored   int
	Skipped  int
}

// PairwiseComparator classifies every pair of files across two snapshots
type PairwiseComparator struct {
	scorer         *Scorer
	logger         logging.Logger
	progressReport func(current, total int) // Optional progress callback
}

// NewPairwiseComparator creates a comparator using scorer for byte overlap
func NewPairwiseComparator(scorer *Scorer, logger logging.Logger) *PairwiseComparator {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &PairwiseComparator{
		scorer: scorer,
		logger: logger,
	}
}

// SetProgressCallback sets a callback invoked after each pair is classified
func (c *PairwiseComparator) SetProgressCallback(callback func(current, total int)) {
	c.progressReport = callback
}

// ComparePair classifies a single pair of records.
// Identical digests short-circuit byte scoring.
func (c *PairwiseComparator) ComparePair(ctx context.Context, a, b Side, recA, recB *models.FileRecord, threshold float64) *Comparison {
	comp := &Comparison{NameA: recA.Name, NameB: recB.Name}

	if recA.SameContent(recB) {
		comp.Result = Identical
		comp.Similarity = 100
		comp.Reason = "file hashes match"
		return comp
	}

	score, err := c.scorer.Score(ctx, a.Backend, b.Backend, recA.Name, recB.Name)
	if err != nil {
		comp.Result = Skipped
		comp.Error = err
		if errors.Is(err, ErrEmptyFile) {
			comp.Reason = "empty file"
		} else {
			comp.Reason = "file could not be read"
		}
		return comp
	}

	comp.Similarity = score.Percentage()
	if comp.Similarity >= threshold {
		comp.Result = Similar
		comp.Reason = "byte overlap at or above threshold"
	} else {
		comp.Result = Unrelated
		comp.Reason = "byte overlap below threshold"
	}
	return comp
}

// Compare classifies the full cross product of a and b, calling emit for each
// Identical or Similar pair in cross-product order. Every file of a is
// compared with every file of b regardless of name.
func (c *PairwiseComparator) Compare(ctx context.Context, a, b Side, threshold float64, emit func(models.Finding)) (PairStats, error) {
	var stats PairStats

	namesA := a.Snapshot.Names()
	namesB := b.Snapshot.Names()
	total := len(namesA) * len(namesB)

	for _, nameA := range namesA {
		recA := a.Snapshot.Get(nameA)
		for _, nameB := range namesB {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			recB := b.Snapshot.Get(nameB)
			comp := c.ComparePair(ctx, a, b, recA, recB, threshold)
			stats.Compared++

			switch comp.Result {
			case Identical:
				emit(models.Finding{
					Kind:  models.FindingIdentical,
					DirA:  a.Snapshot.Root,
					DirB:  b.Snapshot.Root,
					NameA: nameA,
					NameB: nameB,
				})
			case Similar:
				stats.Scored++
				emit(models.Finding{
					Kind:       models.FindingSimilar,
					DirA:       a.Snapshot.Root,
					DirB:       b.Snapshot.Root,
					NameA:      nameA,
					NameB:      nameB,
					Similarity: comp.Similarity,
				})
			case Unrelated:
				stats.Scored++
			case Skipped:
				if ctxErr := ctx.Err(); ctxErr != nil {
					return stats, ctxErr
				}
				stats.Skipped++
				c.logger.Debug(ctx, "pair skipped", logging.Fields{
					"file_a": nameA,
					"file_b": nameB,
					"reason": comp.Reason,
					"error":  errString(comp.Error),
				})
			}

			if c.progressReport != nil {
				c.progressReport(stats.Compared, total)
			}
		}
	}

	return stats, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
