// Package engine drives one directory comparison: it opens both directories,
// builds their snapshots, runs the pairwise comparison and the name-based
// difference report, and streams findings to a formatter.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sdejongh/dirsimilar/pkg/compare"
	"github.com/sdejongh/dirsimilar/pkg/logging"
	"github.com/sdejongh/dirsimilar/pkg/models"
	"github.com/sdejongh/dirsimilar/pkg/output"
	"github.com/sdejongh/dirsimilar/pkg/report"
	"github.com/sdejongh/dirsimilar/pkg/snapshot"
	"github.com/sdejongh/dirsimilar/pkg/storage"
)

// ErrDirectoryNotFound is returned when either input directory does not exist
var ErrDirectoryNotFound = errors.New("directory does not exist")

// Opener opens a directory as a storage backend
type Opener func(path string) (storage.Backend, error)

// OpenLocal opens path on the local filesystem
func OpenLocal(path string) (storage.Backend, error) {
	return storage.NewLocal(path)
}

// Request holds the three inputs of a comparison
type Request struct {
	DirA      string
	DirB      string
	Threshold float64
}

// Options configures an Engine
type Options struct {
	// BlockSize is the read size for hashing and scoring (0 = default)
	BlockSize int
	// Open opens directories (nil = local filesystem)
	Open Opener
	// Formatter receives findings (nil = human formatter)
	Formatter output.Formatter
	// Writer receives formatter output (nil = stdout)
	Writer io.Writer
	// Progress receives pair progress (optional)
	Progress output.Progress
	// Logger receives diagnostics (nil = discard)
	Logger logging.Logger
}

// Engine orchestrates a comparison run
type Engine struct {
	open       Opener
	hasher     *compare.Hasher
	comparator *compare.PairwiseComparator
	formatter  output.Formatter
	writer     io.Writer
	progress   output.Progress
	logger     logging.Logger
}

// New creates an engine from opts
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	open := opts.Open
	if open == nil {
		open = OpenLocal
	}
	formatter := opts.Formatter
	if formatter == nil {
		formatter = output.NewHumanFormatter(false)
	}

	return &Engine{
		open:       open,
		hasher:     compare.NewHasher(opts.BlockSize),
		comparator: compare.NewPairwiseComparator(compare.NewScorer(opts.BlockSize), logger),
		formatter:  formatter,
		writer:     opts.Writer,
		progress:   opts.Progress,
		logger:     logger,
	}
}

// Run executes one comparison. Both directories are checked before any file
// is hashed; if either is missing Run returns an error wrapping
// ErrDirectoryNotFound and emits no findings. Unreadable and empty files
// never abort the run.
func (e *Engine) Run(ctx context.Context, req Request) (*models.Report, error) {
	rep := &models.Report{
		RunID:     uuid.New().String(),
		DirA:      req.DirA,
		DirB:      req.DirB,
		Threshold: req.Threshold,
		StartTime: time.Now(),
		Status:    models.StatusFailed,
	}
	logger := e.logger.WithFields(logging.Fields{"run_id": rep.RunID})

	logger.Info(ctx, "comparison started", logging.Fields{
		"dir_a":     req.DirA,
		"dir_b":     req.DirB,
		"threshold": req.Threshold,
	})

	backendA, backendB, err := e.openBoth(req)
	if err != nil {
		logger.Error(ctx, "comparison aborted", err, nil)
		return rep, err
	}
	defer backendA.Close()
	defer backendB.Close()

	// The two scans are independent; comparison waits for both
	var snapA, snapB *models.Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapA, err = snapshot.Build(gctx, backendA, e.hasher, logger.WithFields(logging.Fields{"side": "a"}))
		return err
	})
	g.Go(func() error {
		var err error
		snapB, err = snapshot.Build(gctx, backendB, e.hasher, logger.WithFields(logging.Fields{"side": "b"}))
		return err
	})
	if err := g.Wait(); err != nil {
		return e.abort(ctx, logger, rep, err)
	}

	rep.Stats.FilesScannedA = snapA.Len()
	rep.Stats.FilesScannedB = snapB.Len()
	rep.Stats.BytesScannedA = snapA.TotalBytes()
	rep.Stats.BytesScannedB = snapB.TotalBytes()
	rep.Stats.UnreadableA = snapshot.Unreadable(snapA)
	rep.Stats.UnreadableB = snapshot.Unreadable(snapB)

	if err := e.formatter.Start(e.writer, req.DirA, req.DirB, req.Threshold); err != nil {
		return rep, fmt.Errorf("failed to start output: %w", err)
	}

	var emitErr error
	emit := func(f models.Finding) {
		rep.Findings = append(rep.Findings, f)
		rep.Stats.Count(f)
		if err := e.formatter.Finding(f); err != nil && emitErr == nil {
			emitErr = err
		}
	}

	if e.progress != nil {
		e.progress.Start(snapA.Len() * snapB.Len())
		e.comparator.SetProgressCallback(func(current, total int) {
			e.progress.Set(current)
		})
	}

	a := compare.Side{Snapshot: snapA, Backend: backendA}
	b := compare.Side{Snapshot: snapB, Backend: backendB}
	pairStats, err := e.comparator.Compare(ctx, a, b, req.Threshold, emit)

	if e.progress != nil {
		e.progress.Finish()
	}

	rep.Stats.PairsCompared = pairStats.Compared
	rep.Stats.PairsScored = pairStats.Scored
	rep.Stats.PairsSkipped = pairStats.Skipped
	if err != nil {
		return e.abort(ctx, logger, rep, err)
	}

	for _, f := range report.Differences(snapA, snapB) {
		emit(f)
	}
	if emitErr != nil {
		return rep, fmt.Errorf("failed to write findings: %w", emitErr)
	}

	rep.Status = models.StatusSuccess
	e.finish(rep)

	logger.Info(ctx, "comparison completed", logging.Fields{
		"identical":      rep.Stats.Identical,
		"similar":        rep.Stats.Similar,
		"missing_from_a": rep.Stats.MissingFromA,
		"missing_from_b": rep.Stats.MissingFromB,
		"pairs_skipped":  rep.Stats.PairsSkipped,
		"duration_ms":    rep.Duration.Milliseconds(),
	})

	if err := e.formatter.Complete(rep); err != nil {
		return rep, fmt.Errorf("failed to complete output: %w", err)
	}
	return rep, nil
}

// openBoth opens both directories before either is scanned
func (e *Engine) openBoth(req Request) (storage.Backend, storage.Backend, error) {
	backendA, errA := e.open(req.DirA)
	backendB, errB := e.open(req.DirB)

	if errA != nil || errB != nil {
		if backendA != nil {
			backendA.Close()
		}
		if backendB != nil {
			backendB.Close()
		}
		if errA != nil {
			return nil, nil, classifyOpenError(req.DirA, errA)
		}
		return nil, nil, classifyOpenError(req.DirB, errB)
	}
	return backendA, backendB, nil
}

func classifyOpenError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, path)
	}
	return fmt.Errorf("failed to open %s: %w", path, err)
}

func (e *Engine) abort(ctx context.Context, logger logging.Logger, rep *models.Report, err error) (*models.Report, error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		rep.Status = models.StatusCancelled
	}
	e.finish(rep)
	logger.Error(ctx, "comparison aborted", err, nil)
	return rep, fmt.Errorf("comparison failed: %w", err)
}

func (e *Engine) finish(rep *models.Report) {
	rep.EndTime = time.Now()
	rep.Duration = rep.EndTime.Sub(rep.StartTime)
}
