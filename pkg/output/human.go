package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sdejongh/dirsimilar/pkg/models"
)

// HumanFormatter writes one line per finding
type HumanFormatter struct {
	writer  io.Writer
	summary bool
}

// NewHumanFormatter creates a new human-readable formatter.
// When summary is true, Complete appends a short summary block.
func NewHumanFormatter(summary bool) *HumanFormatter {
	return &HumanFormatter{summary: summary}
}

// Start initializes the formatter
func (f *HumanFormatter) Start(writer io.Writer, dirA, dirB string, threshold float64) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	return nil
}

// Finding writes the finding on its own line
func (f *HumanFormatter) Finding(finding models.Finding) error {
	_, err := fmt.Fprintln(f.writer, finding.Describe())
	return err
}

// Complete writes the optional summary
func (f *HumanFormatter) Complete(report *models.Report) error {
	if !f.summary {
		return nil
	}

	s := report.Stats
	fmt.Fprintf(f.writer, "\n")
	fmt.Fprintf(f.writer, "Compared in %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintf(f.writer, "  Files:      %d in %s, %d in %s\n", s.FilesScannedA, report.DirA, s.FilesScannedB, report.DirB)
	fmt.Fprintf(f.writer, "  Data:       %s, %s\n", formatBytes(s.BytesScannedA), formatBytes(s.BytesScannedB))
	fmt.Fprintf(f.writer, "  Pairs:      %d compared, %d scored, %d skipped\n", s.PairsCompared, s.PairsScored, s.PairsSkipped)
	fmt.Fprintf(f.writer, "  Identical:  %d\n", s.Identical)
	fmt.Fprintf(f.writer, "  Similar:    %d (threshold %.1f%%)\n", s.Similar, report.Threshold)
	fmt.Fprintf(f.writer, "  Missing:    %d from %s, %d from %s\n", s.MissingFromB, report.DirB, s.MissingFromA, report.DirA)
	if s.UnreadableA+s.UnreadableB > 0 {
		fmt.Fprintf(f.writer, "  Unreadable: %d\n", s.UnreadableA+s.UnreadableB)
	}
	return nil
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// formatBytes formats bytes in human-readable format
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
