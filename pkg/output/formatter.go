package output

import (
	"io"

	"github.com/sdejongh/dirsimilar/pkg/models"
)

// Formatter defines the interface for reporting findings
// Implementations include human-readable and JSON formatters
type Formatter interface {
	// Start initializes the formatter for a new comparison
	Start(writer io.Writer, dirA, dirB string, threshold float64) error

	// Finding reports one finding as soon as it is produced
	Finding(f models.Finding) error

	// Complete finalizes output once every finding has been reported
	Complete(report *models.Report) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for name ("human" or "json")
func New(name string, summary bool) Formatter {
	switch name {
	case "json":
		return NewJSONFormatter()
	default:
		return NewHumanFormatter(summary)
	}
}
