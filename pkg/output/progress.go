package output

import (
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// progressTemplate shows the pair counter, bar and percentage
const progressTemplate = `{{string . "prefix"}}{{counters . }} {{bar . }} {{percent . }}`

// Progress receives pair-comparison progress from the engine
type Progress interface {
	Start(total int)
	Set(current int)
	Finish()
}

// ProgressBar renders comparison progress with a terminal progress bar
type ProgressBar struct {
	writer io.Writer
	bar    *pb.ProgressBar
}

// NewProgressBar creates a progress bar writing to writer (nil = stderr)
func NewProgressBar(writer io.Writer) *ProgressBar {
	if writer == nil {
		writer = os.Stderr
	}
	return &ProgressBar{writer: writer}
}

// Start begins rendering for total pairs
func (p *ProgressBar) Start(total int) {
	p.bar = pb.New(total)
	p.bar.SetTemplateString(progressTemplate)
	p.bar.Set("prefix", "comparing pairs ")
	p.bar.SetWriter(p.writer)
	p.bar.SetMaxWidth(100)
	p.bar.Start()
}

// Set updates the number of pairs compared
func (p *ProgressBar) Set(current int) {
	if p.bar != nil {
		p.bar.SetCurrent(int64(current))
	}
}

// Finish stops rendering
func (p *ProgressBar) Finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
