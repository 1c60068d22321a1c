package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sdejongh/dirsimilar/internal/platform"
	"github.com/sdejongh/dirsimilar/pkg/engine"
)

// InputSource supplies the two directories and the threshold of a comparison
type InputSource interface {
	Inputs() (engine.Request, error)
}

// argsSource takes the directories from positional arguments
type argsSource struct {
	dirA, dirB string
	threshold  float64
}

func (s argsSource) Inputs() (engine.Request, error) {
	return engine.Request{DirA: s.dirA, DirB: s.dirB, Threshold: s.threshold}, nil
}

// PromptSource asks for the inputs on an interactive console
type PromptSource struct {
	in  *bufio.Reader
	out io.Writer

	// AskThreshold is false when the threshold was already given as a flag
	AskThreshold bool
	// Threshold is used when AskThreshold is false
	Threshold float64
}

// NewPromptSource creates a prompt reading from in and writing questions to out
func NewPromptSource(in io.Reader, out io.Writer) *PromptSource {
	return &PromptSource{
		in:           bufio.NewReader(in),
		out:          out,
		AskThreshold: true,
	}
}

// Inputs prompts for the first directory, the second directory and the threshold
func (p *PromptSource) Inputs() (engine.Request, error) {
	var req engine.Request
	var err error

	if req.DirA, err = p.askPath("Path to the first directory: "); err != nil {
		return req, err
	}
	if req.DirB, err = p.askPath("Path to the second directory: "); err != nil {
		return req, err
	}

	req.Threshold = p.Threshold
	if p.AskThreshold {
		line, err := p.ask("Similarity threshold (percent): ")
		if err != nil {
			return req, err
		}
		req.Threshold, err = parseThreshold(line)
		if err != nil {
			return req, err
		}
	}
	return req, nil
}

func (p *PromptSource) askPath(question string) (string, error) {
	line, err := p.ask(question)
	if err != nil {
		return "", err
	}
	if err := platform.ValidatePath(line); err != nil {
		return "", err
	}
	return platform.NormalizePath(line), nil
}

func (p *PromptSource) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		if err == io.EOF {
			return "", fmt.Errorf("no input for %q", strings.TrimSpace(question))
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseThreshold parses a percentage; a trailing % is accepted.
// Any finite value is allowed, including values outside 0-100.
func parseThreshold(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold %q: %w", s, err)
	}
	return v, nil
}
