package output

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"time"

	"github.com/sdejongh/dirsimilar/pkg/models"
)

// JSONFormatter collects findings and writes a single JSON document
type JSONFormatter struct {
	writer   io.Writer
	findings []JSONFindingData
}

// JSONFindingData represents one finding in JSON
type JSONFindingData struct {
	Kind       string   `json:"kind"`
	PathA      string   `json:"path_a,omitempty"`
	PathB      string   `json:"path_b,omitempty"`
	Similarity *float64 `json:"similarity,omitempty"`
}

// JSONReportData represents the final document
type JSONReportData struct {
	RunID      string            `json:"run_id"`
	DirA       string            `json:"dir_a"`
	DirB       string            `json:"dir_b"`
	Threshold  float64           `json:"threshold"`
	Status     string            `json:"status"`
	Duration   string            `json:"duration"`
	DurationMs int64             `json:"duration_ms"`
	Findings   []JSONFindingData `json:"findings"`
	Stats      JSONStatsData     `json:"stats"`
}

// JSONStatsData represents statistics in JSON format
type JSONStatsData struct {
	FilesA        int   `json:"files_a"`
	FilesB        int   `json:"files_b"`
	BytesA        int64 `json:"bytes_a"`
	BytesB        int64 `json:"bytes_b"`
	UnreadableA   int   `json:"unreadable_a"`
	UnreadableB   int   `json:"unreadable_b"`
	PairsCompared int   `json:"pairs_compared"`
	PairsScored   int   `json:"pairs_scored"`
	PairsSkipped  int   `json:"pairs_skipped"`
	Identical     int   `json:"identical"`
	Similar       int   `json:"similar"`
	MissingFromA  int   `json:"missing_from_a"`
	MissingFromB  int   `json:"missing_from_b"`
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		findings: make([]JSONFindingData, 0),
	}
}

// Start initializes the formatter
func (f *JSONFormatter) Start(writer io.Writer, dirA, dirB string, threshold float64) error {
	if writer == nil {
		writer = os.Stdout
	}
	f.writer = writer
	f.findings = f.findings[:0]
	return nil
}

// Finding records a finding for the final document
func (f *JSONFormatter) Finding(finding models.Finding) error {
	data := JSONFindingData{Kind: string(finding.Kind)}
	switch finding.Kind {
	case models.FindingIdentical:
		data.PathA = finding.PathA()
		data.PathB = finding.PathB()
	case models.FindingSimilar:
		data.PathA = finding.PathA()
		data.PathB = finding.PathB()
		// One decimal is enough for reporting
		pct := math.Round(finding.Similarity*10) / 10
		data.Similarity = &pct
	case models.FindingMissingFromB:
		data.PathA = finding.PathA()
	case models.FindingMissingFromA:
		data.PathB = finding.PathB()
	}
	f.findings = append(f.findings, data)
	return nil
}

// Complete writes the JSON document
func (f *JSONFormatter) Complete(report *models.Report) error {
	s := report.Stats
	doc := JSONReportData{
		RunID:      report.RunID,
		DirA:       report.DirA,
		DirB:       report.DirB,
		Threshold:  report.Threshold,
		Status:     string(report.Status),
		Duration:   report.Duration.Round(time.Millisecond).String(),
		DurationMs: report.Duration.Milliseconds(),
		Findings:   f.findings,
		Stats: JSONStatsData{
			FilesA:        s.FilesScannedA,
			FilesB:        s.FilesScannedB,
			BytesA:        s.BytesScannedA,
			BytesB:        s.BytesScannedB,
			UnreadableA:   s.UnreadableA,
			UnreadableB:   s.UnreadableB,
			PairsCompared: s.PairsCompared,
			PairsScored:   s.PairsScored,
			PairsSkipped:  s.PairsSkipped,
			Identical:     s.Identical,
			Similar:       s.Similar,
			MissingFromA:  s.MissingFromA,
			MissingFromB:  s.MissingFromB,
		},
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}
