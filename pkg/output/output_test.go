package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdejongh/dirsimilar/pkg/models"
)

func sampleFindings() []models.Finding {
	return []models.Finding{
		{Kind: models.FindingIdentical, DirA: "a", DirB: "b", NameA: "f.txt", NameB: "g.txt"},
		{Kind: models.FindingSimilar, DirA: "a", DirB: "b", NameA: "x.bin", NameB: "y.bin", Similarity: 200.0 / 3},
		{Kind: models.FindingMissingFromB, DirA: "a", DirB: "b", NameA: "only-a"},
		{Kind: models.FindingMissingFromA, DirA: "a", DirB: "b", NameB: "only-b"},
	}
}

func sampleReport(findings []models.Finding) *models.Report {
	rep := &models.Report{
		RunID:     "run-1",
		DirA:      "a",
		DirB:      "b",
		Threshold: 60,
		Duration:  1500 * time.Millisecond,
		Findings:  findings,
		Status:    models.StatusSuccess,
	}
	rep.Stats.FilesScannedA = 3
	rep.Stats.FilesScannedB = 3
	rep.Stats.PairsCompared = 9
	for _, f := range findings {
		rep.Stats.Count(f)
	}
	return rep
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"human", "human"},
		{"json", "json"},
		{"", "human"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := New(tt.name, false).Name(); got != tt.want {
				t.Errorf("New(%q).Name() = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestHumanFormatter(t *testing.T) {
	t.Run("OneLinePerFinding", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewHumanFormatter(false)
		require.NoError(t, f.Start(&buf, "a", "b", 60))

		findings := sampleFindings()
		for _, finding := range findings {
			require.NoError(t, f.Finding(finding))
		}
		require.NoError(t, f.Complete(sampleReport(findings)))

		want := strings.Join([]string{
			"identical: " + filepath.Join("a", "f.txt") + " - " + filepath.Join("b", "g.txt"),
			"similar: " + filepath.Join("a", "x.bin") + " - " + filepath.Join("b", "y.bin") + " - 66.7%",
			"missing: " + filepath.Join("a", "only-a") + " is not present in b",
			"missing: " + filepath.Join("b", "only-b") + " is not present in a",
		}, "\n") + "\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("Summary", func(t *testing.T) {
		var buf bytes.Buffer
		f := NewHumanFormatter(true)
		require.NoError(t, f.Start(&buf, "a", "b", 60))
		require.NoError(t, f.Complete(sampleReport(sampleFindings())))

		out := buf.String()
		assert.Contains(t, out, "Compared in 1.5s")
		assert.Contains(t, out, "Identical:  1")
		assert.Contains(t, out, "Similar:    1 (threshold 60.0%)")
		assert.Contains(t, out, "9 compared")
		assert.NotContains(t, out, "Unreadable")
	})
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter()
	require.NoError(t, f.Start(&buf, "a", "b", 60))

	findings := sampleFindings()
	for _, finding := range findings {
		require.NoError(t, f.Finding(finding))
	}
	require.NoError(t, f.Complete(sampleReport(findings)))

	var doc JSONReportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "run-1", doc.RunID)
	assert.Equal(t, "success", doc.Status)
	assert.Equal(t, 60.0, doc.Threshold)
	assert.Equal(t, int64(1500), doc.DurationMs)
	require.Len(t, doc.Findings, 4)

	assert.Equal(t, "identical", doc.Findings[0].Kind)
	assert.Nil(t, doc.Findings[0].Similarity)

	require.NotNil(t, doc.Findings[1].Similarity)
	assert.Equal(t, 66.7, *doc.Findings[1].Similarity)

	assert.Equal(t, filepath.Join("a", "only-a"), doc.Findings[2].PathA)
	assert.Empty(t, doc.Findings[2].PathB)
	assert.Equal(t, filepath.Join("b", "only-b"), doc.Findings[3].PathB)
	assert.Empty(t, doc.Findings[3].PathA)

	assert.Equal(t, 9, doc.Stats.PairsCompared)
	assert.Equal(t, 1, doc.Stats.MissingFromA)
}

func TestJSONFormatterNoFindings(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter()
	require.NoError(t, f.Start(&buf, "a", "b", 80))
	require.NoError(t, f.Complete(sampleReport(nil)))

	assert.Contains(t, buf.String(), `"findings": []`)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1048576, "1.0 MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatBytes(tt.bytes); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressBar(&buf)

	// Set before Start is a no-op
	p.Set(1)

	p.Start(4)
	for i := 1; i <= 4; i++ {
		p.Set(i)
	}
	p.Finish()
	p.Finish()

	assert.Contains(t, buf.String(), "comparing pairs")
}
