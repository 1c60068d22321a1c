package models

import (
	"time"
)

// Report represents the results of one directory comparison
type Report struct {
	// Run details
	RunID     string
	DirA      string
	DirB      string
	Threshold float64

	// Timing
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	// Findings in emission order
	Findings []Finding

	// Statistics
	Stats Statistics

	// Overall status
	Status Status
}

// Statistics holds comparison metrics
type Statistics struct {
	// Files scanned per side
	FilesScannedA int
	FilesScannedB int

	// Files that could not be read while hashing
	UnreadableA int
	UnreadableB int

	// Bytes hashed per side
	BytesScannedA int64
	BytesScannedB int64

	// Pairs examined by the pairwise comparator
	PairsCompared int
	PairsScored   int // Pairs that went through byte-overlap scoring
	PairsSkipped  int // Unreadable or empty pairs

	// Findings per kind
	Identical    int
	Similar      int
	MissingFromA int
	MissingFromB int
}

// Count increments the per-kind counter for a finding
func (s *Statistics) Count(f Finding) {
	switch f.Kind {
	case FindingIdentical:
		s.Identical++
	case FindingSimilar:
		s.Similar++
	case FindingMissingFromA:
		s.MissingFromA++
	case FindingMissingFromB:
		s.MissingFromB++
	}
}

// Status represents the overall result
type Status string

const (
	// StatusSuccess indicates the comparison ran to completion
	StatusSuccess Status = "success"
	// StatusFailed indicates the comparison could not run
	StatusFailed Status = "failed"
	// StatusCancelled indicates the comparison was cancelled
	StatusCancelled Status = "cancelled"
)

// ExitCode returns the appropriate exit code for the status
func (s Status) ExitCode() int {
	switch s {
	case StatusSuccess:
		return 0
	case StatusFailed:
		return 1
	case StatusCancelled:
		return 3
	default:
		return 1
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
