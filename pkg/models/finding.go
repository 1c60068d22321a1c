package models

import (
	"fmt"
	"path/filepath"
)

// FindingKind categorizes a reported outcome
type FindingKind string

const (
	// FindingIdentical indicates both files have the same digest
	FindingIdentical FindingKind = "identical"
	// FindingSimilar indicates byte overlap at or above the threshold
	FindingSimilar FindingKind = "similar"
	// FindingMissingFromB indicates a name present in A but not in B
	FindingMissingFromB FindingKind = "missing_from_b"
	// FindingMissingFromA indicates a name present in B but not in A
	FindingMissingFromA FindingKind = "missing_from_a"
)

// Finding is one reported comparison outcome
type Finding struct {
	Kind FindingKind `json:"kind"`

	// DirA and DirB are the compared directory roots
	DirA string `json:"dir_a"`
	DirB string `json:"dir_b"`

	// NameA is empty for FindingMissingFromA, NameB for FindingMissingFromB
	NameA string `json:"name_a,omitempty"`
	NameB string `json:"name_b,omitempty"`

	// Similarity is the byte-overlap percentage (FindingSimilar only)
	Similarity float64 `json:"similarity,omitempty"`
}

// PathA returns the full path of the A-side file
func (f Finding) PathA() string {
	return filepath.Join(f.DirA, f.NameA)
}

// PathB returns the full path of the B-side file
func (f Finding) PathB() string {
	return filepath.Join(f.DirB, f.NameB)
}

// Describe returns a one-line human-readable description
func (f Finding) Describe() string {
	switch f.Kind {
	case FindingIdentical:
		return fmt.Sprintf("identical: %s - %s", f.PathA(), f.PathB())
	case FindingSimilar:
		return fmt.Sprintf("similar: %s - %s - %.1f%%", f.PathA(), f.PathB(), f.Similarity)
	case FindingMissingFromB:
		return fmt.Sprintf("missing: %s is not present in %s", f.PathA(), f.DirB)
	case FindingMissingFromA:
		return fmt.Sprintf("missing: %s is not present in %s", f.PathB(), f.DirA)
	default:
		return fmt.Sprintf("unknown finding %q", f.Kind)
	}
}
