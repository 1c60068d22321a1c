// Package report computes name-based differences between two snapshots.
package report

import (
	"github.com/sdejongh/dirsimilar/pkg/models"
)

// Differences returns a MissingFromB finding for every name of a absent from b,
// followed by a MissingFromA finding for every name of b absent from a.
// Only names are compared; content plays no part.
func Differences(a, b *models.Snapshot) []models.Finding {
	var findings []models.Finding
	findings = append(findings, MissingFromB(a, b)...)
	findings = append(findings, MissingFromA(a, b)...)
	return findings
}

// MissingFromB lists names present in a but not in b
func MissingFromB(a, b *models.Snapshot) []models.Finding {
	var findings []models.Finding
	for _, name := range a.Names() {
		if b.Has(name) {
			continue
		}
		findings = append(findings, models.Finding{
			Kind:  models.FindingMissingFromB,
			DirA:  a.Root,
			DirB:  b.Root,
			NameA: name,
		})
	}
	return findings
}

// MissingFromA lists names present in b but not in a
func MissingFromA(a, b *models.Snapshot) []models.Finding {
	var findings []models.Finding
	for _, name := range b.Names() {
		if a.Has(name) {
			continue
		}
		findings = append(findings, models.Finding{
			Kind:  models.FindingMissingFromA,
			DirA:  a.Root,
			DirB:  b.Root,
			NameB: name,
		})
	}
	return findings
}
