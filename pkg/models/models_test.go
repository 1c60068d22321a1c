package models

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestFindingDescribe(t *testing.T) {
	dirA := filepath.Join("data", "a")
	dirB := filepath.Join("data", "b")

	tests := []struct {
		name    string
		finding Finding
		want    string
	}{
		{
			name:    "Identical",
			finding: Finding{Kind: FindingIdentical, DirA: dirA, DirB: dirB, NameA: "x.txt", NameB: "y.txt"},
			want:    "identical: " + filepath.Join(dirA, "x.txt") + " - " + filepath.Join(dirB, "y.txt"),
		},
		{
			name:    "Similar",
			finding: Finding{Kind: FindingSimilar, DirA: dirA, DirB: dirB, NameA: "a.txt", NameB: "b.txt", Similarity: 75},
			want:    "similar: " + filepath.Join(dirA, "a.txt") + " - " + filepath.Join(dirB, "b.txt") + " - 75.0%",
		},
		{
			name:    "SimilarRounded",
			finding: Finding{Kind: FindingSimilar, DirA: dirA, DirB: dirB, NameA: "a", NameB: "b", Similarity: 200.0 / 3},
			want:    "similar: " + filepath.Join(dirA, "a") + " - " + filepath.Join(dirB, "b") + " - 66.7%",
		},
		{
			name:    "MissingFromB",
			finding: Finding{Kind: FindingMissingFromB, DirA: dirA, DirB: dirB, NameA: "only-a.txt"},
			want:    "missing: " + filepath.Join(dirA, "only-a.txt") + " is not present in " + dirB,
		},
		{
			name:    "MissingFromA",
			finding: Finding{Kind: FindingMissingFromA, DirA: dirA, DirB: dirB, NameB: "only-b.txt"},
			want:    "missing: " + filepath.Join(dirB, "only-b.txt") + " is not present in " + dirA,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.finding.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFileRecordSameContent(t *testing.T) {
	d := Digest{1, 2, 3}

	tests := []struct {
		name string
		a, b FileRecord
		want bool
	}{
		{"BothHashedEqual", FileRecord{Digest: d, Hashed: true}, FileRecord{Digest: d, Hashed: true}, true},
		{"BothHashedDifferent", FileRecord{Digest: d, Hashed: true}, FileRecord{Hashed: true}, false},
		{"OneUnhashed", FileRecord{Digest: d, Hashed: true}, FileRecord{Digest: d}, false},
		{"BothUnhashed", FileRecord{}, FileRecord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameContent(&tt.b); got != tt.want {
				t.Errorf("SameContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDigest(t *testing.T) {
	var zero Digest
	if !zero.IsZero() {
		t.Error("zero digest should report IsZero")
	}

	d := Digest{0xab, 0xcd}
	if d.IsZero() {
		t.Error("non-zero digest should not report IsZero")
	}
	if got := d.String(); len(got) != 2*DigestSize || got[:4] != "abcd" {
		t.Errorf("String() = %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot("root")
	s.Add(&FileRecord{Name: "b.txt", Size: 2})
	s.Add(&FileRecord{Name: "a.txt", Size: 1})
	s.Add(&FileRecord{Name: "C.txt", Size: 4})

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if want := []string{"C.txt", "a.txt", "b.txt"}; !reflect.DeepEqual(s.Names(), want) {
		t.Errorf("Names() = %v, want %v", s.Names(), want)
	}
	if !s.Has("a.txt") || s.Has("A.txt") {
		t.Error("Has() should match names literally")
	}
	if s.Get("missing") != nil {
		t.Error("Get() should return nil for unknown names")
	}
	if s.TotalBytes() != 7 {
		t.Errorf("TotalBytes() = %d, want 7", s.TotalBytes())
	}
}

func TestStatisticsCount(t *testing.T) {
	var s Statistics
	for _, kind := range []FindingKind{FindingIdentical, FindingSimilar, FindingSimilar, FindingMissingFromA, FindingMissingFromB, FindingMissingFromB} {
		s.Count(Finding{Kind: kind})
	}

	if s.Identical != 1 || s.Similar != 2 || s.MissingFromA != 1 || s.MissingFromB != 2 {
		t.Errorf("Count() = %+v", s)
	}
}

func TestStatusExitCode(t *testing.T) {
	tests := []struct {
		status Status
		want   int
	}{
		{StatusSuccess, 0},
		{StatusFailed, 1},
		{StatusCancelled, 3},
		{Status("bogus"), 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
