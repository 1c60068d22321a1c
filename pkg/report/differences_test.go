package report

import (
	"testing"

	"github.com/sdejongh/dirsimilar/pkg/models"
)

func snapshotOf(root string, names ...string) *models.Snapshot {
	s := models.NewSnapshot(root)
	for _, n := range names {
		s.Add(&models.FileRecord{Name: n})
	}
	return s
}

func TestDifferences(t *testing.T) {
	t.Run("DisjointNames", func(t *testing.T) {
		a := snapshotOf("/a", "a.txt")
		b := snapshotOf("/b", "b.txt")

		got := Differences(a, b)
		if len(got) != 2 {
			t.Fatalf("Differences() returned %d findings, want 2", len(got))
		}
		if got[0].Kind != models.FindingMissingFromB || got[0].NameA != "a.txt" {
			t.Errorf("first finding = %+v, want missing_from_b a.txt", got[0])
		}
		if got[1].Kind != models.FindingMissingFromA || got[1].NameB != "b.txt" {
			t.Errorf("second finding = %+v, want missing_from_a b.txt", got[1])
		}
	})

	t.Run("SameNames", func(t *testing.T) {
		a := snapshotOf("/a", "f.txt", "g.txt")
		b := snapshotOf("/b", "g.txt", "f.txt")

		if got := Differences(a, b); len(got) != 0 {
			t.Errorf("Differences() = %+v, want none", got)
		}
	})

	t.Run("EmptyA", func(t *testing.T) {
		a := snapshotOf("/a")
		b := snapshotOf("/b", "x.txt")

		got := Differences(a, b)
		if len(got) != 1 {
			t.Fatalf("Differences() returned %d findings, want 1", len(got))
		}
		if got[0].Kind != models.FindingMissingFromA || got[0].NameB != "x.txt" {
			t.Errorf("finding = %+v, want missing_from_a x.txt", got[0])
		}
		if got[0].DirA != "/a" || got[0].DirB != "/b" {
			t.Errorf("dirs = %s, %s; want /a, /b", got[0].DirA, got[0].DirB)
		}
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		a := snapshotOf("/a", "File.txt")
		b := snapshotOf("/b", "file.txt")

		if got := Differences(a, b); len(got) != 2 {
			t.Errorf("Differences() returned %d findings, want 2 (names are literal)", len(got))
		}
	})

	t.Run("OrderMissingFromBFirst", func(t *testing.T) {
		a := snapshotOf("/a", "z.txt", "shared", "m.txt")
		b := snapshotOf("/b", "shared", "b.txt", "a.txt")

		got := Differences(a, b)
		want := []struct {
			kind models.FindingKind
			name string
		}{
			{models.FindingMissingFromB, "m.txt"},
			{models.FindingMissingFromB, "z.txt"},
			{models.FindingMissingFromA, "a.txt"},
			{models.FindingMissingFromA, "b.txt"},
		}
		if len(got) != len(want) {
			t.Fatalf("Differences() returned %d findings, want %d", len(got), len(want))
		}
		for i, w := range want {
			name := got[i].NameA
			if got[i].Kind == models.FindingMissingFromA {
				name = got[i].NameB
			}
			if got[i].Kind != w.kind || name != w.name {
				t.Errorf("finding[%d] = %s %s, want %s %s", i, got[i].Kind, name, w.kind, w.name)
			}
		}
	})
}
