package models

import (
	"encoding/hex"
	"sort"
)

// DigestSize is the size of a SHA-256 digest in bytes
const DigestSize = 32

// Digest is the SHA-256 digest of a file's full content
type Digest [DigestSize]byte

// String returns the hex-encoded digest
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest is unset
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// FileRecord represents one regular file captured in a snapshot
type FileRecord struct {
	// Name is the file name, unique within a snapshot
	Name string

	// Path is the full path used to reopen the file
	Path string

	// Size in bytes
	Size int64

	// Digest is the content hash (valid only when Hashed is true)
	Digest Digest

	// Hashed is false when the file could not be read while hashing
	Hashed bool

	// HashError describes why hashing failed
	HashError string
}

// SameContent reports whether both records were hashed and their digests match.
// Unreadable files never match anything, including each other.
func (r *FileRecord) SameContent(other *FileRecord) bool {
	if r == nil || other == nil {
		return false
	}
	return r.Hashed && other.Hashed && r.Digest == other.Digest
}

// Snapshot maps file names to records for the top-level regular files of one directory
type Snapshot struct {
	// Root is the directory path as supplied by the caller
	Root string

	// Records indexed by file name
	Records map[string]*FileRecord
}

// NewSnapshot creates an empty snapshot for root
func NewSnapshot(root string) *Snapshot {
	return &Snapshot{
		Root:    root,
		Records: make(map[string]*FileRecord),
	}
}

// Add stores a record, replacing any record with the same name
func (s *Snapshot) Add(record *FileRecord) {
	s.Records[record.Name] = record
}

// Get returns the record for name, or nil
func (s *Snapshot) Get(name string) *FileRecord {
	return s.Records[name]
}

// Has reports whether name is present
func (s *Snapshot) Has(name string) bool {
	_, ok := s.Records[name]
	return ok
}

// Len returns the number of records
func (s *Snapshot) Len() int {
	return len(s.Records)
}

// Names returns the record names in lexical order
func (s *Snapshot) Names() []string {
	names := make([]string, 0, len(s.Records))
	for name := range s.Records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TotalBytes returns the sum of all record sizes
func (s *Snapshot) TotalBytes() int64 {
	var total int64
	for _, r := range s.Records {
		total += r.Size
	}
	return total
}
