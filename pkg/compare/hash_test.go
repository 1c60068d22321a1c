package compare

import (
	"bytes"
	"context"
	"testing"
)

const (
	helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

func TestHasher(t *testing.T) {
	h := NewTestHelper(t)
	h.CreateFileA("hello.txt", []byte("hello"))
	h.CreateFileA("empty.txt", nil)
	h.CreateFileA("large.bin", bytes.Repeat([]byte("0123456789abcdef"), 1000))

	ctx := context.Background()

	t.Run("DefaultBlockSize", func(t *testing.T) {
		if got := NewHasher(0).blockSize; got != DefaultBlockSize {
			t.Errorf("blockSize = %d, want %d", got, DefaultBlockSize)
		}
	})

	t.Run("KnownDigest", func(t *testing.T) {
		d, err := NewHasher(DefaultBlockSize).Hash(ctx, h.a, "hello.txt")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		if d.String() != helloSHA256 {
			t.Errorf("Hash() = %s, want %s", d, helloSHA256)
		}
	})

	t.Run("EmptyFile", func(t *testing.T) {
		d, err := NewHasher(DefaultBlockSize).Hash(ctx, h.a, "empty.txt")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		if d.String() != emptySHA256 {
			t.Errorf("Hash() = %s, want %s", d, emptySHA256)
		}
	})

	t.Run("BlockSizeIndependent", func(t *testing.T) {
		small, err := NewHasher(7).Hash(ctx, h.a, "large.bin")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		large, err := NewHasher(DefaultBlockSize).Hash(ctx, h.a, "large.bin")
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		if small != large {
			t.Errorf("digests differ across block sizes: %s vs %s", small, large)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		d, err := NewHasher(DefaultBlockSize).Hash(ctx, h.a, "missing.txt")
		if err == nil {
			t.Fatal("Hash() should fail for a missing file")
		}
		if !d.IsZero() {
			t.Errorf("Hash() digest = %s, want zero on failure", d)
		}
	})

	t.Run("ContextCancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := NewHasher(DefaultBlockSize).Hash(ctx, h.a, "large.bin"); err == nil {
			t.Error("Hash() should return error on cancelled context")
		}
	})
}
