package platform

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path forms")
	}

	orig := userHomeDir
	userHomeDir = func() (string, error) { return "/home/tester", nil }
	defer func() { userHomeDir = orig }()

	tests := []struct {
		in, want string
	}{
		{"/tmp/a/", "/tmp/a"},
		{"  /tmp/a/../b  ", "/tmp/b"},
		{"~", "/home/tester"},
		{"~/docs", filepath.Join("/home/tester", "docs")},
		{"~other/docs", "~other/docs"},
		{"rel/./dir", "rel/dir"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath(""); err == nil {
		t.Error("ValidatePath(\"\") should fail")
	}
	if err := ValidatePath("/tmp"); err != nil {
		t.Errorf("ValidatePath(/tmp) error = %v", err)
	}

	var pe *PathError
	err := ValidatePath("")
	if e, ok := err.(*PathError); ok {
		pe = e
	}
	if pe == nil || pe.Message != "path is empty" {
		t.Errorf("ValidatePath(\"\") = %v, want PathError 'path is empty'", err)
	}
}
