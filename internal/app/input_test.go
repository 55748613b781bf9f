package app

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.log")
	if err := os.WriteFile(path, []byte("1\n2\n3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadLines(strings.NewReader("x\ny\n"), []string{path, "-"}, 0)
	if err != nil {
		t.Fatalf("ReadLines returned error: %v", err)
	}
	if want := []string{"1", "2", "3", "x", "y"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadLines = %q, want %q", got, want)
	}

	got, err = ReadLines(strings.NewReader("x\ny\n"), nil, 1)
	if err != nil {
		t.Fatalf("ReadLines returned error: %v", err)
	}
	if want := []string{"y"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ReadLines = %q, want %q", got, want)
	}

	if _, err := ReadLines(nil, []string{filepath.Join(t.TempDir(), "missing")}, 0); err == nil {
		t.Fatalf("ReadLines returned nil error for missing file")
	}
}
