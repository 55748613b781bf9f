package format

import (
	"bytes"
	"slices"
	"testing"

	"github.com/five82/bunyan/internal/style"
)

func TestWriteJoined(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"a"}, "a"},
		{"many", []string{"a", "b", "c"}, "a, b, c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := style.NewWriter(&buf, false)
			if err := writeJoined(w, slices.Values(tt.items), ", ", w.Write); err != nil {
				t.Fatalf("writeJoined returned error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("writeJoined = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\r\nb", []string{"a", "b"}},
		{"\n", []string{""}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		got := slices.Collect(lines(tt.input))
		if !slices.Equal(got, tt.want) {
			t.Fatalf("lines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBackward(t *testing.T) {
	got := slices.Collect(backward([]int{1, 2, 3}))
	if !slices.Equal(got, []int{3, 2, 1}) {
		t.Fatalf("backward = %v, want [3 2 1]", got)
	}
}
