package record

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/five82/bunyan/internal/level"
)

const sample = `{"v":0,"level":30,"name":"svc","hostname":"box","pid":42,"time":"2024-01-02T03:04:05.006Z","msg":"started","foo":"bar","n":1.50,"tags":["a"]}`

func TestDecode(t *testing.T) {
	rec, err := Decode([]byte(sample))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if rec.Level != level.Info {
		t.Fatalf("Level = %v, want %v", rec.Level, level.Info)
	}
	if rec.Name != "svc" || rec.Hostname != "box" || rec.Message != "started" {
		t.Fatalf("header = %q/%q/%q, want svc/box/started", rec.Name, rec.Hostname, rec.Message)
	}
	if rec.PID != 42 {
		t.Fatalf("PID = %d, want 42", rec.PID)
	}
	want := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	if !rec.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", rec.Time, want)
	}

	wantFields := map[string]any{
		"foo":  "bar",
		"n":    json.Number("1.50"),
		"tags": []any{"a"},
	}
	if !reflect.DeepEqual(rec.Fields, wantFields) {
		t.Fatalf("Fields = %#v, want %#v", rec.Fields, wantFields)
	}
	if got := rec.Keys(); !reflect.DeepEqual(got, []string{"foo", "n", "tags"}) {
		t.Fatalf("Keys = %v, want [foo n tags]", got)
	}
}

func TestDecode_KeepsOffset(t *testing.T) {
	line := strings.Replace(sample, "2024-01-02T03:04:05.006Z", "2024-01-02T03:04:05.006+05:30", 1)
	rec, err := Decode([]byte(line))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if _, offset := rec.Time.Zone(); offset != 5*3600+30*60 {
		t.Fatalf("offset = %d, want %d", offset, 5*3600+30*60)
	}
}

func TestDecode_CustomLevel(t *testing.T) {
	line := strings.Replace(sample, `"level":30`, `"level":35`, 1)
	rec, err := Decode([]byte(line))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if rec.Level != level.Custom(35) {
		t.Fatalf("Level = %v, want LVL35", rec.Level)
	}
}

func TestDecode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"plain text", "hello world", nil},
		{"empty", "", nil},
		{"array", `[1,2,3]`, nil},
		{"null", `null`, ErrNotObject},
		{"trailing data", sample + ` {}`, nil},
		{"missing msg", strings.Replace(sample, `"msg":"started",`, "", 1), ErrMissingField},
		{"missing v", strings.Replace(sample, `"v":0,`, "", 1), ErrMissingField},
		{"string pid", strings.Replace(sample, `"pid":42`, `"pid":"42"`, 1), ErrFieldType},
		{"negative pid", strings.Replace(sample, `"pid":42`, `"pid":-1`, 1), ErrFieldType},
		{"null hostname", strings.Replace(sample, `"hostname":"box"`, `"hostname":null`, 1), ErrFieldType},
		{"float level", strings.Replace(sample, `"level":30`, `"level":30.5`, 1), ErrFieldType},
		{"level out of range", strings.Replace(sample, `"level":30`, `"level":300`, 1), level.ErrInvalidLevelCode},
		{"bad time", strings.Replace(sample, `2024-01-02T03:04:05.006Z`, `yesterday`, 1), ErrFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.line))
			if err == nil {
				t.Fatalf("Decode returned nil error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("Decode error = %v, want %v", err, tt.want)
			}
		})
	}
}
