package pager

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bunyan/internal/filter"
	"github.com/five82/bunyan/internal/level"
	"github.com/five82/bunyan/internal/prefs"
)

var testLines = []string{
	`{"v":0,"level":20,"name":"svc","hostname":"box","pid":1,"time":"2024-01-02T03:04:05.000Z","msg":"debug one"}`,
	"plain text",
	`{"v":0,"level":30,"name":"svc","hostname":"box","pid":1,"time":"2024-01-02T03:04:06.000Z","msg":"info one"}`,
	`{"v":0,"level":50,"name":"svc","hostname":"box","pid":1,"time":"2024-01-02T03:04:07.000Z","msg":"error one"}`,
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized(t *testing.T, opts Options) Model {
	t.Helper()
	m, err := New(testLines, opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	return updated.(Model)
}

func TestModel_ShowsEverythingByDefault(t *testing.T) {
	m := sized(t, Options{})
	if m.shown != 4 {
		t.Fatalf("shown = %d, want 4", m.shown)
	}
	view := m.View()
	for _, want := range []string{"DEBUG: svc/1 on box: debug one", "plain text", "level all", "4/4 entries"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View missing %q:\n%s", want, view)
		}
	}
}

func TestModel_CycleLevel(t *testing.T) {
	m := sized(t, Options{})

	wants := []struct {
		label string
		shown int
	}{
		{"debug+", 4},
		{"info+", 3},
		{"warn+", 2},
		{"error+", 2},
		{"fatal+", 1},
		{"all", 4},
	}
	for _, want := range wants {
		updated, _ := m.Update(keyPress("l"))
		m = updated.(Model)
		if got := m.levelLabel(); got != want.label {
			t.Fatalf("levelLabel = %q, want %q", got, want.label)
		}
		if m.shown != want.shown {
			t.Fatalf("shown at %s = %d, want %d", want.label, m.shown, want.shown)
		}
	}
}

func TestModel_InitialFilter(t *testing.T) {
	opts := Options{Filter: filter.Filter{
		Since: time.Date(2024, 1, 2, 3, 4, 6, 0, time.UTC),
	}.WithMinLevel(level.Error)}
	m := sized(t, opts)
	if len(m.entries) != 3 {
		t.Fatalf("entries = %d, want 3 after time window", len(m.entries))
	}
	if m.shown != 2 {
		t.Fatalf("shown = %d, want 2", m.shown)
	}
	if strings.Contains(m.View(), "info one") {
		t.Fatalf("View shows info record below minimum level")
	}
}

func TestModel_QuitAndHelp(t *testing.T) {
	m := sized(t, Options{})

	updated, _ := m.Update(keyPress("?"))
	m = updated.(Model)
	if !strings.Contains(m.View(), "l cycle level") {
		t.Fatalf("help not shown:\n%s", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c returned nil command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c command did not quit")
	}
}

func TestModel_RemembersLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")

	m := sized(t, Options{PrefsPath: path})
	for range 3 {
		updated, _ := m.Update(keyPress("l"))
		m = updated.(Model)
	}
	if got := prefs.Load(path).PagerLevel; got != "warn" {
		t.Fatalf("saved PagerLevel = %q, want %q", got, "warn")
	}

	reopened := sized(t, Options{PrefsPath: path})
	if got := reopened.levelLabel(); got != "warn+" {
		t.Fatalf("levelLabel after reopen = %q, want %q", got, "warn+")
	}

	explicit := sized(t, Options{PrefsPath: path, Filter: filter.Filter{}.WithMinLevel(level.Debug)})
	if got := explicit.levelLabel(); got != "debug+" {
		t.Fatalf("levelLabel with explicit filter = %q, want %q", got, "debug+")
	}
}

func TestModel_NotReady(t *testing.T) {
	m, err := New(nil, Options{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestNextLevel(t *testing.T) {
	custom := level.Custom(35)
	if got := nextLevel(&custom); got == nil || *got != level.Warn {
		t.Fatalf("nextLevel(LVL35) = %v, want warn", got)
	}
	trace := level.Trace
	if got := nextLevel(&trace); got == nil || *got != level.Debug {
		t.Fatalf("nextLevel(trace) = %v, want debug", got)
	}
	fatal := level.Fatal
	if got := nextLevel(&fatal); got != nil {
		t.Fatalf("nextLevel(fatal) = %v, want nil", *got)
	}
}
