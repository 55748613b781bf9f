package pager

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/bunyan/internal/filter"
	"github.com/five82/bunyan/internal/level"
	"github.com/five82/bunyan/internal/prefs"
)

// Options configure the pager.
type Options struct {
	Filter    filter.Filter
	Color     bool
	PrefsPath string // empty disables remembering the chosen level
}

var (
	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Model is the Bubble Tea model of the pager.
type Model struct {
	entries  []entry
	minLevel *level.Level
	shown    int

	prefsPath string

	keys     keyMap
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	showHelp bool
}

// New renders lines and returns a model ready to run.
func New(lines []string, opts Options) (Model, error) {
	entries, err := buildEntries(lines, opts.Filter, opts.Color)
	if err != nil {
		return Model{}, err
	}
	minLevel := opts.Filter.MinLevel
	if minLevel == nil && opts.PrefsPath != "" {
		minLevel, _ = prefs.Load(opts.PrefsPath).Level()
	}
	return Model{
		entries:   entries,
		minLevel:  minLevel,
		prefsPath: opts.PrefsPath,
		keys:      defaultKeyMap(),
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.bodyHeight())
			m.ready = true
			m.refresh()
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = m.bodyHeight()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.CycleLevel):
			m.minLevel = nextLevel(m.minLevel)
			m.refresh()
			if m.prefsPath != "" {
				_ = prefs.Save(m.prefsPath, prefs.Load(m.prefsPath).WithLevel(m.minLevel))
			}
			return m, nil
		case key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m Model) bodyHeight() int {
	return max(m.height-1, 1)
}

// refresh rebuilds the viewport content for the current level.
func (m *Model) refresh() {
	var b strings.Builder
	m.shown = 0
	for _, e := range m.entries {
		if !e.visible(m.minLevel) {
			continue
		}
		if m.shown > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.text)
		m.shown++
	}
	if m.ready {
		m.viewport.SetContent(b.String())
		m.viewport.GotoTop()
	}
}

func (m Model) levelLabel() string {
	if m.minLevel == nil {
		return "all"
	}
	return m.minLevel.String() + "+"
}

func (m Model) renderStatus() string {
	parts := []string{
		titleStyle.Render("bunyan"),
		"level " + m.levelLabel(),
		fmt.Sprintf("%d/%d entries", m.shown, len(m.entries)),
		fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100),
	}
	if m.showHelp {
		var help []string
		for _, b := range m.keys.bindings() {
			h := b.Help()
			help = append(help, h.Key+" "+h.Desc)
		}
		parts = append(parts, mutedStyle.Render(strings.Join(help, " • ")))
	} else {
		parts = append(parts, mutedStyle.Render("? help"))
	}
	return statusStyle.Width(m.width).Render(strings.Join(parts, "  "))
}

// Run shows lines until the user quits or ctx is cancelled.
func Run(ctx context.Context, lines []string, opts Options) error {
	m, err := New(lines, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInputTTY(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("run pager: %w", err)
	}
	return nil
}
