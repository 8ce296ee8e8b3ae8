// Package dirpick prompts the user for one or more scan root directories,
// replacing the multi-directory file dialog of the desktop tooling.
package dirpick

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/photocat/gcsel/internal/tui/theme"
)

// KeyMap defines the bindings layered on top of the filepicker.
type KeyMap struct {
	Add     key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

var keys = KeyMap{
	Add: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "add directory"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "confirm"),
	),
	Abort: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc", "abort"),
	),
}

// Model is the bubbletea model for the directory prompt.
type Model struct {
	fp      filepicker.Model
	keys    KeyMap
	chosen  []string
	seen    map[string]struct{}
	aborted bool
	height  int
}

// New creates a directory prompt seeded at startingDir (or the working
// directory when empty).
func New(startingDir string) Model {
	if startingDir == "" {
		if wd, err := os.Getwd(); err == nil {
			startingDir = wd
		}
	}

	fp := filepicker.New()
	fp.CurrentDirectory = startingDir
	fp.DirAllowed = true
	fp.FileAllowed = false
	// Height is managed here so the chosen-directory list below the picker
	// stays visible.
	fp.AutoHeight = false
	fp.Height = 15
	// Keep enter free for confirming the chosen set; navigation stays on h/l.
	fp.KeyMap.Open = key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "open"))
	fp.KeyMap.Select = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "add"))

	return Model{
		fp:   fp,
		keys: keys,
		seen: make(map[string]struct{}),
	}
}

// Chosen returns the confirmed directories in pick order. Empty means the
// user aborted or confirmed nothing.
func (m Model) Chosen() []string {
	if m.aborted {
		return nil
	}
	return m.chosen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.fp.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.fp.Height = msg.Height - 6
		if m.fp.Height < 1 {
			m.fp.Height = 10
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Abort):
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if didSelect, path := m.fp.DidSelectFile(msg); didSelect {
		if _, dup := m.seen[path]; !dup {
			m.seen[path] = struct{}{}
			m.chosen = append(m.chosen, path)
		}
	}
	return m, cmd
}

func (m Model) View() string {
	header := theme.Default.Header.Render("Choose directories to scan")

	var chosen string
	if len(m.chosen) == 0 {
		chosen = theme.Default.Muted.Render("(none added yet)")
	} else {
		var b strings.Builder
		for i, d := range m.chosen {
			fmt.Fprintf(&b, "%d. %s\n", i+1, d)
		}
		chosen = strings.TrimRight(b.String(), "\n")
	}

	footer := theme.Default.Muted.Render("space: add  ·  l: open  ·  h: up  ·  enter: confirm  ·  esc: abort")

	return "\n" + lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.fp.View(),
		theme.Default.Info.Render("Added:"),
		chosen,
		footer,
	)
}

// Prompter runs the directory prompt as a standalone program and satisfies
// the session.Prompter interface.
type Prompter struct{}

// SelectDirectories blocks until the user confirms or aborts the prompt.
func (Prompter) SelectDirectories(startingDir string) ([]string, error) {
	p := tea.NewProgram(New(startingDir), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("directory prompt: %w", err)
	}
	return final.(Model).Chosen(), nil
}
