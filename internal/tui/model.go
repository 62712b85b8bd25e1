package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/styledterm/internal/gallery"
	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

// chromeLines is the height taken by the tab bar and the status line.
const chromeLines = 2

// Options configure the preview.
type Options struct {
	// Themes are cycled with "t". The first one is shown first.
	Themes []theme.Definition
	// Screen is the name of the first screen; empty means the first one.
	Screen string
	Debug  bool
	// Inspector receives every style stack rendered by the preview.
	Inspector styled.Inspector
}

// Model is the Bubbletea model of the interactive gallery preview.
type Model struct {
	themes    []theme.Definition
	themeIdx  int
	screens   []gallery.Screen
	screenIdx int
	state     gallery.State

	debug     bool
	inspector styled.Inspector

	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

// NewModel builds the preview model.
func NewModel(opts Options) (Model, error) {
	if len(opts.Themes) == 0 {
		return Model{}, styledErrors.NewValidationError("themes", "at least one theme is required", nil)
	}

	m := Model{
		themes:    opts.Themes,
		screens:   gallery.Screens(),
		state:     gallery.State{Values: map[string]string{}},
		debug:     opts.Debug,
		inspector: opts.Inspector,
		viewport:  viewport.New(80, 24-chromeLines),
		width:     80,
		height:    24,
	}

	if opts.Screen != "" {
		screen, err := gallery.Lookup(opts.Screen)
		if err != nil {
			return Model{}, err
		}
		for i, s := range m.screens {
			if s.Name == screen.Name {
				m.screenIdx = i
			}
		}
	}

	m.refresh()
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the active theme.
func (m Model) Theme() theme.Definition {
	return m.themes[m.themeIdx]
}

// Screen returns the active screen.
func (m Model) Screen() gallery.Screen {
	return m.screens[m.screenIdx]
}

// State returns the interactive state of the active screen.
func (m Model) State() gallery.State {
	return m.state
}

// Debug reports whether debug styles are on.
func (m Model) Debug() bool {
	return m.debug
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// refresh re-renders the active screen into the viewport.
func (m *Model) refresh() {
	frame := gallery.Frame{
		Theme:     m.Theme(),
		Inspector: m.inspector,
		Width:     m.width,
		Debug:     m.debug,
		State:     m.state,
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-chromeLines, 1)
	m.viewport.SetContent(frame.Render(context.Background(), m.Screen()))
}
