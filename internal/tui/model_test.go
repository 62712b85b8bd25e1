package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

func presets(t *testing.T, names ...string) []theme.Definition {
	t.Helper()
	defs := make([]theme.Definition, 0, len(names))
	for _, name := range names {
		def, ok := theme.Preset(name)
		require.True(t, ok)
		defs = append(defs, def)
	}
	return defs
}

func newModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Themes == nil {
		opts.Themes = presets(t, theme.Dark, theme.Light)
	}
	m, err := NewModel(opts)
	require.NoError(t, err)
	return m
}

func TestNewModelStartsOnRequestedScreen(t *testing.T) {
	t.Parallel()
	m := newModel(t, Options{Screen: "form"})

	require.Equal(t, "form", m.Screen().Name)
	require.Equal(t, theme.Dark, m.Theme().Name)
	require.False(t, m.Debug())
	require.Nil(t, m.Init())
}

func TestNewModelRejectsUnknownScreen(t *testing.T) {
	t.Parallel()
	_, err := NewModel(Options{Themes: presets(t, theme.Dark), Screen: "settings"})

	var notFound *styledErrors.NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "screen", notFound.Kind)
}

func TestNewModelRequiresThemes(t *testing.T) {
	t.Parallel()
	_, err := NewModel(Options{})

	var validation *styledErrors.ValidationError
	require.True(t, errors.As(err, &validation))
	require.Equal(t, "themes", validation.Field)
}

func TestModelMarksQuitting(t *testing.T) {
	t.Parallel()
	m := newModel(t, Options{})

	updated, cmd := m.Update(tea.QuitMsg{})
	require.Nil(t, cmd)
	require.True(t, updated.(Model).Quitting())
	require.Empty(t, updated.(Model).View())
}
