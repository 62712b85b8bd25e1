package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestViewRendersChrome(t *testing.T) {
	t.Parallel()
	m := newModel(t, Options{})
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	for _, title := range []string{"Overview", "Typography", "Form", "Lists", "Media"} {
		require.Contains(t, view, title)
	}
	require.Contains(t, view, "dark · Overview · 100 cols")
	require.Contains(t, view, "debug off")
	require.Contains(t, view, "q quit")
}

func TestViewFitsHeight(t *testing.T) {
	t.Parallel()
	m := newModel(t, Options{})
	m = send(m, tea.WindowSizeMsg{Width: 80, Height: 12})

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 12)
	for _, line := range lines {
		require.LessOrEqual(t, ansi.StringWidth(line), 80)
	}
}

func TestViewShowsFieldHint(t *testing.T) {
	t.Parallel()
	m := newModel(t, Options{Screen: "form"})
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40}, tea.KeyMsg{Type: tea.KeyTab})

	require.Contains(t, m.View(), "typing in name")
}
