package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the tab bar, the active screen and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.tabs(), m.viewport.View(), m.status())
}

func (m Model) tabs() string {
	tabs := make([]string, 0, len(m.screens))
	for i, s := range m.screens {
		style := tabStyle
		if i == m.screenIdx {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(s.Title))
	}
	return ansi.Truncate(strings.Join(tabs, ""), m.width, "…")
}

func (m Model) status() string {
	debug := "debug off"
	if m.debug {
		debug = debugStyle.Render("debug on")
	}
	hint := "←/→ screen · t theme · d debug · tab field · [/] scroll · q quit"
	if m.state.Focus != "" {
		hint = "typing in " + m.state.Focus + " · tab next · enter submit · esc done"
	}
	line := fmt.Sprintf("%s · %s · %s", m.Theme().Name, debug, statusStyle.Render(hint))
	return ansi.Truncate(line, m.width, "…")
}
