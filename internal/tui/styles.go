package tui

import "github.com/charmbracelet/lipgloss"

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	debugStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
)
