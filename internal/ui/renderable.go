// Package ui holds the smallest rendering contract shared by terminal views.
package ui

// Renderable is anything that can produce its own terminal output.
type Renderable interface {
	View() string
}
