package components

import (
	"context"
	"path"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultImageWidth  = 16
	defaultImageHeight = 3
)

// Image renders a placeholder frame for an image source. Terminals cannot
// show the pixels, so the frame carries the alt text (or the file name).
//
// Props: source, alt (falls back to accessibilityLabel, then the base name of source).
type Image struct{}

// Name implements Named.
func (Image) Name() string { return "Image" }

// Render implements Component.
func (Image) Render(_ context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}

	width, ok := toInt(style[PropWidth])
	if !ok || width <= 0 {
		width = defaultImageWidth
	}
	height, ok := toInt(style[PropHeight])
	if !ok || height <= 0 {
		height = defaultImageHeight
	}

	label := imageLabel(props)
	if ansi.StringWidth(label) > width {
		label = ansi.Truncate(label, width, ellipsis)
	}

	// Width and height size the placeholder itself, not the frame around it.
	inner := Style{}
	for k, v := range style {
		if k != PropWidth && k != PropHeight {
			inner[k] = v
		}
	}
	if _, hasBorder := borderFor(inner[PropBorderStyle]); !hasBorder {
		inner[PropBorderStyle] = "rounded"
	}

	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, label)
	return Compile(inner).Render(placed)
}

func imageLabel(props Props) string {
	if alt := props.String("alt"); alt != "" {
		return alt
	}
	if label := props.String("accessibilityLabel"); label != "" {
		return label
	}
	if src := props.String("source"); src != "" {
		return "[" + path.Base(src) + "]"
	}
	return "[image]"
}
