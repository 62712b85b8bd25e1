package components

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// ScrollView clips its children to the style height through bubbles/viewport.
// Without a height it renders everything, like a View.
//
// Props: contentOffset (first visible line), showsVerticalScrollIndicator.
type ScrollView struct{}

// Name implements Named.
func (ScrollView) Name() string { return "ScrollView" }

// Render implements Component.
func (ScrollView) Render(ctx context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}

	content := layoutChildren(ctx, props.Children(), style)
	height, ok := toInt(style[PropHeight])
	if !ok || height <= 0 {
		return Compile(style).Render(content)
	}

	width, ok := toInt(style[PropWidth])
	if !ok || width <= 0 {
		width = lipgloss.Width(content)
	}

	vp := viewport.New(width, height)
	vp.SetContent(content)
	if offset, ok := props.Int("contentOffset"); ok {
		vp.SetYOffset(offset)
	}
	view := vp.View()

	if props.Bool("showsVerticalScrollIndicator") && vp.TotalLineCount() > height {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, scrollIndicator(height, vp.ScrollPercent()))
	}

	// The viewport already sized the content.
	outer := Style{}
	for k, v := range style {
		if k != PropHeight && k != PropWidth {
			outer[k] = v
		}
	}
	return Compile(outer).Render(view)
}

// scrollIndicator draws a one-column track with a thumb at percent.
func scrollIndicator(height int, percent float64) string {
	thumb := int(percent * float64(height-1))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = "│"
		if i == thumb {
			rows[i] = "┃"
		}
	}
	return strings.Join(rows, "\n")
}
