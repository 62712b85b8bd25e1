package components

import (
	"context"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// Text renders its children inline. Nested Text elements are concatenated
// rather than stacked.
//
// Props:
//   - numberOfLines: keep at most this many lines; a cut is marked with an ellipsis
//   - ellipsizeMode: "tail" (default) or "clip" when lines exceed the style width
type Text struct{}

// Name implements Named.
func (Text) Name() string { return "Text" }

// Render implements Component.
func (Text) Render(ctx context.Context, props Props) string {
	style := Flatten(props.Style())
	content := strings.Join(RenderChildren(ctx, props.Children()), "")

	if n, ok := props.Int("numberOfLines"); ok && n > 0 {
		width, _ := toInt(style[PropWidth])
		tail := ellipsis
		if props.String("ellipsizeMode") == "clip" {
			tail = ""
		}
		content = clampLines(content, n, width, tail)
	}

	return box(style, content)
}

// clampLines keeps the first n lines of s and, when width > 0, cuts each
// line to that many cells.
func clampLines(s string, n, width int, tail string) string {
	lines := strings.Split(s, "\n")
	cut := len(lines) > n
	if cut {
		lines = lines[:n]
	}

	for i, line := range lines {
		if width > 0 && ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, tail)
		}
	}

	if cut && tail != "" {
		last := len(lines) - 1
		line := lines[last]
		if width > 0 && ansi.StringWidth(line)+ansi.StringWidth(tail) > width {
			line = ansi.Truncate(line, width-ansi.StringWidth(tail), "")
		}
		lines[last] = line + tail
	}

	return strings.Join(lines, "\n")
}
