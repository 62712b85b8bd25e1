package components

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Constraints defines sizing limits handed down the render tree.
// A negative maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// Constrain clamps a size to the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	w, h := width, height
	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth >= 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight >= 0 && h > c.MaxHeight {
		h = c.MaxHeight
	}
	return w, h
}

// HasWidth reports whether a maximum width is set.
func (c Constraints) HasWidth() bool {
	return c.MaxWidth >= 0
}

type constraintsKey struct{}

// WithConstraints returns a context whose subtree renders under c.
func WithConstraints(ctx context.Context, c Constraints) context.Context {
	return context.WithValue(ctx, constraintsKey{}, c)
}

// ConstraintsFrom returns the constraints active in ctx, or Unconstrained.
func ConstraintsFrom(ctx context.Context) Constraints {
	if ctx == nil {
		return Unconstrained()
	}
	if c, ok := ctx.Value(constraintsKey{}).(Constraints); ok {
		return c
	}
	return Unconstrained()
}

// Direction is the main axis of a container.
type Direction int

const (
	DirectionColumn Direction = iota
	DirectionRow
)

func directionOf(s Style) Direction {
	if v, _ := s[PropFlexDirection].(string); v == "row" || v == "row-reverse" {
		return DirectionRow
	}
	return DirectionColumn
}

// crossPosition maps alignItems to the lipgloss position used when joining.
func crossPosition(s Style, dir Direction) lipgloss.Position {
	v, _ := s[PropAlignItems].(string)
	switch v {
	case "center":
		return lipgloss.Center
	case "flex-end", "end":
		if dir == DirectionRow {
			return lipgloss.Bottom
		}
		return lipgloss.Right
	default:
		if dir == DirectionRow {
			return lipgloss.Top
		}
		return lipgloss.Left
	}
}

// childConstraints derives the constraints children receive from a container.
// Rows split the available width evenly between children.
func childConstraints(parent Constraints, dir Direction, gap, count int) Constraints {
	child := parent
	if dir == DirectionRow && parent.MaxWidth > 0 && count > 0 {
		available := parent.MaxWidth - gap*(count-1)
		if available > 0 {
			child.MaxWidth = available / count
		}
	}
	return child
}

// join lays child views out along dir, inserting gap blank cells between them.
func join(views []string, dir Direction, gap int, pos lipgloss.Position, reverse bool) string {
	if len(views) == 0 {
		return ""
	}
	if reverse {
		reversed := make([]string, len(views))
		for i, v := range views {
			reversed[len(views)-1-i] = v
		}
		views = reversed
	}

	parts := views
	if gap > 0 {
		spacer := strings.Repeat("\n", gap-1)
		if dir == DirectionRow {
			spacer = strings.Repeat(" ", gap)
		}
		parts = make([]string, 0, len(views)*2-1)
		for i, v := range views {
			if i > 0 {
				parts = append(parts, spacer)
			}
			parts = append(parts, v)
		}
	}

	if dir == DirectionRow {
		return lipgloss.JoinHorizontal(pos, parts...)
	}
	return lipgloss.JoinVertical(pos, parts...)
}
