package components

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/styledterm/internal/ui"
)

// Component renders a prop bag into terminal output.
type Component interface {
	Render(ctx context.Context, props Props) string
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(ctx context.Context, props Props) string

// Render implements Component.
func (f ComponentFunc) Render(ctx context.Context, props Props) string {
	return f(ctx, props)
}

// Named is implemented by components that carry a display name.
type Named interface {
	Name() string
}

// NameOf returns the display name of a component, falling back to its Go type.
func NameOf(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if n, ok := c.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", c)
}

// Element is a component paired with the props it will be rendered with.
// It is a description only; nothing is rendered until Render is called.
type Element struct {
	Type  Component
	Props Props
}

// H builds an element. Children, when given, replace props["children"]:
// one child is stored as-is, several are stored as a []any.
func H(typ Component, props Props, children ...any) Element {
	p := props.Clone()
	switch len(children) {
	case 0:
	case 1:
		p[KeyChildren] = children[0]
	default:
		p[KeyChildren] = append([]any(nil), children...)
	}
	return Element{Type: typ, Props: p}
}

// Render renders the element in ctx.
func (e Element) Render(ctx context.Context) string {
	if e.Type == nil {
		return ""
	}
	return e.Type.Render(ctx, e.Props)
}

// RenderChildren renders every child node and drops empty output.
func RenderChildren(ctx context.Context, node any) []string {
	var out []string
	renderInto(ctx, &out, node)
	return out
}

// RenderNode renders a node and joins multiple children vertically.
func RenderNode(ctx context.Context, node any) string {
	return strings.Join(RenderChildren(ctx, node), "\n")
}

func renderInto(ctx context.Context, out *[]string, node any) {
	var view string
	switch n := node.(type) {
	case nil:
		return
	case string:
		view = n
	case Element:
		view = n.Render(ctx)
	case *Element:
		if n == nil {
			return
		}
		view = n.Render(ctx)
	case []Element:
		for _, child := range n {
			renderInto(ctx, out, child)
		}
		return
	case []any:
		for _, child := range n {
			renderInto(ctx, out, child)
		}
		return
	case []string:
		for _, child := range n {
			renderInto(ctx, out, child)
		}
		return
	case ui.Renderable:
		view = n.View()
	case fmt.Stringer:
		view = n.String()
	default:
		view = fmt.Sprintf("%v", n)
	}
	if view != "" {
		*out = append(*out, view)
	}
}
