package styled

import (
	"context"

	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// Inspector examines every style stack a styled component builds. It is
// advisory: it must not modify the stack and is called once per render,
// possibly from concurrent renders. debug carries the component's
// WithDebugStyles flag; the inspector decides what to do with it.
type Inspector interface {
	Inspect(stack components.StyleStack, root *Root, debug bool)
}

// InspectorFunc adapts a function to Inspector.
type InspectorFunc func(stack components.StyleStack, root *Root, debug bool)

// Inspect implements Inspector.
func (f InspectorFunc) Inspect(stack components.StyleStack, root *Root, debug bool) {
	f(stack, root, debug)
}

type inspectorKey struct{}

// WithInspector installs i for every styled component rendered under ctx.
func WithInspector(ctx context.Context, i Inspector) context.Context {
	return context.WithValue(ctx, inspectorKey{}, i)
}

func inspectorFrom(ctx context.Context) Inspector {
	if ctx != nil {
		if i, ok := ctx.Value(inspectorKey{}).(Inspector); ok && i != nil {
			return i
		}
	}
	return nopInspector{}
}

type nopInspector struct{}

func (nopInspector) Inspect(components.StyleStack, *Root, bool) {}
