package styled

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// Theme is a set of design tokens broadcast to a subtree. Values are usually
// strings (colours), numbers (spacing) or nested Theme/map groups.
type Theme map[string]any

// Lookup resolves a dot separated token path such as "colors.blue.500".
func (t Theme) Lookup(path string) (any, bool) {
	var current any = map[string]any(t)
	for _, part := range strings.Split(path, ".") {
		var next any
		var ok bool
		switch group := current.(type) {
		case Theme:
			next, ok = group[part]
		case map[string]any:
			next, ok = group[part]
		default:
			return nil, false
		}
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// String returns the token at path formatted as a string, or "" when absent.
func (t Theme) String(path string) string {
	v, ok := t.Lookup(path)
	if !ok || v == nil {
		return ""
	}
	if s, isString := v.(string); isString {
		return s
	}
	return fmt.Sprint(v)
}

// Int returns the token at path as an int, or fallback.
func (t Theme) Int(path string, fallback int) int {
	v, ok := t.Lookup(path)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return fallback
	}
}

// Root is the theme-wide style applied beneath every styled component.
// Styles may be a components.Style or any style stack.
type Root struct {
	Styles any
}

// ThemeContext is the value a provider broadcasts to its subtree.
type ThemeContext struct {
	Theme Theme
	Ctx   map[string]any
	Root  *Root
}

type themeContextKey struct{}

// Provide returns a context in which value is the active theme context.
// An inner Provide replaces the outer value entirely.
func Provide(ctx context.Context, value ThemeContext) context.Context {
	return context.WithValue(ctx, themeContextKey{}, value)
}

// Resolve returns the active theme context. Without a provider, and for
// every unset field of a provided value, it yields an empty Theme, an empty
// Ctx and a nil Root.
func Resolve(ctx context.Context) ThemeContext {
	var value ThemeContext
	if ctx != nil {
		value, _ = ctx.Value(themeContextKey{}).(ThemeContext)
	}
	if value.Theme == nil {
		value.Theme = Theme{}
	}
	if value.Ctx == nil {
		value.Ctx = map[string]any{}
	}
	return value
}

// Provider returns an element that renders children under value.
func Provider(value ThemeContext, children ...any) components.Element {
	return components.H(provider{value: value}, nil, children...)
}

type provider struct {
	value ThemeContext
}

func (provider) Name() string { return "ThemeProvider" }

func (p provider) Render(ctx context.Context, props components.Props) string {
	return components.RenderNode(Provide(ctx, p.value), props.Children())
}
