package styled

import (
	"context"
	"maps"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// ThemedProps are the caller's props with the resolved theme and ctx injected.
// They are built fresh for every render and handed to style functions.
type ThemedProps components.Props

// Theme returns the injected theme.
func (p ThemedProps) Theme() Theme {
	t, _ := p[components.KeyTheme].(Theme)
	return t
}

// Ctx returns the injected contextual data.
func (p ThemedProps) Ctx() map[string]any {
	c, _ := p[components.KeyCtx].(map[string]any)
	return c
}

// Props returns the themed props as a plain prop bag for the typed getters.
func (p ThemedProps) Props() components.Props {
	return components.Props(p)
}

// StyleSpec computes the styles a component contributes for one render.
type StyleSpec interface {
	Compute(props ThemedProps) []components.Style
}

// StaticStyle is a style specification that ignores props. A single style is
// a one-element StaticStyle.
type StaticStyle []components.Style

// Compute implements StyleSpec.
func (s StaticStyle) Compute(ThemedProps) []components.Style {
	return s
}

// StyleFunc computes a single style from themed props.
type StyleFunc func(props ThemedProps) components.Style

// Compute implements StyleSpec.
func (f StyleFunc) Compute(props ThemedProps) []components.Style {
	return []components.Style{f(props)}
}

// StyleListFunc computes an ordered list of styles from themed props.
type StyleListFunc func(props ThemedProps) []components.Style

// Compute implements StyleSpec.
func (f StyleListFunc) Compute(props ThemedProps) []components.Style {
	return f(props)
}

// Static is shorthand for StaticStyle{styles...}.
func Static(styles ...components.Style) StaticStyle {
	return StaticStyle(styles)
}

// Component is a base component bound to a style specification and options.
// It is immutable once defined and safe to render from many goroutines.
type Component struct {
	base  components.Component
	style StyleSpec
	opts  options
}

// Define binds base to a style specification. A nil spec contributes no styles.
func Define(base components.Component, style StyleSpec, opts ...Option) *Component {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if style == nil {
		style = StaticStyle(nil)
	}
	if static, ok := style.(StaticStyle); ok {
		copied := make(StaticStyle, len(static))
		for i, entry := range static {
			copied[i] = maps.Clone(entry)
		}
		style = copied
	}
	return &Component{base: base, style: style, opts: o}
}

// Name implements components.Named.
func (c *Component) Name() string {
	if c.opts.name != "" {
		return c.opts.name
	}
	return "Styled(" + components.NameOf(c.base) + ")"
}

// Base returns the wrapped component.
func (c *Component) Base() components.Component {
	return c.base
}

// Build resolves the theme context, composes the style stack and returns the
// element the base component should render.
//
// The stack is ordered lowest precedence first:
//
//	[root.Styles (when a root is provided), computed styles..., props["style"]]
//
// theme and ctx are injected over same-named caller props when computing
// styles, while attrs are written over caller props in the returned element.
// Panics raised by style functions and by the inspector are not recovered.
func (c *Component) Build(ctx context.Context, props components.Props) components.Element {
	resolved := Resolve(ctx)

	themed := ThemedProps(lo.Assign(props, components.Props{
		components.KeyTheme: resolved.Theme,
		components.KeyCtx:   resolved.Ctx,
	}))

	computed := c.style.Compute(themed)

	stack := make(components.StyleStack, 0, len(computed)+2)
	if resolved.Root != nil {
		stack = append(stack, resolved.Root.Styles)
	}
	for _, s := range computed {
		stack = append(stack, s)
	}
	stack = append(stack, props[components.KeyStyle])

	inspectorFrom(ctx).Inspect(stack, resolved.Root, c.opts.debugStyles)

	computedProps := lo.Assign(props, c.opts.attrs)
	computedProps[components.KeyStyle] = stack
	if hasChildren(c.opts.children) {
		computedProps[components.KeyChildren] = c.opts.children
	}

	return components.Element{Type: c.base, Props: computedProps}
}

// Render implements components.Component.
func (c *Component) Render(ctx context.Context, props components.Props) string {
	return c.Build(ctx, props).Render(ctx)
}

// H builds an element of this styled component.
func (c *Component) H(props components.Props, children ...any) components.Element {
	return components.H(c, props, children...)
}

// Option configures a styled component at definition time.
type Option func(*options)

type options struct {
	debugStyles bool
	attrs       components.Props
	children    any
	name        string
}

// WithDebugStyles asks the inspector to examine every stack this component builds.
func WithDebugStyles(enabled bool) Option {
	return func(o *options) { o.debugStyles = enabled }
}

// WithAttrs sets props merged into every render. Attrs override caller props
// of the same name.
func WithAttrs(attrs components.Props) Option {
	return func(o *options) { o.attrs = maps.Clone(attrs) }
}

// WithChildren fixes the children of every render. Caller children are
// discarded, unless children is nil, an empty string or an empty slice.
func WithChildren(children any) Option {
	return func(o *options) { o.children = children }
}

// WithName overrides the display name used in diagnostics.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// hasChildren reports whether fixed children were given. Empty strings and
// empty slices count as unset.
func hasChildren(children any) bool {
	switch c := children.(type) {
	case nil:
		return false
	case string:
		return c != ""
	case []any:
		return len(c) > 0
	case []string:
		return len(c) > 0
	case []components.Element:
		return len(c) > 0
	default:
		return true
	}
}
