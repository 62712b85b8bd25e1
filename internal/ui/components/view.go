package components

import "context"

// View is the generic container. Children are laid out along flexDirection
// (column by default) with optional gap and alignItems, then wrapped in the
// compiled box style.
type View struct{}

// Name implements Named.
func (View) Name() string { return "View" }

// Render implements Component.
func (View) Render(ctx context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}
	content := layoutChildren(ctx, props.Children(), style)
	return Compile(style).Render(content)
}

// SafeAreaView is a View that never grows past the width its parent allows.
type SafeAreaView struct{}

// Name implements Named.
func (SafeAreaView) Name() string { return "SafeAreaView" }

// Render implements Component.
func (SafeAreaView) Render(ctx context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}
	content := layoutChildren(ctx, props.Children(), style)

	ls := Compile(style)
	if c := ConstraintsFrom(ctx); c.MaxWidth > 0 {
		ls = ls.MaxWidth(c.MaxWidth)
	}
	return ls.Render(content)
}

func layoutChildren(ctx context.Context, children any, style Style) string {
	dir := directionOf(style)
	gap, _ := toInt(style[PropGap])
	reverse := false
	if v, _ := style[PropFlexDirection].(string); v == "row-reverse" || v == "column-reverse" {
		reverse = true
	}

	childCtx := WithConstraints(ctx, childConstraints(ConstraintsFrom(ctx), dir, gap, childCount(children)))
	views := RenderChildren(childCtx, children)
	return join(views, dir, gap, crossPosition(style, dir), reverse)
}

func childCount(node any) int {
	switch n := node.(type) {
	case nil:
		return 0
	case []any:
		return len(n)
	case []Element:
		return len(n)
	case []string:
		return len(n)
	default:
		return 1
	}
}

// box renders content inside the compiled style, honouring display: none.
func box(style Style, content string) string {
	if Hidden(style) {
		return ""
	}
	return Compile(style).Render(content)
}
