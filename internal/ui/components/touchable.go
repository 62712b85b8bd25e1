package components

import "context"

// TouchableOpacity wraps its children in a pressable box. Disabled and
// pressed touchables with activeOpacity below 1 render faint.
//
// Props: onPress (func()), disabled, pressed, activeOpacity (default 0.2).
type TouchableOpacity struct{}

// Name implements Named.
func (TouchableOpacity) Name() string { return "TouchableOpacity" }

// Render implements Component.
func (TouchableOpacity) Render(ctx context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}

	content := layoutChildren(ctx, props.Children(), style)
	ls := Compile(style)

	opacity := 0.2
	if v, ok := props.Float("activeOpacity"); ok {
		opacity = v
	}
	if props.Bool("disabled") || (props.Bool("pressed") && opacity < 1) {
		ls = ls.Faint(true)
	}
	return ls.Render(content)
}

// Press dispatches onPress for an element. It reports false when the
// element is disabled or has no handler.
func Press(e Element) bool {
	if e.Props.Bool("disabled") {
		return false
	}
	switch fn := e.Props["onPress"].(type) {
	case func():
		fn()
		return true
	case func(Props):
		fn(e.Props)
		return true
	default:
		return false
	}
}
