// Package styled turns a base component and a style specification into a
// themed component.
//
// # Defining components
//
// A style specification is static or a function of the themed props:
//
//	var Title = styled.Text(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
//		return components.Style{"color": p.Theme().String("primary"), "fontWeight": "bold"}
//	}))
//
//	var Card = styled.View(styled.Static(components.Style{"borderStyle": "rounded", "padding": 1}),
//		styled.WithAttrs(components.Props{"accessibilityRole": "summary"}),
//	)
//
// Define binds any components.Component; the registry functions (View, Text,
// TextInput, ...) and Lookup bind the host primitives.
//
// # Rendering
//
// The active theme context is read from the context.Context on every render:
//
//	ctx := styled.Provide(context.Background(), styled.ThemeContext{
//		Theme: styled.Theme{"primary": "#f00"},
//	})
//	out := Title.Render(ctx, components.Props{"children": "Hello"})
//
// Each render builds the style stack
//
//	[root styles, computed styles..., props["style"]]
//
// where later entries win, runs the installed Inspector over it, and renders
// the base component with the stack and the caller props merged with attrs.
//
// Precedence is deliberately asymmetric. The resolved theme and ctx replace
// caller props of the same name in the props handed to style functions,
// while attrs replace caller props of the same name in the props handed to
// the base component.
package styled
