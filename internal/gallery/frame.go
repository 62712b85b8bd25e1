package gallery

import (
	"context"

	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// Frame renders gallery screens under one theme.
type Frame struct {
	Theme theme.Definition
	// Inspector receives every style stack; nil disables inspection.
	Inspector styled.Inspector
	// Width bounds the layout in cells; zero leaves it unbounded.
	Width int
	// Debug selects the kit defined with debug styles.
	Debug bool
	State State
}

// Render draws screen. The theme context carries the theme name, the
// screen title and the width as contextual data.
func (f Frame) Render(ctx context.Context, screen Screen) string {
	if ctx == nil {
		ctx = context.Background()
	}

	value := f.Theme.Context()
	value.Ctx["theme"] = f.Theme.Name
	value.Ctx["screen"] = screen.Title
	value.Ctx["width"] = f.Width

	if f.Inspector != nil {
		ctx = styled.WithInspector(ctx, f.Inspector)
	}
	if f.Width > 0 {
		ctx = components.WithConstraints(ctx, components.WithMaxWidth(f.Width))
	}

	return styled.Provider(value, screen.Build(KitFor(f.Debug), f.State)).Render(ctx)
}
