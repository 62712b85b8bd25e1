package styled

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// recorder is a base component that captures the props it is rendered with.
type recorder struct {
	mu    sync.Mutex
	props []components.Props
}

func (r *recorder) Render(_ context.Context, props components.Props) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.props = append(r.props, props)
	return "ok"
}

func (r *recorder) last(t *testing.T) components.Props {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.props)
	return r.props[len(r.props)-1]
}

func TestBuildExampleScenario(t *testing.T) {
	title := Text(StyleFunc(func(p ThemedProps) components.Style {
		return components.Style{"color": p.Theme()["primary"]}
	}))
	ctx := Provide(context.Background(), ThemeContext{Theme: Theme{"primary": "#f00"}})

	el := title.Build(ctx, components.Props{"style": components.Style{"fontWeight": "bold"}})

	assert.Equal(t, components.Text{}, el.Type)
	assert.Equal(t, components.StyleStack{
		components.Style{"color": "#f00"},
		components.Style{"fontWeight": "bold"},
	}, el.Props[components.KeyStyle])
}

func TestStyleStackOrder(t *testing.T) {
	root := components.Style{"color": "root"}
	c1 := components.Style{"color": "c1"}
	c2 := components.Style{"padding": 1}
	caller := components.Style{"color": "caller"}

	tests := []struct {
		name   string
		root   *Root
		caller any
		want   components.StyleStack
	}{
		{
			name:   "root and caller",
			root:   &Root{Styles: root},
			caller: caller,
			want:   components.StyleStack{root, c1, c2, caller},
		},
		{
			name:   "root without caller",
			root:   &Root{Styles: root},
			caller: nil,
			want:   components.StyleStack{root, c1, c2, nil},
		},
		{
			name:   "caller without root",
			caller: caller,
			want:   components.StyleStack{c1, c2, caller},
		},
		{
			name: "neither",
			want: components.StyleStack{c1, c2, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			c := Define(rec, Static(c1, c2))
			ctx := Provide(context.Background(), ThemeContext{Root: tt.root})

			props := components.Props{}
			if tt.caller != nil {
				props[components.KeyStyle] = tt.caller
			}
			c.Render(ctx, props)

			got := rec.last(t)[components.KeyStyle]
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStyleStackFlattensWithCallerWinning(t *testing.T) {
	c := Define(&recorder{}, Static(components.Style{"color": "blue", "padding": 2}))
	ctx := Provide(context.Background(), ThemeContext{
		Root: &Root{Styles: components.Style{"color": "white", "backgroundColor": "black"}},
	})

	el := c.Build(ctx, components.Props{"style": components.Style{"color": "red"}})

	assert.Equal(t, components.Style{
		"color":           "red",
		"padding":         2,
		"backgroundColor": "black",
	}, components.Flatten(el.Props[components.KeyStyle]))
}

func TestListStyleIsSplicedInOrder(t *testing.T) {
	a := components.Style{"color": "a"}
	b := components.Style{"color": "b"}
	c := Define(&recorder{}, StyleListFunc(func(ThemedProps) []components.Style {
		return []components.Style{a, b}
	}))

	el := c.Build(context.Background(), nil)

	assert.Equal(t, components.StyleStack{a, b, nil}, el.Props[components.KeyStyle])
}

func TestThemeInjectionShadowsCallerProps(t *testing.T) {
	var seen ThemedProps
	c := Define(&recorder{}, StyleFunc(func(p ThemedProps) components.Style {
		seen = p
		return nil
	}))
	theme := Theme{"primary": "#f00"}
	data := map[string]any{"locale": "fr"}
	ctx := Provide(context.Background(), ThemeContext{Theme: theme, Ctx: data})

	el := c.Build(ctx, components.Props{
		"theme": "caller theme",
		"ctx":   "caller ctx",
		"label": "kept",
	})

	assert.Equal(t, theme, seen.Theme())
	assert.Equal(t, data, seen.Ctx())
	assert.Equal(t, "kept", seen["label"])

	// The base component still sees the caller's own values.
	assert.Equal(t, "caller theme", el.Props["theme"])
	assert.Equal(t, "caller ctx", el.Props["ctx"])
}

func TestAttrsOverrideCallerProps(t *testing.T) {
	c := Define(&recorder{}, nil, WithAttrs(components.Props{
		"placeholder": "from attrs",
		"editable":    false,
	}))

	el := c.Build(context.Background(), components.Props{
		"placeholder": "from caller",
		"value":       "typed",
	})

	assert.Equal(t, "from attrs", el.Props["placeholder"])
	assert.Equal(t, false, el.Props["editable"])
	assert.Equal(t, "typed", el.Props["value"])
}

func TestAttrsAreCopiedAtDefinition(t *testing.T) {
	attrs := components.Props{"placeholder": "before"}
	c := Define(&recorder{}, nil, WithAttrs(attrs))
	attrs["placeholder"] = "after"

	el := c.Build(context.Background(), nil)
	assert.Equal(t, "before", el.Props["placeholder"])
}

func TestNoProviderDefaults(t *testing.T) {
	resolved := Resolve(context.Background())
	assert.Equal(t, Theme{}, resolved.Theme)
	assert.Equal(t, map[string]any{}, resolved.Ctx)
	assert.Nil(t, resolved.Root)

	var seen ThemedProps
	c := Define(&recorder{}, StyleFunc(func(p ThemedProps) components.Style {
		seen = p
		return components.Style{"color": "red"}
	}))
	el := c.Build(context.Background(), nil)

	assert.Equal(t, Theme{}, seen.Theme())
	assert.Equal(t, map[string]any{}, seen.Ctx())
	assert.Equal(t, components.StyleStack{components.Style{"color": "red"}, nil}, el.Props[components.KeyStyle])
}

func TestStaticAndFunctionalSpecsAreEquivalent(t *testing.T) {
	v := components.Style{"color": "green", "padding": 1}
	ctx := Provide(context.Background(), ThemeContext{
		Theme: Theme{"primary": "#fff"},
		Root:  &Root{Styles: components.Style{"color": "black"}},
	})
	props := components.Props{"style": components.Style{"margin": 1}}

	static := Define(&recorder{}, Static(v)).Build(ctx, props)
	functional := Define(&recorder{}, StyleFunc(func(ThemedProps) components.Style { return v })).Build(ctx, props)

	assert.Equal(t, static.Props[components.KeyStyle], functional.Props[components.KeyStyle])
}

func TestFixedChildrenReplaceCallerChildren(t *testing.T) {
	c := Text(nil, WithChildren("fixed"))
	ctx := context.Background()

	withCaller := c.Render(ctx, components.Props{"children": "caller"})
	without := c.Render(ctx, nil)

	assert.Equal(t, without, withCaller)
	assert.Equal(t, "fixed", without)
}

func TestEmptyFixedChildrenLetCallerChildrenThrough(t *testing.T) {
	ctx := context.Background()
	props := components.Props{"children": "caller"}

	assert.Equal(t, "caller", Text(nil, WithChildren("")).Render(ctx, props))
	assert.Equal(t, "caller", Text(nil, WithChildren([]any{})).Render(ctx, props))
	assert.Equal(t, "caller", Text(nil, WithChildren(nil)).Render(ctx, props))
	assert.Equal(t, "0", Text(nil, WithChildren(0)).Render(ctx, props))
}

func TestStaticStylesAreCopiedAtDefinition(t *testing.T) {
	s := components.Style{"color": "red"}
	c := Define(&recorder{}, Static(s))
	s["color"] = "blue"

	el := c.Build(context.Background(), nil)
	assert.Equal(t, components.StyleStack{components.Style{"color": "red"}, nil}, el.Props[components.KeyStyle])
}

func TestCallerChildrenPassThroughWithoutFixedChildren(t *testing.T) {
	c := Text(nil)
	assert.Equal(t, "hello", c.Render(context.Background(), components.Props{"children": "hello"}))
}

func TestBuildDoesNotMutateInputs(t *testing.T) {
	props := components.Props{"style": components.Style{"color": "red"}, "label": "x"}
	theme := Theme{"primary": "#f00"}
	ctx := Provide(context.Background(), ThemeContext{Theme: theme})
	c := Define(&recorder{}, Static(components.Style{"padding": 1}), WithAttrs(components.Props{"label": "y"}))

	el := c.Build(ctx, props)
	el.Props["extra"] = true

	assert.Equal(t, components.Props{"style": components.Style{"color": "red"}, "label": "x"}, props)
	assert.Equal(t, Theme{"primary": "#f00"}, theme)
}

func TestInspectorReceivesStackRootAndFlag(t *testing.T) {
	var (
		gotStack components.StyleStack
		gotRoot  *Root
		gotDebug bool
		calls    int
	)
	inspector := InspectorFunc(func(stack components.StyleStack, root *Root, debug bool) {
		gotStack, gotRoot, gotDebug = stack, root, debug
		calls++
	})
	root := &Root{Styles: components.Style{"color": "white"}}
	ctx := WithInspector(Provide(context.Background(), ThemeContext{Root: root}), inspector)

	c := Define(&recorder{}, Static(components.Style{"padding": 1}), WithDebugStyles(true))
	el := c.Build(ctx, nil)

	assert.Equal(t, 1, calls)
	assert.Same(t, root, gotRoot)
	assert.True(t, gotDebug)
	assert.Equal(t, el.Props[components.KeyStyle], gotStack)

	// The hook runs even when debugging is off.
	Define(&recorder{}, nil).Build(ctx, nil)
	assert.Equal(t, 2, calls)
	assert.False(t, gotDebug)
}

func TestStyleFunctionPanicsPropagate(t *testing.T) {
	c := Define(&recorder{}, StyleFunc(func(ThemedProps) components.Style {
		panic("bad theme")
	}))

	assert.PanicsWithValue(t, "bad theme", func() {
		c.Build(context.Background(), nil)
	})
}

func TestInspectorPanicsPropagate(t *testing.T) {
	ctx := WithInspector(context.Background(), InspectorFunc(func(components.StyleStack, *Root, bool) {
		panic("hook")
	}))
	c := Define(&recorder{}, Static(components.Style{"padding": 1}))

	assert.PanicsWithValue(t, "hook", func() {
		c.Build(ctx, nil)
	})
}

func TestConcurrentRendersDoNotInterfere(t *testing.T) {
	c := Text(StyleFunc(func(p ThemedProps) components.Style {
		return components.Style{"color": p.Theme()["primary"]}
	}))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			colour := "#00000" + string(rune('0'+i%10))
			ctx := Provide(context.Background(), ThemeContext{Theme: Theme{"primary": colour}})
			el := c.Build(ctx, nil)
			stack := el.Props[components.KeyStyle].(components.StyleStack)
			assert.Equal(t, components.Style{"color": colour}, stack[0])
		}(i)
	}
	wg.Wait()
}

func TestNameDefaultsToBase(t *testing.T) {
	assert.Equal(t, "Styled(Text)", Text(nil).Name())
	assert.Equal(t, "Heading", Text(nil, WithName("Heading")).Name())
}
