package components

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubView string

func (s stubView) View() string { return string(s) }

type stubStringer struct{}

func (stubStringer) String() string { return "stringer" }

func TestHStoresChildren(t *testing.T) {
	props := Props{"id": 1}

	single := H(View{}, props, "only")
	assert.Equal(t, "only", single.Props.Children())

	many := H(View{}, props, "a", "b")
	assert.Equal(t, []any{"a", "b"}, many.Props.Children())

	none := H(View{}, nil)
	assert.NotNil(t, none.Props)
	assert.False(t, none.Props.Has(KeyChildren))

	assert.Equal(t, Props{"id": 1}, props, "H must not mutate the caller's props")
}

func TestRenderChildren(t *testing.T) {
	ctx := context.Background()
	echo := ComponentFunc(func(_ context.Context, p Props) string { return p.String("v") })
	el := H(echo, Props{"v": "element"})

	got := RenderChildren(ctx, []any{
		"text",
		nil,
		el,
		&el,
		[]any{"nested", ""},
		[]string{"s1", "s2"},
		stubView("renderable"),
		stubStringer{},
		42,
	})

	assert.Equal(t, []string{
		"text", "element", "element", "nested", "s1", "s2", "renderable", "stringer", "42",
	}, got)
	assert.Equal(t, "a\nb", RenderNode(ctx, []any{"a", "b"}))
	assert.Empty(t, RenderChildren(ctx, nil))
}

func TestElementRenderWithoutType(t *testing.T) {
	assert.Equal(t, "", Element{}.Render(context.Background()))
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "View", NameOf(View{}))
	assert.Equal(t, "TextInput", NameOf(TextInput{}))
	assert.Equal(t, "components.ComponentFunc", NameOf(ComponentFunc(nil)))
	assert.Equal(t, "<nil>", NameOf(nil))
}

func TestPropsAccessors(t *testing.T) {
	p := Props{
		"name":   "x",
		"count":  int64(3),
		"ratio":  0.5,
		"flag":   true,
		"nilval": nil,
		"num":    7,
	}

	assert.Equal(t, "x", p.String("name"))
	assert.Equal(t, "7", p.String("num"))
	assert.Equal(t, "", p.String("missing"))
	assert.True(t, p.Bool("flag"))
	assert.False(t, p.Bool("name"))
	assert.True(t, p.Has("nilval"))
	assert.False(t, p.Has("missing"))

	n, ok := p.Int("count")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	f, ok := p.Float("ratio")
	assert.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-9)

	_, ok = p.Int("name")
	assert.False(t, ok)
}

func TestPropsClone(t *testing.T) {
	var empty Props
	assert.Equal(t, Props{}, empty.Clone())

	p := Props{"a": 1}
	c := p.Clone()
	c["a"] = 2
	assert.Equal(t, 1, p["a"])
}

func TestConstraints(t *testing.T) {
	assert.False(t, Unconstrained().HasWidth())
	assert.True(t, WithMaxWidth(10).HasWidth())

	w, h := Constraints{MinWidth: 2, MaxWidth: 5, MaxHeight: -1}.Constrain(9, 100)
	assert.Equal(t, 5, w)
	assert.Equal(t, 100, h)

	w, _ = Constraints{MinWidth: 2, MaxWidth: 5, MaxHeight: -1}.Constrain(1, 0)
	assert.Equal(t, 2, w)

	assert.Equal(t, Unconstrained(), ConstraintsFrom(context.Background()))
	ctx := WithConstraints(context.Background(), WithMaxWidth(7))
	assert.Equal(t, 7, ConstraintsFrom(ctx).MaxWidth)
}

func TestRowSplitsWidthBetweenChildren(t *testing.T) {
	probe := ComponentFunc(func(ctx context.Context, _ Props) string {
		return strconv.Itoa(ConstraintsFrom(ctx).MaxWidth)
	})
	ctx := WithConstraints(context.Background(), WithMaxWidth(10))

	out := View{}.Render(ctx, Props{
		KeyStyle:    Style{"flexDirection": "row"},
		KeyChildren: []any{H(probe, nil), H(probe, nil)},
	})

	assert.Equal(t, "55", out)
}
