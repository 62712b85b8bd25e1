package components

import (
	"context"
	"fmt"
)

// ListItem is handed to renderItem for every entry of a list.
type ListItem struct {
	Item    any
	Index   int
	Section *Section
}

// RenderItemFunc turns a list entry into a child node.
type RenderItemFunc func(ListItem) any

// FlatList renders a list of data items.
//
// Props: data ([]any or []string), renderItem (RenderItemFunc),
// ItemSeparatorComponent, ListHeaderComponent, ListFooterComponent,
// ListEmptyComponent, horizontal.
type FlatList struct{}

// Name implements Named.
func (FlatList) Name() string { return "FlatList" }

// Render implements Component.
func (FlatList) Render(ctx context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}

	data := dataItems(props["data"])
	renderItem := renderItemOf(props["renderItem"])

	nodes := make([]any, 0, len(data)*2+2)
	if header := props["ListHeaderComponent"]; header != nil {
		nodes = append(nodes, header)
	}
	if len(data) == 0 {
		if empty := props["ListEmptyComponent"]; empty != nil {
			nodes = append(nodes, empty)
		}
	}
	separator := props["ItemSeparatorComponent"]
	for i, item := range data {
		if i > 0 && separator != nil {
			nodes = append(nodes, separator)
		}
		nodes = append(nodes, renderItem(ListItem{Item: item, Index: i}))
	}
	if footer := props["ListFooterComponent"]; footer != nil {
		nodes = append(nodes, footer)
	}

	dir := DirectionColumn
	if props.Bool("horizontal") {
		dir = DirectionRow
	}
	gap, _ := toInt(style[PropGap])
	childCtx := WithConstraints(ctx, childConstraints(ConstraintsFrom(ctx), dir, gap, len(nodes)))
	views := RenderChildren(childCtx, nodes)

	return Compile(style).Render(join(views, dir, gap, crossPosition(style, dir), false))
}

func dataItems(v any) []any {
	switch d := v.(type) {
	case []any:
		return d
	case []string:
		out := make([]any, len(d))
		for i, s := range d {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

func renderItemOf(v any) RenderItemFunc {
	switch fn := v.(type) {
	case RenderItemFunc:
		return fn
	case func(ListItem) any:
		return fn
	default:
		return func(item ListItem) any { return fmt.Sprint(item.Item) }
	}
}
