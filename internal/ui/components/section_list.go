package components

import "context"

// Section is one group of a SectionList.
type Section struct {
	Key   string
	Title string
	Data  []any
}

// RenderSectionFunc renders a section header or footer.
type RenderSectionFunc func(Section) any

// SectionList renders grouped data with a header above each group.
//
// Props: sections ([]Section), renderItem, renderSectionHeader,
// renderSectionFooter, ItemSeparatorComponent, SectionSeparatorComponent,
// ListEmptyComponent.
type SectionList struct{}

// Name implements Named.
func (SectionList) Name() string { return "SectionList" }

// Render implements Component.
func (SectionList) Render(ctx context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}

	sections, _ := props["sections"].([]Section)
	renderItem := renderItemOf(props["renderItem"])
	renderHeader := renderSectionOf(props["renderSectionHeader"], func(s Section) any { return s.Title })
	renderFooter := renderSectionOf(props["renderSectionFooter"], nil)
	itemSeparator := props["ItemSeparatorComponent"]
	sectionSeparator := props["SectionSeparatorComponent"]

	var nodes []any
	for si := range sections {
		section := sections[si]
		if si > 0 && sectionSeparator != nil {
			nodes = append(nodes, sectionSeparator)
		}
		nodes = append(nodes, renderHeader(section))
		for i, item := range section.Data {
			if i > 0 && itemSeparator != nil {
				nodes = append(nodes, itemSeparator)
			}
			nodes = append(nodes, renderItem(ListItem{Item: item, Index: i, Section: &sections[si]}))
		}
		if renderFooter != nil {
			nodes = append(nodes, renderFooter(section))
		}
	}
	if len(nodes) == 0 {
		if empty := props["ListEmptyComponent"]; empty != nil {
			nodes = append(nodes, empty)
		}
	}

	gap, _ := toInt(style[PropGap])
	views := RenderChildren(ctx, nodes)
	return Compile(style).Render(join(views, DirectionColumn, gap, crossPosition(style, DirectionColumn), false))
}

func renderSectionOf(v any, fallback RenderSectionFunc) RenderSectionFunc {
	switch fn := v.(type) {
	case RenderSectionFunc:
		return fn
	case func(Section) any:
		return fn
	default:
		return fallback
	}
}
