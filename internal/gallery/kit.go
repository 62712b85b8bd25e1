package gallery

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

const inputWidth = 24

// Kit is the set of styled components the gallery screens are built from.
// Every style reads the active theme, so one Kit renders under any theme.
type Kit struct {
	Screen  *styled.Component
	Header  *styled.Component
	Card    *styled.Component
	Row     *styled.Component
	Divider *styled.Component

	Title    *styled.Component
	Subtitle *styled.Component
	Body     *styled.Component
	Caption  *styled.Component
	Code     *styled.Component
	Link     *styled.Component
	Badge    *styled.Component

	Button *styled.Component
	Label  *styled.Component
	Input  *styled.Component

	Avatar   *styled.Component
	Banner   *styled.Component
	List     *styled.Component
	Sections *styled.Component
	Scroll   *styled.Component
}

var (
	plainKit = sync.OnceValue(func() *Kit { return NewKit(false) })
	debugKit = sync.OnceValue(func() *Kit { return NewKit(true) })
)

// KitFor returns the shared kit, with debug styles on or off.
func KitFor(debug bool) *Kit {
	if debug {
		return debugKit()
	}
	return plainKit()
}

// NewKit defines the gallery components. With debug set every component is
// defined with debug styles, so the installed inspector logs its stacks.
func NewKit(debug bool) *Kit {
	d := styled.WithDebugStyles(debug)
	k := &Kit{}

	k.Screen = styled.SafeAreaView(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{
			"paddingHorizontal": p.Theme().Int("spacing.sm", 1),
			"gap":               1,
		}
	}), d, styled.WithName("Screen"))

	k.Header = styled.Define(screenLabel{}, styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{
			"color":     p.Theme().String("textMuted"),
			"fontStyle": "italic",
		}
	}), d, styled.WithName("Header"))

	k.Card = styled.View(styled.StyleListFunc(func(p styled.ThemedProps) []components.Style {
		styles := []components.Style{{
			"borderStyle":       p.Theme().String("borders.card"),
			"borderColor":       p.Theme().String("border"),
			"paddingHorizontal": p.Theme().Int("spacing.sm", 1),
		}}
		if p.Props().Bool("highlight") {
			styles = append(styles, components.Style{"borderColor": p.Theme().String("focus")})
		}
		return styles
	}), d, styled.WithName("Card"))

	k.Row = styled.View(styled.Static(components.Style{
		"flexDirection": "row",
		"gap":           1,
		"alignItems":    "center",
	}), d, styled.WithName("Row"))

	k.Divider = styled.Text(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{"color": p.Theme().String("border")}
	}), d, styled.WithChildren(strings.Repeat("─", inputWidth)), styled.WithName("Divider"))

	k.Title = typographyText("title", d)
	k.Subtitle = typographyText("subtitle", d)
	k.Body = typographyText("body", d)
	k.Caption = typographyText("caption", d)
	k.Code = typographyText("code", d)
	k.Link = typographyText("link", d)

	k.Badge = styled.Text(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		variant := variantOf(p, "neutral")
		return components.Style{
			"backgroundColor":   slotColor(p, variant, "base"),
			"color":             slotColor(p, variant, "onBase"),
			"paddingHorizontal": 1,
		}
	}), d, styled.WithName("Badge"))

	k.Button = styled.TouchableOpacity(styled.StyleListFunc(func(p styled.ThemedProps) []components.Style {
		variant := variantOf(p, "primary")
		styles := []components.Style{{
			"borderStyle":       "rounded",
			"borderColor":       slotColor(p, variant, "base"),
			"color":             slotColor(p, variant, "base"),
			"paddingHorizontal": p.Theme().Int("spacing.sm", 1),
			"fontWeight":        "bold",
		}}
		if p.Props().Bool("pressed") {
			styles = append(styles, components.Style{
				"backgroundColor": slotColor(p, variant, "base"),
				"color":           slotColor(p, variant, "onBase"),
			})
		}
		return styles
	}), d, styled.WithAttrs(components.Props{"activeOpacity": 0.6}), styled.WithName("Button"))

	k.Label = styled.Text(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{"color": p.Theme().String("textMuted"), "fontWeight": "500"}
	}), d, styled.WithName("Label"))

	k.Input = styled.TextInput(styled.StyleListFunc(func(p styled.ThemedProps) []components.Style {
		styles := []components.Style{{
			"borderStyle":       p.Theme().String("borders.input"),
			"borderColor":       p.Theme().String("border"),
			"color":             p.Theme().String("text"),
			"width":             inputWidth,
			"paddingHorizontal": 1,
		}}
		if p.Props().Bool("focused") {
			styles = append(styles, components.Style{
				"borderStyle": p.Theme().String("borders.focus"),
				"borderColor": p.Theme().String("focus"),
			})
		}
		return styles
	}), d, styled.WithAttrs(components.Props{"maxLength": 64}), styled.WithName("Input"))

	k.Avatar = styled.Image(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{
			"width":       8,
			"height":      3,
			"borderStyle": "rounded",
			"borderColor": p.Theme().String("secondary"),
		}
	}), d, styled.WithAttrs(components.Props{"accessibilityLabel": "avatar"}), styled.WithName("Avatar"))

	k.Banner = styled.Image(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{
			"width":       intProp(p, "width", 30),
			"height":      3,
			"borderStyle": "double",
			"borderColor": p.Theme().String("primary"),
		}
	}), d, styled.WithName("Banner"))

	k.List = styled.FlatList(styled.Static(components.Style{"gap": 0}), d,
		styled.WithAttrs(components.Props{"ItemSeparatorComponent": k.Divider.H(nil)}),
		styled.WithName("List"))

	sectionTitle := typographyText("subtitle", d)
	k.Sections = styled.SectionList(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{"paddingHorizontal": p.Theme().Int("spacing.xs", 1)}
	}), d, styled.WithAttrs(components.Props{
		"renderSectionHeader": components.RenderSectionFunc(func(s components.Section) any {
			return sectionTitle.H(nil, strings.ToUpper(s.Title))
		}),
	}), styled.WithName("Sections"))

	k.Scroll = styled.ScrollView(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return components.Style{
			"height":      intProp(p, "rows", 4),
			"borderStyle": "normal",
			"borderColor": p.Theme().String("border"),
		}
	}), d, styled.WithAttrs(components.Props{"showsVerticalScrollIndicator": true}), styled.WithName("Scroll"))

	return k
}

// typographyText is a Text styled by the theme's typography token of that name.
func typographyText(name string, opts ...styled.Option) *styled.Component {
	path := "typography." + name
	opts = append(opts, styled.WithName(strings.ToUpper(name[:1])+name[1:]))
	return styled.Text(styled.StyleFunc(func(p styled.ThemedProps) components.Style {
		return tokenStyle(p.Theme(), path)
	}), opts...)
}

// tokenStyle reads a style object out of the theme tokens.
func tokenStyle(t styled.Theme, path string) components.Style {
	v, _ := t.Lookup(path)
	switch s := v.(type) {
	case components.Style:
		return s
	case map[string]any:
		return components.Style(s)
	default:
		return nil
	}
}

func slotColor(p styled.ThemedProps, slot, key string) string {
	return p.Theme().String("slots." + slot + "." + key)
}

func intProp(p styled.ThemedProps, key string, fallback int) int {
	if n, ok := p.Props().Int(key); ok && n > 0 {
		return n
	}
	return fallback
}

func variantOf(p styled.ThemedProps, fallback string) string {
	if v := p.Props().String("variant"); v != "" {
		return v
	}
	return fallback
}

// screenLabel renders "theme · screen" from the contextual data of the
// active theme context.
type screenLabel struct{}

func (screenLabel) Name() string { return "ScreenLabel" }

func (screenLabel) Render(ctx context.Context, props components.Props) string {
	data := styled.Resolve(ctx).Ctx
	label := fmt.Sprintf("%v · %v", data["theme"], data["screen"])
	if w, ok := data["width"].(int); ok && w > 0 {
		label = fmt.Sprintf("%s · %d cols", label, w)
	}
	p := props.Clone()
	p[components.KeyChildren] = label
	return components.Text{}.Render(ctx, p)
}
