package gallery

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

// State is the interactive state a screen is built from.
type State struct {
	// Focus names the focused form field.
	Focus string
	// Values holds the text of each form field.
	Values map[string]string
	// Offset is the first visible line of scrollable content.
	Offset int
	// Pressed names the button being pressed.
	Pressed string
}

// Screen is one page of the gallery.
type Screen struct {
	Name  string
	Title string
	// Fields lists the focusable form fields in tab order.
	Fields []string

	body func(k *Kit, st State) []any
}

// Build returns the element tree of the screen for st.
func (s Screen) Build(k *Kit, st State) components.Element {
	children := append([]any{k.Header.H(nil), k.Title.H(nil, s.Title)}, s.body(k, st)...)
	return k.Screen.H(nil, children...)
}

var screens = []Screen{
	{Name: "overview", Title: "Overview", body: overview},
	{Name: "typography", Title: "Typography", body: typography},
	{Name: "form", Title: "Form", Fields: []string{"name", "email", "password"}, body: form},
	{Name: "lists", Title: "Lists", body: lists},
	{Name: "media", Title: "Media", body: media},
}

// Screens returns the gallery screens in display order.
func Screens() []Screen {
	return append([]Screen(nil), screens...)
}

// Names returns the screen names in display order.
func Names() []string {
	return lo.Map(screens, func(s Screen, _ int) string { return s.Name })
}

// Lookup finds a screen by name.
func Lookup(name string) (Screen, error) {
	s, ok := lo.Find(screens, func(s Screen) bool { return s.Name == name })
	if !ok {
		return Screen{}, styledErrors.NewNotFoundError("screen", name, Names()...)
	}
	return s, nil
}

func overview(k *Kit, st State) []any {
	badges := lo.Map(theme.SlotNames, func(slot string, _ int) any {
		return k.Badge.H(components.Props{"variant": slot}, slot)
	})
	return []any{
		k.Body.H(nil, "Every component below reads its colours from the active theme."),
		k.Row.H(nil, badges[:4]...),
		k.Row.H(nil, badges[4:]...),
		k.Card.H(components.Props{"highlight": true},
			k.Subtitle.H(nil, "Deploy preview"),
			k.Caption.H(nil, "Built 2 minutes ago"),
			k.Row.H(nil,
				button(k, st, "open", "primary", "Open"),
				button(k, st, "discard", "danger", "Discard"),
			),
		),
	}
}

func typography(k *Kit, _ State) []any {
	return []any{
		k.Subtitle.H(nil, "Subtitle"),
		k.Body.H(nil, "Body text wraps to the width of the terminal when it runs long."),
		k.Caption.H(nil, "Caption text"),
		k.Code.H(nil, "styled.Text(style)"),
		k.Link.H(nil, "https://example.com/docs"),
		k.Body.H(nil, "Nested ", k.Code.H(nil, "code"), " inside text"),
		k.Divider.H(nil),
		k.Caption.H(components.Props{"numberOfLines": 1, "style": components.Style{"width": 40}},
			"A caption limited to a single line is truncated with an ellipsis once it no longer fits."),
	}
}

func form(k *Kit, st State) []any {
	field := func(name, label, placeholder string, extra components.Props) any {
		props := lo.Assign(components.Props{
			"focused":     st.Focus == name,
			"value":       st.Values[name],
			"placeholder": placeholder,
		}, extra)
		return k.Screen.H(components.Props{"style": components.Style{"gap": 0, "paddingHorizontal": 0}},
			k.Label.H(nil, label),
			k.Input.H(props),
		)
	}
	return []any{
		field("name", "Name", "Ada Lovelace", nil),
		field("email", "Email", "you@example.com", nil),
		field("password", "Password", "secret", components.Props{"secureTextEntry": true}),
		k.Row.H(nil,
			button(k, st, "submit", "success", "Submit"),
			button(k, st, "cancel", "neutral", "Cancel"),
		),
	}
}

func lists(k *Kit, _ State) []any {
	return []any{
		k.List.H(components.Props{
			"data": []string{"Inbox", "Drafts", "Archive"},
			"renderItem": components.RenderItemFunc(func(item components.ListItem) any {
				return k.Body.H(nil, fmt.Sprintf("%d. %v", item.Index+1, item.Item))
			}),
		}),
		k.Sections.H(components.Props{
			"sections": []components.Section{
				{Key: "fruit", Title: "Fruit", Data: []any{"apple", "pear"}},
				{Key: "veg", Title: "Vegetables", Data: []any{"leek"}},
			},
			"renderItem": components.RenderItemFunc(func(item components.ListItem) any {
				return k.Body.H(nil, fmt.Sprintf("• %v", item.Item))
			}),
		}),
	}
}

func media(k *Kit, st State) []any {
	lines := make([]any, 0, 10)
	for i := 1; i <= 10; i++ {
		lines = append(lines, k.Body.H(nil, fmt.Sprintf("log line %02d", i)))
	}
	return []any{
		k.Row.H(nil,
			k.Avatar.H(components.Props{"source": "ada.png"}),
			k.Banner.H(components.Props{"width": 20, "alt": "release banner"}),
		),
		k.Scroll.H(components.Props{"contentOffset": st.Offset}, lines...),
	}
}

func button(k *Kit, st State, name, variant, label string) any {
	return k.Button.H(components.Props{
		"variant": variant,
		"pressed": st.Pressed == name,
	}, label)
}
