// Package theme provides the built-in themes and loads theme files.
//
// A theme is a token map (styled.Theme) plus optional contextual data and
// root styles, ready to be installed with styled.Provide. Tokens are plain
// values so style functions can read them by path:
//
//	p.Theme().String("primary")           // semantic colour
//	p.Theme().String("colors.blue.500")   // palette shade
//	p.Theme().Int("spacing.md", 1)        // spacing in cells
//	p.Theme().Lookup("typography.title")  // a ready-made style object
package theme

import (
	"maps"
	"sort"

	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// Built-in theme names.
const (
	Light = "light"
	Dark  = "dark"
	Mono  = "mono"
)

// Default is the theme used when none is configured.
const Default = Dark

// SlotNames lists the semantic colour slots every built-in theme defines.
var SlotNames = []string{"primary", "secondary", "surface", "success", "warning", "danger", "info", "neutral"}

// Definition is a resolved theme.
type Definition struct {
	Name  string
	Theme styled.Theme
	Ctx   map[string]any
	Root  components.Style
}

// Context returns a fresh theme context for styled.Provide. The maps are
// copied so renders can never reach back into the definition.
func (d Definition) Context() styled.ThemeContext {
	value := styled.ThemeContext{
		Theme: styled.Theme(cloneTokens(d.Theme)),
		Ctx:   cloneTokens(d.Ctx),
	}
	if len(d.Root) > 0 {
		value.Root = &styled.Root{Styles: maps.Clone(d.Root)}
	}
	if value.Ctx == nil {
		value.Ctx = map[string]any{}
	}
	return value
}

var presets = map[string]func() Definition{
	Light: lightTheme,
	Dark:  darkTheme,
	Mono:  monoTheme,
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := lo.Keys(presets)
	sort.Strings(names)
	return names
}

// Preset returns a built-in theme by name.
func Preset(name string) (Definition, bool) {
	build, ok := presets[name]
	if !ok {
		return Definition{}, false
	}
	return build(), true
}

func lightTheme() Definition {
	return build(Light, map[string]slot{
		"primary":   {"#3b82f6", "#f8fafc", "#2563eb", "#facc15"},
		"secondary": {"#a855f7", "#f8fafc", "#7c3aed", "#f472b6"},
		"surface":   {"#f9fafb", "#111827", "#e2e8f0", "#3b82f6"},
		"success":   {"#22c55e", "#052e16", "#16a34a", "#f8fafc"},
		"warning":   {"#eab308", "#422006", "#ca8a04", "#111827"},
		"danger":    {"#ef4444", "#7f1d1d", "#dc2626", "#f8fafc"},
		"info":      {"#06b6d4", "#083344", "#0891b2", "#f8fafc"},
		"neutral":   {"#64748b", "#f1f5f9", "#475569", "#f8fafc"},
	})
}

func darkTheme() Definition {
	return build(Dark, map[string]slot{
		"primary":   {"#60a5fa", "#0b1120", "#1d4ed8", "#ca8a04"},
		"secondary": {"#c084fc", "#1f2937", "#6b21a8", "#f472b6"},
		"surface":   {"#0b1120", "#e5e7eb", "#111827", "#60a5fa"},
		"success":   {"#4ade80", "#022c22", "#15803d", "#f8fafc"},
		"warning":   {"#facc15", "#422006", "#a16207", "#111827"},
		"danger":    {"#f87171", "#450a0a", "#b91c1c", "#f8fafc"},
		"info":      {"#22d3ee", "#04121a", "#0e7490", "#f8fafc"},
		"neutral":   {shade("slate", 7), shade("slate", 3), "#1f2937", "#f8fafc"},
	})
}

// monoTheme sticks to the basic ANSI colours for terminals without true colour.
func monoTheme() Definition {
	return build(Mono, map[string]slot{
		"primary":   {"15", "0", "7", "15"},
		"secondary": {"7", "0", "8", "15"},
		"surface":   {"0", "15", "8", "15"},
		"success":   {"7", "0", "8", "15"},
		"warning":   {"15", "0", "7", "0"},
		"danger":    {"15", "0", "7", "0"},
		"info":      {"7", "0", "8", "15"},
		"neutral":   {"8", "15", "8", "15"},
	})
}

// build derives the full token set of a theme from its semantic slots.
func build(name string, slots map[string]slot) Definition {
	tokens := map[string]any{
		"name":    name,
		"colors":  colorTokens(),
		"spacing": spacingTokens(),
		"borders": map[string]any{
			"card":  "rounded",
			"input": "rounded",
			"focus": "thick",
			"alert": "normal",
		},
	}

	slotTokens := make(map[string]any, len(slots))
	for slotName, s := range slots {
		slotTokens[slotName] = s.tokens()
		tokens[slotName] = s.base
	}
	tokens["slots"] = slotTokens

	surface, neutral := slots["surface"], slots["neutral"]
	tokens["text"] = surface.onBase
	tokens["textMuted"] = neutral.base
	tokens["background"] = surface.base
	tokens["border"] = neutral.muted
	tokens["focus"] = slots["primary"].base

	tokens["typography"] = typography(slots)

	return Definition{
		Name:  name,
		Theme: styled.Theme(tokens),
		Ctx:   map[string]any{},
		Root:  components.Style{components.PropColor: surface.onBase},
	}
}

// typography returns the named text styles of a theme as style objects.
func typography(slots map[string]slot) map[string]any {
	primary, secondary := slots["primary"], slots["secondary"]
	surface, neutral := slots["surface"], slots["neutral"]

	return map[string]any{
		"title": map[string]any{
			components.PropColor:      primary.base,
			components.PropFontWeight: "bold",
		},
		"subtitle": map[string]any{
			components.PropColor:   secondary.muted,
			components.PropOpacity: 0.7,
		},
		"body": map[string]any{
			components.PropColor: surface.onBase,
		},
		"caption": map[string]any{
			components.PropColor:      neutral.base,
			components.PropFontWeight: "300",
		},
		"code": map[string]any{
			components.PropColor:             secondary.base,
			components.PropBackgroundColor:   surface.muted,
			components.PropPaddingHorizontal: 1,
		},
		"emphasis": map[string]any{
			components.PropFontWeight: "bold",
		},
		"link": map[string]any{
			components.PropColor:              primary.base,
			components.PropTextDecorationLine: "underline",
		},
	}
}

// cloneTokens deep-copies nested token maps; leaf values are shared.
func cloneTokens(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		switch nested := v.(type) {
		case map[string]any:
			out[k] = cloneTokens(nested)
		case styled.Theme:
			out[k] = styled.Theme(cloneTokens(nested))
		default:
			out[k] = v
		}
	}
	return out
}

// mergeTokens overlays over on base. Nested maps merge key by key; any other
// value in over replaces the base value.
func mergeTokens(base, over map[string]any) map[string]any {
	merged := lo.Assign(cloneTokens(base), over)
	for k, v := range over {
		nested, ok := v.(map[string]any)
		if !ok {
			continue
		}
		if prev, ok := base[k].(map[string]any); ok {
			merged[k] = mergeTokens(prev, nested)
		}
	}
	return merged
}
