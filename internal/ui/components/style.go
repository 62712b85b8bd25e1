package components

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Style is a single style object: property name to value, React Native style.
//
//	Style{"color": "#f00", "fontWeight": "bold", "paddingHorizontal": 1}
type Style map[string]any

// StyleStack is an ordered list of style entries. Entries may be a Style,
// a plain map, another StyleStack, a []Style or nil. Later entries override
// earlier ones; nil entries contribute nothing.
type StyleStack []any

// Property names the host understands. Anything else is carried along by
// Flatten but ignored by Compile.
const (
	PropColor              = "color"
	PropBackgroundColor    = "backgroundColor"
	PropBorderColor        = "borderColor"
	PropBorderStyle        = "borderStyle"
	PropBorderWidth        = "borderWidth"
	PropFontWeight         = "fontWeight"
	PropFontStyle          = "fontStyle"
	PropTextDecorationLine = "textDecorationLine"
	PropTextTransform      = "textTransform"
	PropTextAlign          = "textAlign"
	PropOpacity            = "opacity"
	PropPadding            = "padding"
	PropPaddingHorizontal  = "paddingHorizontal"
	PropPaddingVertical    = "paddingVertical"
	PropPaddingTop         = "paddingTop"
	PropPaddingRight       = "paddingRight"
	PropPaddingBottom      = "paddingBottom"
	PropPaddingLeft        = "paddingLeft"
	PropMargin             = "margin"
	PropMarginHorizontal   = "marginHorizontal"
	PropMarginVertical     = "marginVertical"
	PropMarginTop          = "marginTop"
	PropMarginRight        = "marginRight"
	PropMarginBottom       = "marginBottom"
	PropMarginLeft         = "marginLeft"
	PropWidth              = "width"
	PropHeight             = "height"
	PropMaxWidth           = "maxWidth"
	PropMaxHeight          = "maxHeight"
	PropFlexDirection      = "flexDirection"
	PropGap                = "gap"
	PropAlignItems         = "alignItems"
	PropDisplay            = "display"
)

// PropertyKind groups properties by the value shape they accept.
type PropertyKind int

const (
	KindColor PropertyKind = iota
	KindSize
	KindKeyword
	KindNumber
)

func (k PropertyKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindSize:
		return "size"
	case KindKeyword:
		return "keyword"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

var knownProperties = map[string]PropertyKind{
	PropColor:              KindColor,
	PropBackgroundColor:    KindColor,
	PropBorderColor:        KindColor,
	PropBorderStyle:        KindKeyword,
	PropBorderWidth:        KindSize,
	PropFontWeight:         KindKeyword,
	PropFontStyle:          KindKeyword,
	PropTextDecorationLine: KindKeyword,
	PropTextTransform:      KindKeyword,
	PropTextAlign:          KindKeyword,
	PropOpacity:            KindNumber,
	PropPadding:            KindSize,
	PropPaddingHorizontal:  KindSize,
	PropPaddingVertical:    KindSize,
	PropPaddingTop:         KindSize,
	PropPaddingRight:       KindSize,
	PropPaddingBottom:      KindSize,
	PropPaddingLeft:        KindSize,
	PropMargin:             KindSize,
	PropMarginHorizontal:   KindSize,
	PropMarginVertical:     KindSize,
	PropMarginTop:          KindSize,
	PropMarginRight:        KindSize,
	PropMarginBottom:       KindSize,
	PropMarginLeft:         KindSize,
	PropWidth:              KindSize,
	PropHeight:             KindSize,
	PropMaxWidth:           KindSize,
	PropMaxHeight:          KindSize,
	PropFlexDirection:      KindKeyword,
	PropGap:                KindSize,
	PropAlignItems:         KindKeyword,
	PropDisplay:            KindKeyword,
}

// KnownProperties returns the sorted list of property names the host compiles.
func KnownProperties() []string {
	names := lo.Keys(knownProperties)
	sort.Strings(names)
	return names
}

// PropertyKindOf reports the value shape of a known property.
func PropertyKindOf(name string) (PropertyKind, bool) {
	kind, ok := knownProperties[name]
	return kind, ok
}

// Entries expands a style value into its flat, ordered list of style objects.
// Nested stacks are walked depth first; nil and unrecognised entries are dropped.
func Entries(value any) []Style {
	var out []Style
	collect(&out, value)
	return out
}

func collect(out *[]Style, value any) {
	switch v := value.(type) {
	case nil:
	case Style:
		*out = append(*out, v)
	case map[string]any:
		*out = append(*out, Style(v))
	case StyleStack:
		for _, entry := range v {
			collect(out, entry)
		}
	case []Style:
		for _, entry := range v {
			collect(out, entry)
		}
	case []any:
		for _, entry := range v {
			collect(out, entry)
		}
	}
}

// Flatten merges a style value into one Style, later entries winning.
// The result is always a fresh map.
func Flatten(value any) Style {
	return lo.Assign(Entries(value)...)
}

// Compile translates a flattened Style into a lipgloss style. Values of the
// wrong shape are skipped rather than reported.
func Compile(s Style) lipgloss.Style {
	style := lipgloss.NewStyle()

	if c, ok := colorValue(s[PropColor]); ok {
		style = style.Foreground(c)
	}
	if c, ok := colorValue(s[PropBackgroundColor]); ok {
		style = style.Background(c)
	}

	style = applyFont(style, s)
	style = applySpacing(style, s, spacingSetters{
		all:    func(st lipgloss.Style, n int) lipgloss.Style { return st.Padding(n) },
		top:    lipgloss.Style.PaddingTop,
		right:  lipgloss.Style.PaddingRight,
		bottom: lipgloss.Style.PaddingBottom,
		left:   lipgloss.Style.PaddingLeft,
	}, PropPadding, PropPaddingHorizontal, PropPaddingVertical,
		PropPaddingTop, PropPaddingRight, PropPaddingBottom, PropPaddingLeft)
	style = applySpacing(style, s, spacingSetters{
		all:    func(st lipgloss.Style, n int) lipgloss.Style { return st.Margin(n) },
		top:    lipgloss.Style.MarginTop,
		right:  lipgloss.Style.MarginRight,
		bottom: lipgloss.Style.MarginBottom,
		left:   lipgloss.Style.MarginLeft,
	}, PropMargin, PropMarginHorizontal, PropMarginVertical,
		PropMarginTop, PropMarginRight, PropMarginBottom, PropMarginLeft)
	style = applyBorder(style, s)

	if n, ok := toInt(s[PropWidth]); ok && n > 0 {
		style = style.Width(n)
	}
	if n, ok := toInt(s[PropHeight]); ok && n > 0 {
		style = style.Height(n)
	}
	if n, ok := toInt(s[PropMaxWidth]); ok && n > 0 {
		style = style.MaxWidth(n)
	}
	if n, ok := toInt(s[PropMaxHeight]); ok && n > 0 {
		style = style.MaxHeight(n)
	}
	if pos, ok := textAlign(s[PropTextAlign]); ok {
		style = style.Align(pos)
	}

	return style
}

// Hidden reports whether the style removes the element from output.
func Hidden(s Style) bool {
	v, _ := s[PropDisplay].(string)
	return v == "none"
}

func colorValue(v any) (lipgloss.TerminalColor, bool) {
	switch c := v.(type) {
	case string:
		if c == "" || c == "transparent" {
			return nil, false
		}
		return lipgloss.Color(c), true
	case int:
		if c < 0 || c > 255 {
			return nil, false
		}
		return lipgloss.Color(strconv.Itoa(c)), true
	case lipgloss.Color:
		return c, true
	case lipgloss.AdaptiveColor:
		return c, true
	case map[string]any:
		light, _ := c["light"].(string)
		dark, _ := c["dark"].(string)
		if light == "" && dark == "" {
			return nil, false
		}
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}, true
	default:
		return nil, false
	}
}

func applyFont(style lipgloss.Style, s Style) lipgloss.Style {
	switch weight := fontWeight(s[PropFontWeight]); {
	case weight >= 600:
		style = style.Bold(true)
	case weight > 0 && weight <= 300:
		style = style.Faint(true)
	}

	if v, _ := s[PropFontStyle].(string); v == "italic" {
		style = style.Italic(true)
	}

	if v, ok := s[PropTextDecorationLine].(string); ok {
		for _, part := range strings.Fields(v) {
			switch part {
			case "underline":
				style = style.Underline(true)
			case "line-through":
				style = style.Strikethrough(true)
			}
		}
	}

	if v, ok := s[PropTextTransform].(string); ok {
		switch v {
		case "uppercase":
			style = style.Transform(strings.ToUpper)
		case "lowercase":
			style = style.Transform(strings.ToLower)
		case "capitalize":
			style = style.Transform(capitalize)
		}
	}

	if n, ok := toFloat(s[PropOpacity]); ok && n < 1 {
		style = style.Faint(true)
	}

	return style
}

// fontWeight maps a weight keyword or number to its numeric weight, or 0.
func fontWeight(v any) int {
	switch w := v.(type) {
	case string:
		switch w {
		case "bold":
			return 700
		case "normal":
			return 400
		}
		n, err := strconv.Atoi(w)
		if err != nil {
			return 0
		}
		return n
	default:
		n, _ := toInt(w)
		return n
	}
}

type spacingSetters struct {
	all    func(lipgloss.Style, int) lipgloss.Style
	top    func(lipgloss.Style, int) lipgloss.Style
	right  func(lipgloss.Style, int) lipgloss.Style
	bottom func(lipgloss.Style, int) lipgloss.Style
	left   func(lipgloss.Style, int) lipgloss.Style
}

// applySpacing applies the shorthand first, then the axis, then the sides,
// so the most specific property wins regardless of declaration order.
func applySpacing(style lipgloss.Style, s Style, set spacingSetters, all, horizontal, vertical, top, right, bottom, left string) lipgloss.Style {
	if n, ok := toInt(s[all]); ok {
		style = set.all(style, n)
	}
	if n, ok := toInt(s[horizontal]); ok {
		style = set.left(set.right(style, n), n)
	}
	if n, ok := toInt(s[vertical]); ok {
		style = set.top(set.bottom(style, n), n)
	}
	if n, ok := toInt(s[top]); ok {
		style = set.top(style, n)
	}
	if n, ok := toInt(s[right]); ok {
		style = set.right(style, n)
	}
	if n, ok := toInt(s[bottom]); ok {
		style = set.bottom(style, n)
	}
	if n, ok := toInt(s[left]); ok {
		style = set.left(style, n)
	}
	return style
}

func applyBorder(style lipgloss.Style, s Style) lipgloss.Style {
	border, ok := borderFor(s[PropBorderStyle])
	if !ok {
		if n, isNum := toInt(s[PropBorderWidth]); isNum && n > 0 {
			border, ok = lipgloss.NormalBorder(), true
		}
	}
	if !ok {
		return style
	}

	style = style.Border(border)
	if c, hasColor := colorValue(s[PropBorderColor]); hasColor {
		style = style.BorderForeground(c)
	}
	return style
}

// borderFor resolves a borderStyle keyword to a lipgloss border.
func borderFor(v any) (lipgloss.Border, bool) {
	name, _ := v.(string)
	switch name {
	case "solid", "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}

func textAlign(v any) (lipgloss.Position, bool) {
	name, _ := v.(string)
	switch name {
	case "left":
		return lipgloss.Left, true
	case "center":
		return lipgloss.Center, true
	case "right":
		return lipgloss.Right, true
	default:
		return lipgloss.Left, false
	}
}

func capitalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := true
	for _, r := range s {
		if start && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			start = false
			continue
		}
		if unicode.IsSpace(r) {
			start = true
		}
		b.WriteRune(r)
	}
	return b.String()
}
