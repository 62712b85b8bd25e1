package inspect

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
	"github.com/alexisbeaulieu97/styledterm/internal/validation"
)

// Severity grades an Issue.
type Severity string

const (
	SeverityWarn Severity = "warn"
	SeverityInfo Severity = "info"
)

// Issue is a finding about one property of one stack entry.
type Issue struct {
	Index    int
	Property string
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%d] %s: %s", i.Index, i.Property, i.Message)
}

var keywords = map[string][]string{
	components.PropBorderStyle:        {"solid", "normal", "rounded", "thick", "double", "hidden", "none"},
	components.PropFontWeight:         {"normal", "bold", "100", "200", "300", "400", "500", "600", "700", "800", "900"},
	components.PropFontStyle:          {"normal", "italic"},
	components.PropTextDecorationLine: {"none", "underline", "line-through", "underline line-through"},
	components.PropTextTransform:      {"none", "uppercase", "lowercase", "capitalize"},
	components.PropTextAlign:          {"auto", "left", "center", "right"},
	components.PropFlexDirection:      {"row", "column", "row-reverse", "column-reverse"},
	components.PropAlignItems:         {"flex-start", "start", "center", "flex-end", "end", "stretch"},
	components.PropDisplay:            {"flex", "none"},
}

// Check inspects every top-level entry of a style stack. It reports unknown
// properties, values the host cannot compile and properties that a later
// entry overrides. Issues are ordered by entry, then property name.
func Check(stack components.StyleStack) []Issue {
	entries := make([]components.Style, len(stack))
	for i, entry := range stack {
		entries[i] = components.Flatten(entry)
	}

	var issues []Issue
	for i, entry := range entries {
		names := lo.Keys(entry)
		sort.Strings(names)

		for _, name := range names {
			if msg, ok := checkProperty(name, entry[name]); !ok {
				issues = append(issues, Issue{Index: i, Property: name, Severity: SeverityWarn, Message: msg})
				continue
			}
			if by := overriddenBy(entries, i, name); by >= 0 {
				issues = append(issues, Issue{
					Index:    i,
					Property: name,
					Severity: SeverityInfo,
					Message:  fmt.Sprintf("overridden by entry %d", by),
				})
			}
		}
	}
	return issues
}

// overriddenBy returns the index of the last later entry that sets name, or -1.
func overriddenBy(entries []components.Style, index int, name string) int {
	for j := len(entries) - 1; j > index; j-- {
		if _, ok := entries[j][name]; ok {
			return j
		}
	}
	return -1
}

func checkProperty(name string, value any) (string, bool) {
	kind, known := components.PropertyKindOf(name)
	if !known {
		if !validation.IsStyleProperty(name) {
			return "not a camelCase property name", false
		}
		return "unknown property", false
	}

	switch kind {
	case components.KindColor:
		if !isColor(value) {
			return fmt.Sprintf("%v is not a terminal colour", value), false
		}
	case components.KindSize:
		n, ok := components.Number(value)
		if !ok {
			return fmt.Sprintf("%v is not a number of cells", value), false
		}
		if n < 0 {
			return "negative size", false
		}
	case components.KindNumber:
		n, ok := components.Number(value)
		if !ok || n < 0 || n > 1 {
			return fmt.Sprintf("%v is not between 0 and 1", value), false
		}
	case components.KindKeyword:
		if !isKeyword(name, value) {
			return fmt.Sprintf("%v is not one of %v", value, keywords[name]), false
		}
	}
	return "", true
}

func isColor(value any) bool {
	switch c := value.(type) {
	case string:
		return c == "transparent" || validation.IsTerminalColor(c)
	case lipgloss.Color:
		return validation.IsTerminalColor(string(c))
	case lipgloss.AdaptiveColor:
		return validation.IsTerminalColor(c.Light) && validation.IsTerminalColor(c.Dark)
	case map[string]any:
		light, _ := c["light"].(string)
		dark, _ := c["dark"].(string)
		return validation.IsTerminalColor(light) && validation.IsTerminalColor(dark)
	default:
		n, ok := components.Number(value)
		return ok && n == float64(int(n)) && n >= 0 && n <= 255
	}
}

func isKeyword(name string, value any) bool {
	if name == components.PropFontWeight {
		if n, ok := components.Number(value); ok {
			value = strconv.Itoa(int(n))
		}
	}
	s, ok := value.(string)
	return ok && lo.Contains(keywords[name], s)
}
