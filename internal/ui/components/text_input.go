package components

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TextInput renders a single-line input field through bubbles/textinput.
//
// Props: value, placeholder, placeholderTextColor, secureTextEntry,
// focused, editable (false renders faint), maxLength.
type TextInput struct{}

// Name implements Named.
func (TextInput) Name() string { return "TextInput" }

// Render implements Component.
func (TextInput) Render(_ context.Context, props Props) string {
	style := Flatten(props.Style())
	if Hidden(style) {
		return ""
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = props.String("placeholder")
	if n, ok := props.Int("maxLength"); ok && n > 0 {
		input.CharLimit = n
	}
	input.SetValue(props.String("value"))

	if props.Bool("secureTextEntry") {
		input.EchoMode = textinput.EchoPassword
		input.EchoCharacter = '•'
	}

	textStyle := lipgloss.NewStyle()
	if c, ok := colorValue(style[PropColor]); ok {
		textStyle = textStyle.Foreground(c)
	}
	input.TextStyle = textStyle

	placeholderStyle := lipgloss.NewStyle().Faint(true)
	if c, ok := colorValue(props["placeholderTextColor"]); ok {
		placeholderStyle = lipgloss.NewStyle().Foreground(c)
	}
	input.PlaceholderStyle = placeholderStyle

	ls := Compile(style)

	width, _ := toInt(style[PropWidth])
	if width > 0 {
		// The style width includes the padding and the cursor cell.
		width = max(width-ls.GetHorizontalPadding()-1, 1)
	} else {
		width = max(runewidth.StringWidth(input.Value())+1, runewidth.StringWidth(input.Placeholder))
	}
	// textinput sizes its placeholder buffer from the placeholder length and
	// cannot be wider than it while the placeholder shows.
	if input.Value() == "" && input.Placeholder != "" {
		width = min(width, len(input.Placeholder))
	}
	input.Width = width

	editable := !props.Has("editable") || props.Bool("editable")
	if editable && props.Bool("focused") {
		input.Focus()
	}

	if !editable {
		ls = ls.Faint(true)
	}
	return ls.Render(input.View())
}
