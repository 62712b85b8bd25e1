// Package components is the terminal host toolkit: prop-driven primitives that
// render to strings through lipgloss.
//
// # Overview
//
// Every primitive implements Component and receives an open Props bag on each
// render. Styling travels in props["style"] as a Style, a StyleStack or any
// nesting of the two. The host owns the merge rule:
//
//	Flatten(StyleStack{base, nil, override}) // later entries win, nil adds nothing
//
// and the translation of the flattened Style into a lipgloss.Style (Compile).
// Property names follow React Native (color, backgroundColor, paddingHorizontal,
// borderStyle, fontWeight, ...); unknown names and ill-typed values are ignored.
//
// # Primitives
//
// Containers:
//   - View: column or row layout with gap and alignItems
//   - SafeAreaView: a View clamped to the width its parent allows
//   - ScrollView: a View clipped to its height through bubbles/viewport
//   - TouchableOpacity: a pressable View, see Press
//
// Content:
//   - Text: inline text with numberOfLines truncation
//   - TextInput: single-line input rendered by bubbles/textinput
//   - Image: a framed placeholder carrying the alt text
//
// Lists:
//   - FlatList: data + renderItem with separators, header, footer and empty state
//   - SectionList: grouped data with section headers
//
// # Elements
//
// Trees are built from Element values and rendered with a context.Context:
//
//	el := H(View{}, Props{"style": Style{"padding": 1}},
//		H(Text{}, nil, "Hello"),
//	)
//	out := el.Render(ctx)
//
// Layout constraints travel down the tree through the context (WithConstraints),
// so rendering holds no global state and the same element renders identically
// for identical inputs.
package components
