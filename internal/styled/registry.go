package styled

import (
	"sort"

	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
)

// Kind names a base component the registry can style.
type Kind string

const (
	KindSafeAreaView     Kind = "safe-area-view"
	KindView             Kind = "view"
	KindText             Kind = "text"
	KindTextInput        Kind = "text-input"
	KindImage            Kind = "image"
	KindFlatList         Kind = "flat-list"
	KindScrollView       Kind = "scroll-view"
	KindSectionList      Kind = "section-list"
	KindTouchableOpacity Kind = "touchable-opacity"
)

// Factory defines a styled component for one fixed base component.
type Factory func(style StyleSpec, opts ...Option) *Component

var bases = map[Kind]components.Component{
	KindSafeAreaView:     components.SafeAreaView{},
	KindView:             components.View{},
	KindText:             components.Text{},
	KindTextInput:        components.TextInput{},
	KindImage:            components.Image{},
	KindFlatList:         components.FlatList{},
	KindScrollView:       components.ScrollView{},
	KindSectionList:      components.SectionList{},
	KindTouchableOpacity: components.TouchableOpacity{},
}

var aliases = map[Kind]Kind{
	"container": KindView,
	"label":     KindText,
	"list":      KindFlatList,
	"touchable": KindTouchableOpacity,
	"input":     KindTextInput,
}

func canonical(kind Kind) Kind {
	if target, ok := aliases[kind]; ok {
		return target
	}
	return kind
}

// Lookup returns the factory bound to kind or one of its aliases.
func Lookup(kind Kind) (Factory, bool) {
	base, ok := bases[canonical(kind)]
	if !ok {
		return nil, false
	}
	return bind(base), true
}

// BaseFor returns the base component registered for kind.
func BaseFor(kind Kind) (components.Component, bool) {
	base, ok := bases[canonical(kind)]
	return base, ok
}

// Kinds lists the registered kinds in sorted order, without aliases.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(bases))
	for k := range bases {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

func bind(base components.Component) Factory {
	return func(style StyleSpec, opts ...Option) *Component {
		return Define(base, style, opts...)
	}
}

// SafeAreaView styles a SafeAreaView.
func SafeAreaView(style StyleSpec, opts ...Option) *Component {
	return Define(components.SafeAreaView{}, style, opts...)
}

// View styles a View.
func View(style StyleSpec, opts ...Option) *Component {
	return Define(components.View{}, style, opts...)
}

// Text styles a Text.
func Text(style StyleSpec, opts ...Option) *Component {
	return Define(components.Text{}, style, opts...)
}

// TextInput styles a TextInput.
func TextInput(style StyleSpec, opts ...Option) *Component {
	return Define(components.TextInput{}, style, opts...)
}

// Image styles an Image.
func Image(style StyleSpec, opts ...Option) *Component {
	return Define(components.Image{}, style, opts...)
}

// FlatList styles a FlatList.
func FlatList(style StyleSpec, opts ...Option) *Component {
	return Define(components.FlatList{}, style, opts...)
}

// ScrollView styles a ScrollView.
func ScrollView(style StyleSpec, opts ...Option) *Component {
	return Define(components.ScrollView{}, style, opts...)
}

// SectionList styles a SectionList.
func SectionList(style StyleSpec, opts ...Option) *Component {
	return Define(components.SectionList{}, style, opts...)
}

// TouchableOpacity styles a TouchableOpacity.
func TouchableOpacity(style StyleSpec, opts ...Option) *Component {
	return Define(components.TouchableOpacity{}, style, opts...)
}
