package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

func TestValidatorIsShared(t *testing.T) {
	require.Same(t, Validator(), Validator())
}

type sample struct {
	Name   string `yaml:"name" validate:"required,slug"`
	Theme  string `yaml:"theme" validate:"omitempty,theme_ref"`
	Accent string `yaml:"accent" validate:"omitempty,term_color"`
	Nested struct {
		Prop string `mapstructure:"prop" validate:"omitempty,style_prop"`
	} `yaml:"nested"`
}

func TestStructUsesYAMLFieldNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value sample
		field string
	}{
		{name: "missing name", value: sample{}, field: "name"},
		{name: "upper-case name", value: sample{Name: "Ocean"}, field: "name"},
		{name: "bad ref", value: sample{Name: "ocean", Theme: "theme.json"}, field: "theme"},
		{name: "bad colour", value: sample{Name: "ocean", Accent: "blue"}, field: "accent"},
		{name: "bad prop", value: func() sample {
			s := sample{Name: "ocean"}
			s.Nested.Prop = "font-weight"
			return s
		}(), field: "nested.prop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.value)

			var validationErr *styledErrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}

	require.NoError(t, Struct(sample{Name: "ocean", Theme: "./themes/ocean.yml", Accent: "#0ea5e9"}))
}

func TestVar(t *testing.T) {
	t.Parallel()

	require.NoError(t, Var("tokens.primary", "#fff", "term_color"))

	err := Var("tokens.primary", "nope", "term_color")
	var validationErr *styledErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "tokens.primary", validationErr.Field)
}

func TestIsThemeRef(t *testing.T) {
	t.Parallel()

	require.True(t, IsThemeRef("dark"))
	require.True(t, IsThemeRef("high-contrast"))
	require.True(t, IsThemeRef("/etc/styledterm/ocean.yaml"))
	require.True(t, IsThemeRef("ocean.YML"))
	require.False(t, IsThemeRef("Ocean"))
	require.False(t, IsThemeRef("ocean.json"))
	require.False(t, IsThemeRef(""))
}
