package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styledterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	settings, err := Load(New(""))
	require.NoError(t, err)
	require.Equal(t, &Settings{
		Theme:       "dark",
		DebugStyles: false,
		LogLevel:    "warn",
		LogHuman:    true,
		Width:       0,
		Screen:      "overview",
	}, settings)
}

func TestSettingsFile(t *testing.T) {
	path := writeSettings(t, "theme: light\ndebug_styles: true\nwidth: 60\nscreen: form\n")

	settings, err := Load(New(path))
	require.NoError(t, err)
	require.Equal(t, "light", settings.Theme)
	require.True(t, settings.DebugStyles)
	require.Equal(t, 60, settings.Width)
	require.Equal(t, "form", settings.Screen)
	require.Equal(t, "warn", settings.LogLevel)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeSettings(t, "theme: light\nwidth: 60\n")
	t.Setenv("STYLEDTERM_THEME", "mono")
	t.Setenv("STYLEDTERM_DEBUG_STYLES", "true")

	settings, err := Load(New(path))
	require.NoError(t, err)
	require.Equal(t, "mono", settings.Theme)
	require.True(t, settings.DebugStyles)
	require.Equal(t, 60, settings.Width)
}

func TestExplicitSettingsFileMustExist(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "missing.yaml")))

	var parseErr *styledErrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{name: "log level", content: "log_level: loud\n", field: "log_level"},
		{name: "negative width", content: "width: -1\n", field: "width"},
		{name: "theme reference", content: "theme: theme.json\n", field: "theme"},
		{name: "screen name", content: "screen: Main Screen\n", field: "screen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(writeSettings(t, tt.content)))

			var validationErr *styledErrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestFieldEnv(t *testing.T) {
	require.Equal(t, "STYLEDTERM_DEBUG_STYLES", Field{Key: KeyDebugStyles}.Env())
	require.Equal(t, "STYLEDTERM_THEME", Field{Key: KeyTheme}.Env())
}
