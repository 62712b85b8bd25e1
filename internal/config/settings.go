// Package config loads styledterm settings from defaults, a settings file,
// STYLEDTERM_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/styledterm/internal/theme"
	"github.com/alexisbeaulieu97/styledterm/internal/validation"
	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

// Name is the settings file base name and the environment prefix.
const Name = "styledterm"

// Setting keys.
const (
	KeyTheme       = "theme"
	KeyDebugStyles = "debug_styles"
	KeyLogLevel    = "log_level"
	KeyLogHuman    = "log_human"
	KeyWidth       = "width"
	KeyScreen      = "screen"
)

// EnvKeyReplacer maps setting keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Field documents one setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that sets the field.
func (f Field) Env() string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Fields lists every setting with its default.
var Fields = []Field{
	{Key: KeyTheme, Value: theme.Default, Description: "theme name or path to a theme file"},
	{Key: KeyDebugStyles, Value: false, Description: "log the style stack of every styled component"},
	{Key: KeyLogLevel, Value: "warn", Description: "log level: trace, debug, info, warn, error or disabled"},
	{Key: KeyLogHuman, Value: true, Description: "write logs for humans instead of JSON"},
	{Key: KeyWidth, Value: 0, Description: "render width in cells; 0 uses the terminal width"},
	{Key: KeyScreen, Value: "overview", Description: "gallery screen to render or preview first"},
}

// Settings is the validated configuration.
type Settings struct {
	Theme       string `mapstructure:"theme" validate:"required,theme_ref"`
	DebugStyles bool   `mapstructure:"debug_styles"`
	LogLevel    string `mapstructure:"log_level" validate:"oneof=trace debug info warn error disabled"`
	LogHuman    bool   `mapstructure:"log_human"`
	Width       int    `mapstructure:"width" validate:"gte=0,lte=1000"`
	Screen      string `mapstructure:"screen" validate:"required,slug"`
}

// New returns a viper instance with defaults and environment bindings. When
// file is empty the settings file is searched for in the working directory
// and the user config directory.
func New(file string) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for _, field := range Fields {
		v.SetDefault(field.Key, field.Value)
	}

	if file != "" {
		v.SetConfigFile(file)
		return v
	}

	v.SetConfigName(Name)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, Name))
	}
	return v
}

// Load reads the settings file if there is one and returns validated settings.
// A missing settings file is not an error unless it was named explicitly.
func Load(v *viper.Viper) (*Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, styledErrors.NewParseError(v.ConfigFileUsed(), 0, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, styledErrors.NewParseError(v.ConfigFileUsed(), 0, err)
	}

	if err := validation.Struct(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
