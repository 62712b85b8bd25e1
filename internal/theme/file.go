package theme

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/styledterm/internal/styled"
	"github.com/alexisbeaulieu97/styledterm/internal/ui/components"
	"github.com/alexisbeaulieu97/styledterm/internal/validation"
	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// colourTokens are the top-level tokens that must hold a terminal colour
// when a theme file sets them.
var colourTokens = append([]string{"text", "textMuted", "background", "border", "focus"}, SlotNames...)

// File is the on-disk theme format.
//
//	name: ocean
//	extends: dark
//	tokens:
//	  primary: "#0ea5e9"
//	  spacing: {md: 3}
//	ctx:
//	  locale: en
//	root:
//	  color: "#e0f2fe"
type File struct {
	Name    string         `yaml:"name" validate:"required,slug"`
	Extends string         `yaml:"extends" validate:"omitempty,slug"`
	Tokens  map[string]any `yaml:"tokens"`
	Ctx     map[string]any `yaml:"ctx"`
	Root    map[string]any `yaml:"root"`
}

// Load resolves a built-in theme name or a path to a theme file.
func Load(nameOrPath string) (Definition, error) {
	if def, ok := Preset(nameOrPath); ok {
		return def, nil
	}
	if !validation.IsThemeRef(nameOrPath) || validation.Validator().Var(nameOrPath, "slug") == nil {
		return Definition{}, styledErrors.NewNotFoundError("theme", nameOrPath, Names()...)
	}
	return LoadFile(nameOrPath)
}

// LoadFile reads, validates and resolves a theme file.
func LoadFile(path string) (Definition, error) {
	if err := validation.CheckFileExists(path); err != nil {
		return Definition{}, styledErrors.NewParseError(path, 0, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, styledErrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes a theme file and resolves it against the preset it extends.
func Parse(path string, data []byte) (Definition, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Definition{}, styledErrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&file); err != nil {
		return Definition{}, err
	}

	return resolve(file), nil
}

// Validate checks a decoded theme file: its name, the preset it extends,
// the colour tokens and the root style.
func Validate(file *File) error {
	if file == nil {
		return styledErrors.NewValidationError("theme", "theme is nil", nil)
	}
	if err := validation.Struct(file); err != nil {
		return err
	}

	if file.Extends != "" {
		if _, ok := presets[file.Extends]; !ok {
			return styledErrors.NewValidationError("extends", fmt.Sprintf("unknown theme %q", file.Extends), nil)
		}
	}

	for _, name := range colourTokens {
		value, ok := file.Tokens[name]
		if !ok {
			continue
		}
		if err := validation.Var("tokens."+name, fmt.Sprint(value), "term_color"); err != nil {
			return err
		}
	}

	keys := lo.Keys(file.Root)
	sort.Strings(keys)
	for _, key := range keys {
		field := "root." + key
		kind, known := components.PropertyKindOf(key)
		if !known {
			return styledErrors.NewValidationError(field, "unknown style property", nil)
		}
		if kind == components.KindColor {
			if err := validation.Var(field, fmt.Sprint(file.Root[key]), "term_color"); err != nil {
				return err
			}
		}
	}

	return nil
}

func resolve(file File) Definition {
	def := Definition{
		Name:  file.Name,
		Theme: styled.Theme{},
		Ctx:   map[string]any{},
	}
	if file.Extends != "" {
		def, _ = Preset(file.Extends)
		def.Name = file.Name
	}

	tokens := mergeTokens(def.Theme, file.Tokens)
	tokens["name"] = file.Name
	def.Theme = styled.Theme(tokens)
	def.Ctx = lo.Assign(def.Ctx, file.Ctx)
	if len(file.Root) > 0 {
		def.Root = lo.Assign(def.Root, components.Style(file.Root))
	}
	return def
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
