package validation

import (
	"fmt"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	styledErrors "github.com/alexisbeaulieu97/styledterm/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	slugPattern     = regexp.MustCompile(`^[a-z0-9_-]+$`)
	propNamePattern = regexp.MustCompile(`^[a-z][A-Za-z]*$`)
)

// Validator returns the shared validator instance with the custom tags
// used by settings, theme files and the style inspector:
//
//   - slug:       lower-case name such as a theme or screen name
//   - theme_ref:  a theme name or a path to a .yaml/.yml theme file
//   - term_color: a hex colour or an ANSI colour index
//   - style_prop: a camelCase style property name
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, key := range []string{"yaml", "mapstructure"} {
				name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return field.Name
		})

		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_ref", func(fl validator.FieldLevel) bool {
			return IsThemeRef(fl.Field().String())
		})

		_ = v.RegisterValidation("term_color", func(fl validator.FieldLevel) bool {
			return isTerminalColor(v, fl.Field().String())
		})

		_ = v.RegisterValidation("style_prop", func(fl validator.FieldLevel) bool {
			return propNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates v and converts the first failure into a ValidationError.
func Struct(v any) error {
	if err := Validator().Struct(v); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, value any, tag string) error {
	if err := Validator().Var(value, tag); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return styledErrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, tag), err)
		}
		return styledErrors.NewValidationError(field, err.Error(), err)
	}
	return nil
}

// IsThemeRef reports whether s names a theme or points at a theme file.
func IsThemeRef(s string) bool {
	if slugPattern.MatchString(s) {
		return true
	}
	if strings.ContainsRune(s, '\x00') {
		return false
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// convertValidationError normalizes validator errors into styledterm validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return styledErrors.NewValidationError(field, msg, err)
	}

	return styledErrors.NewValidationError("", err.Error(), err)
}

// fieldName renders the namespace of a failed field without its root struct,
// using the yaml/mapstructure names, e.g. "tokens" or "log.level".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
