package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CheckFileExists verifies a regular file exists at the given path.
func CheckFileExists(path string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("path %s does not exist", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path %s is a directory", path)
	}

	return nil
}

// IsTerminalColor reports whether s is a colour the terminal renderer
// understands: a hex code such as "#3b82f6" or an ANSI index from 0 to 255.
func IsTerminalColor(s string) bool {
	return isTerminalColor(Validator(), s)
}

func isTerminalColor(v *validator.Validate, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n >= 0 && n <= 255
	}
	return v.Var(s, "hexcolor") == nil
}

// IsStyleProperty reports whether name is shaped like a style property.
func IsStyleProperty(name string) bool {
	return propNamePattern.MatchString(name)
}
