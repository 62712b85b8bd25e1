package components

import (
	"fmt"
	"maps"
)

// Well-known prop keys understood by every primitive.
const (
	KeyStyle    = "style"
	KeyChildren = "children"
	KeyTheme    = "theme"
	KeyCtx      = "ctx"
)

// Props is the open prop bag handed to a component on every render.
// Components read the keys they understand and ignore the rest.
type Props map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (p Props) Clone() Props {
	if p == nil {
		return Props{}
	}
	return maps.Clone(p)
}

// Style returns the raw style prop, which may be a Style, a StyleStack or nil.
func (p Props) Style() any {
	return p[KeyStyle]
}

// Children returns the raw children prop.
func (p Props) Children() any {
	return p[KeyChildren]
}

// Has reports whether key is present, even with a nil value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the prop as a string. Non-string scalars are formatted with %v.
func (p Props) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Bool returns the prop as a bool; anything that is not a bool is false.
func (p Props) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

// Int returns the prop as an int and whether it held a number.
func (p Props) Int(key string) (int, bool) {
	return toInt(p[key])
}

// Float returns the prop as a float64 and whether it held a number.
func (p Props) Float(key string) (float64, bool) {
	return toFloat(p[key])
}

// Number reports v as a float64 when it holds any Go numeric type.
func Number(v any) (float64, bool) {
	return toFloat(v)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	case float32:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		i, ok := toInt(v)
		return float64(i), ok
	}
}
