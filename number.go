package scriptutils

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToNumber coerces v to a float64 the way script engines convert values to
// numbers. Values with no numeric reading yield NaN.
func ToNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case undefined:
		return math.NaN()
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		return parseNumber(n)
	case time.Time:
		return float64(n.UnixMilli())
	case *time.Time:
		if n == nil {
			return 0
		}
		return float64(n.UnixMilli())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return parseNumber(rv.String())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return 0
		}
		switch rv.Len() {
		case 0:
			return 0
		case 1:
			elem := rv.Index(0)
			if !elem.CanInterface() {
				return math.NaN()
			}
			return ToNumber(elem.Interface())
		}
		return math.NaN()
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
	}

	if s, ok := v.(interface{ String() string }); ok {
		return parseNumber(s.String())
	}
	return math.NaN()
}

// IsNaN reports whether v coerces to NaN.
func IsNaN(v any) bool {
	return math.IsNaN(ToNumber(v))
}

func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(n)
		}
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Out of range literals still have a reading.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}
