package scriptutils

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

var (
	isNotBlank  = Negate(Unary(IsBlank))
	isNotNull   = Negate(Unary(IsNull))
	isNumber    = Negate(Unary(IsNaN))
	isSomething = Negate(Unary(IsNothing))
)

// IsArray reports whether v is a slice or an array.
func IsArray(v any) bool { return KindOf(v) == KindArray }

// IsBoolean reports whether v is a boolean.
func IsBoolean(v any) bool { return KindOf(v) == KindBoolean }

// IsDate reports whether v is a time.Time.
func IsDate(v any) bool { return KindOf(v) == KindDate }

// IsError reports whether v is an error.
func IsError(v any) bool { return KindOf(v) == KindError }

// IsFunction reports whether v is a function.
func IsFunction(v any) bool { return KindOf(v) == KindFunction }

// IsGlobal reports whether v is the global scope of some environment.
func IsGlobal(v any) bool { return KindOf(v) == KindGlobal }

// IsPlainObject reports whether v is a map, a struct or a Record.
func IsPlainObject(v any) bool { return KindOf(v) == KindObject }

// IsRegex reports whether v is a compiled regular expression.
func IsRegex(v any) bool { return KindOf(v) == KindRegex }

// IsString reports whether v is a string.
func IsString(v any) bool { return KindOf(v) == KindString }

// IsNull reports whether v is null: nil or a nil reference. Undefined is
// not null.
func IsNull(v any) bool { return KindOf(v) == KindNull }

// IsNotNull is the negation of IsNull.
func IsNotNull(v any) bool { return isNotNull(v) }

// IsUndefined reports whether v is Undefined. nil is not undefined.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNothing reports whether v is Undefined or null.
func IsNothing(v any) bool {
	return IsUndefined(v) || IsNull(v)
}

// IsSomething is the negation of IsNothing.
func IsSomething(v any) bool { return isSomething(v) }

// IsBlank reports whether v is nothing, empty, or only whitespace.
//
// Strings, byte and rune slices and fmt.Stringer values are tested as text.
// Slices, arrays and maps are blank when empty. Anything else is not blank.
func IsBlank(v any) bool {
	if IsNothing(v) {
		return true
	}
	if s, ok := textOf(v); ok {
		return strings.TrimFunc(s, unicode.IsSpace) == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// IsNotBlank is the negation of IsBlank.
func IsNotBlank(v any) bool { return isNotBlank(v) }

// IsNumber reports whether v coerces to a valid number. It is not a type
// check: IsNumber("42") is true and IsNumber(math.NaN()) is false.
func IsNumber(v any) bool { return isNumber(v) }

// textOf returns the text form of string-like values.
func textOf(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case []byte:
		return string(s), true
	case []rune:
		return string(s), true
	case fmt.Stringer:
		return s.String(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
