package scriptutils

import (
	"reflect"
	"regexp"
	"time"
)

// Kind is the runtime category of a value.
type Kind int

// Value categories recognized by KindOf.
const (
	KindOther Kind = iota
	KindUndefined
	KindNull
	KindArray
	KindBoolean
	KindDate
	KindError
	KindFunction
	KindGlobal
	KindNumber
	KindObject
	KindRegex
	KindString
)

var kindNames = [...]string{
	KindOther:     "Other",
	KindUndefined: "Undefined",
	KindNull:      "Null",
	KindArray:     "Array",
	KindBoolean:   "Boolean",
	KindDate:      "Date",
	KindError:     "Error",
	KindFunction:  "Function",
	KindGlobal:    "Global",
	KindNumber:    "Number",
	KindObject:    "Object",
	KindRegex:     "Regex",
	KindString:    "String",
}

// String returns the category name, e.g. "Array".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindOther]
	}
	return kindNames[k]
}

// Kinded is implemented by values that know their own category, typically
// values handed over from another execution realm.
type Kinded interface {
	Kind() Kind
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Undefined stands for the absence of a value. It is distinct from nil,
// which is null.
var Undefined any = undefined{}

var (
	timeType   = reflect.TypeOf(time.Time{})
	errorType  = reflect.TypeOf((*error)(nil)).Elem()
	regexpType = reflect.TypeOf((*regexp.Regexp)(nil))
	globalType = reflect.TypeOf((*Global)(nil))
	kindedType = reflect.TypeOf((*Kinded)(nil)).Elem()
)

// KindOf classifies v. Classification depends only on what v is, never on
// which environment created it.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	if _, ok := v.(undefined); ok {
		return KindUndefined
	}
	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) Kind {
	if isNilRef(rv) {
		return KindNull
	}

	t := rv.Type()
	switch {
	case t.Implements(kindedType):
		return rv.Interface().(Kinded).Kind()
	case t == globalType:
		return KindGlobal
	case t == timeType || (t.Kind() == reflect.Pointer && t.Elem() == timeType):
		return KindDate
	case t == regexpType:
		return KindRegex
	case t.Implements(errorType):
		return KindError
	}

	switch rv.Kind() {
	case reflect.Bool:
		return KindBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.String:
		return KindString
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	case reflect.Func:
		return KindFunction
	case reflect.Pointer, reflect.Interface:
		return kindOfValue(rv.Elem())
	default:
		return KindOther
	}
}

func isNilRef(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
