package codec

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrCyclicValue is returned when a value contains itself.
var ErrCyclicValue = errors.New("codec: cyclic value")

type visit struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// checkCycles reports ErrCyclicValue if v reaches itself through maps,
// slices, pointers or exported struct fields. Values shared without a cycle
// are fine.
func checkCycles(v any) error {
	return walk(reflect.ValueOf(v), make(map[visit]bool))
}

func walk(rv reflect.Value, path map[visit]bool) error {
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		key := visit{typ: rv.Type(), ptr: rv.Pointer()}
		if rv.Kind() == reflect.Slice {
			key.len = rv.Len()
		}
		if path[key] {
			return fmt.Errorf("%w: %s", ErrCyclicValue, rv.Type())
		}
		path[key] = true
		defer delete(path, key)
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return walk(rv.Elem(), path)
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if err := walk(iter.Value(), path); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		if !holdsReferences(rv.Type().Elem()) {
			return nil
		}
		for i := 0; i < rv.Len(); i++ {
			if err := walk(rv.Index(i), path); err != nil {
				return err
			}
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < rv.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if err := walk(rv.Field(i), path); err != nil {
				return err
			}
		}
	}
	return nil
}

// holdsReferences reports whether values of t can lead back to a container.
func holdsReferences(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	}
	return true
}
