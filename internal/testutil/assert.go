package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/agentstation/scriptutils"
)

// Assert provides test assertions.
type Assert struct {
	t *testing.T
}

// NewAssert creates a new assert helper.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// Equal asserts that two values are equal.
func (a *Assert) Equal(expected, actual any, msgAndArgs ...any) {
	a.t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		a.fail(fmt.Sprintf("Expected: %v\nActual: %v", expected, actual), msgAndArgs...)
	}
}

// Nil asserts that a value is nil.
func (a *Assert) Nil(value any, msgAndArgs ...any) {
	a.t.Helper()
	if !isNil(value) {
		a.fail(fmt.Sprintf("Expected nil, but got: %v", value), msgAndArgs...)
	}
}

// NotNil asserts that a value is not nil.
func (a *Assert) NotNil(value any, msgAndArgs ...any) {
	a.t.Helper()
	if isNil(value) {
		a.fail("Expected non-nil value, but got nil", msgAndArgs...)
	}
}

// True asserts that a value is true.
func (a *Assert) True(value bool, msgAndArgs ...any) {
	a.t.Helper()
	if !value {
		a.fail("Expected true, but got false", msgAndArgs...)
	}
}

// False asserts that a value is false.
func (a *Assert) False(value bool, msgAndArgs ...any) {
	a.t.Helper()
	if value {
		a.fail("Expected false, but got true", msgAndArgs...)
	}
}

// Error asserts that an error occurred.
func (a *Assert) Error(err error, msgAndArgs ...any) {
	a.t.Helper()
	if err == nil {
		a.fail("Expected error, but got nil", msgAndArgs...)
	}
}

// NoError asserts that no error occurred.
func (a *Assert) NoError(err error, msgAndArgs ...any) {
	a.t.Helper()
	if err != nil {
		a.fail(fmt.Sprintf("Expected no error, but got: %v", err), msgAndArgs...)
	}
}

// Contains asserts that a string contains a substring.
func (a *Assert) Contains(s, substr string, msgAndArgs ...any) {
	a.t.Helper()
	if !contains(s, substr) {
		a.fail(fmt.Sprintf("Expected %q to contain %q", s, substr), msgAndArgs...)
	}
}

// NotContains asserts that a string does not contain a substring.
func (a *Assert) NotContains(s, substr string, msgAndArgs ...any) {
	a.t.Helper()
	if contains(s, substr) {
		a.fail(fmt.Sprintf("Expected %q to not contain %q", s, substr), msgAndArgs...)
	}
}

// Len asserts the length of a collection.
func (a *Assert) Len(collection any, length int, msgAndArgs ...any) {
	a.t.Helper()
	actual := getLen(collection)
	if actual != length {
		a.fail(fmt.Sprintf("Expected length %d, but got %d", length, actual), msgAndArgs...)
	}
}

// Empty asserts that a collection is empty.
func (a *Assert) Empty(collection any, msgAndArgs ...any) {
	a.t.Helper()
	if getLen(collection) != 0 {
		a.fail(fmt.Sprintf("Expected empty collection, but got length %d", getLen(collection)), msgAndArgs...)
	}
}

// NotPanics asserts that a function does not panic.
func (a *Assert) NotPanics(fn func(), msgAndArgs ...any) {
	a.t.Helper()

	defer func() {
		if r := recover(); r != nil {
			a.fail(fmt.Sprintf("Expected no panic, but got: %v", r), msgAndArgs...)
		}
	}()

	fn()
}

// ErrorIs asserts that err matches target.
func (a *Assert) ErrorIs(err, target error, msgAndArgs ...any) {
	a.t.Helper()
	if !errors.Is(err, target) {
		a.fail(fmt.Sprintf("Expected error matching %v, but got: %v", target, err), msgAndArgs...)
	}
}

// ErrorAs asserts that err has a link of target's type and sets target to it.
func (a *Assert) ErrorAs(err error, target any, msgAndArgs ...any) {
	a.t.Helper()
	if err == nil || !errors.As(err, target) {
		a.fail(fmt.Sprintf("Expected error of type %T, but got: %v", target, err), msgAndArgs...)
	}
}

// Same asserts that two references point to the same thing. Plain values
// such as strings and numbers are compared by value.
func (a *Assert) Same(expected, actual any, msgAndArgs ...any) {
	a.t.Helper()
	if !samePointer(expected, actual) {
		a.fail(fmt.Sprintf("Expected same reference\nExpected: %T %v\nActual: %T %v", expected, expected, actual, actual), msgAndArgs...)
	}
}

// Helper functions

func (a *Assert) fail(message string, msgAndArgs ...any) {
	if len(msgAndArgs) > 0 {
		if format, ok := msgAndArgs[0].(string); ok && len(msgAndArgs) > 1 {
			message = fmt.Sprintf(format, msgAndArgs[1:]...) + "\n" + message
		} else if len(msgAndArgs) == 1 {
			message = fmt.Sprintf("%v\n%s", msgAndArgs[0], message)
		}
	}
	a.t.Fatal(message)
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}

	return false
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func samePointer(expected, actual any) bool {
	ev, av := reflect.ValueOf(expected), reflect.ValueOf(actual)
	if !ev.IsValid() || !av.IsValid() || ev.Type() != av.Type() {
		return false
	}
	switch ev.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		return ev.Pointer() == av.Pointer()
	}
	return reflect.DeepEqual(expected, actual)
}

func getLen(value any) int {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return v.Len()
	default:
		panic(fmt.Sprintf("Cannot get length of type %T", value))
	}
}

// RecordAssert provides record-specific assertions.
type RecordAssert struct {
	*Assert
}

// NewRecordAssert creates record-specific assertions.
func NewRecordAssert(t *testing.T) *RecordAssert {
	return &RecordAssert{
		Assert: NewAssert(t),
	}
}

// HasMembers asserts that a record has every named member.
func (ra *RecordAssert) HasMembers(rec *scriptutils.Record, names ...string) {
	ra.t.Helper()
	for _, name := range names {
		ra.True(rec.Has(name), "Expected record to have member: %s", name)
	}
}

// MemberKind asserts the kind of a record member.
func (ra *RecordAssert) MemberKind(rec *scriptutils.Record, name string, kind scriptutils.Kind) {
	ra.t.Helper()
	got := scriptutils.KindOf(rec.Get(name))
	ra.Equal(kind, got, "Member %s", name)
}

// SameMembers asserts that the named members of a record are the same
// references as in a snapshot taken earlier with Snapshot.
func (ra *RecordAssert) SameMembers(before map[string]any, rec *scriptutils.Record) {
	ra.t.Helper()
	for name, v := range before {
		ra.Same(v, rec.Get(name), "Member %s changed", name)
	}
}

// Snapshot captures the current members of a record.
func Snapshot(rec *scriptutils.Record) map[string]any {
	out := make(map[string]any, rec.Len())
	for _, name := range rec.Names() {
		out[name] = rec.Get(name)
	}
	return out
}
