package scriptutils

// Predicate reports whether its arguments satisfy a condition.
type Predicate func(args ...any) bool

// Unary lifts a single-value test into a Predicate over its first argument.
// A call without arguments tests Undefined.
func Unary(fn func(v any) bool) Predicate {
	if fn == nil {
		return nil
	}
	return func(args ...any) bool {
		if len(args) == 0 {
			return fn(Undefined)
		}
		return fn(args[0])
	}
}

// Negate returns a predicate yielding the opposite of fn for the same
// arguments. When fn is nil the returned predicate is always true.
func Negate(fn Predicate) Predicate {
	return func(args ...any) bool {
		if fn == nil {
			return true
		}
		return !fn(args...)
	}
}
