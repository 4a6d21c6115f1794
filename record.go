package scriptutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// Record is a mutable set of named members, the target of mixins. Members
// keep their insertion order.
type Record struct {
	names    []string
	members  map[string]any
	encoding bool
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{
		members: make(map[string]any),
	}
}

// Kind implements Kinded. Records are plain objects.
func (r *Record) Kind() Kind {
	return KindObject
}

// Get returns the named member, or Undefined when absent.
func (r *Record) Get(name string) any {
	if v, ok := r.members[name]; ok {
		return v
	}
	return Undefined
}

// Lookup returns the named member and whether it is present.
func (r *Record) Lookup(name string) (any, bool) {
	v, ok := r.members[name]
	return v, ok
}

// Has reports whether the named member is present.
func (r *Record) Has(name string) bool {
	_, ok := r.members[name]
	return ok
}

// Set assigns a member, replacing any previous value.
func (r *Record) Set(name string, value any) {
	if _, ok := r.members[name]; !ok {
		r.names = append(r.names, name)
	}
	r.members[name] = value
}

// SetDefault assigns a member only if it is absent and reports whether it
// did. Existing members are never overwritten.
func (r *Record) SetDefault(name string, value any) bool {
	if r.Has(name) {
		return false
	}
	r.Set(name, value)
	return true
}

// Delete removes a member.
func (r *Record) Delete(name string) {
	if _, ok := r.members[name]; !ok {
		return
	}
	delete(r.members, name)
	for i, n := range r.names {
		if n == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
}

// Names returns member names in insertion order.
func (r *Record) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of members.
func (r *Record) Len() int {
	return len(r.names)
}

// Invoke calls the named function member with args and returns its first
// result. A trailing error result is returned as the error.
func (r *Record) Invoke(name string, args ...any) (any, error) {
	member, ok := r.members[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMember, name)
	}

	switch fn := member.(type) {
	case LogFunc:
		fn(args...)
		return nil, nil
	case SerializeFunc:
		opts := make([]SerializeOption, 0, len(args))
		for _, a := range args {
			opt, ok := a.(SerializeOption)
			if !ok {
				return nil, fmt.Errorf("scriptutils: %s: argument %T is not a SerializeOption", name, a)
			}
			opts = append(opts, opt)
		}
		return fn(opts...)
	case Predicate:
		return fn(args...), nil
	case func(...any) bool:
		return fn(args...), nil
	case func(...any):
		fn(args...)
		return nil, nil
	case func(...any) any:
		return fn(args...), nil
	}

	return invokeValue(name, reflect.ValueOf(member), args)
}

func invokeValue(name string, fn reflect.Value, args []any) (any, error) {
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, fmt.Errorf("%w: %s", ErrNotCallable, name)
	}

	t := fn.Type()
	if t.IsVariadic() || t.NumIn() != len(args) {
		return nil, fmt.Errorf("scriptutils: %s: want %d arguments, got %d", name, t.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		want := t.In(i)
		if a == nil {
			in[i] = reflect.Zero(want)
			continue
		}
		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("scriptutils: %s: argument %d is %T, want %s", name, i, a, want)
		}
		in[i] = v
	}

	out := fn.Call(in)
	if n := len(out); n > 0 && t.Out(n-1) == errorType {
		if err, _ := out[n-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

// MarshalJSON encodes the record as an object. Function members are
// skipped.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r.encoding {
		return nil, ErrCyclicRecord
	}
	r.encoding = true
	defer func() { r.encoding = false }()

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, name := range r.names {
		v := r.members[name]
		if omitted(v) {
			continue
		}
		data, err := json.Marshal(prune(v))
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", name, err)
		}
		key, _ := json.Marshal(name)
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping, with the same members as
// MarshalJSON.
func (r *Record) MarshalYAML() (any, error) {
	data, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
