package scriptutils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const maxIndent = 10

// SerializeOption configures Serialize.
type SerializeOption func(*serializeOptions)

type serializeOptions struct {
	replacer func(key string, value any) any
	allow    map[string]bool
	indent   string
}

// WithReplacer transforms values before encoding. fn is called with the key
// "" for the root, then for every object member and array element of the
// result. Returning Undefined drops an object member; dropped array elements
// become null.
func WithReplacer(fn func(key string, value any) any) SerializeOption {
	return func(o *serializeOptions) {
		o.replacer = fn
	}
}

// WithAllowlist keeps only the listed object keys, at every depth.
func WithAllowlist(keys ...string) SerializeOption {
	return func(o *serializeOptions) {
		o.allow = make(map[string]bool, len(keys))
		for _, k := range keys {
			o.allow[k] = true
		}
	}
}

// WithIndent pretty-prints with n spaces per level, clamped to [0, 10].
func WithIndent(n int) SerializeOption {
	return func(o *serializeOptions) {
		n = max(0, min(n, maxIndent))
		o.indent = strings.Repeat(" ", n)
	}
}

// WithIndentString pretty-prints with s per level. Only the first ten
// characters of s are used.
func WithIndentString(s string) SerializeOption {
	return func(o *serializeOptions) {
		if r := []rune(s); len(r) > maxIndent {
			s = string(r[:maxIndent])
		}
		o.indent = s
	}
}

// DeserializeOption configures Deserialize.
type DeserializeOption func(*deserializeOptions)

type deserializeOptions struct {
	reviver func(key string, value any) any
	schema  []byte
}

// WithReviver transforms decoded values bottom-up: members first, then their
// holder, the root last with key "". Returning Undefined deletes a member.
func WithReviver(fn func(key string, value any) any) DeserializeOption {
	return func(o *deserializeOptions) {
		o.reviver = fn
	}
}

// WithSchema validates the decoded document against a JSON Schema.
func WithSchema(schema []byte) DeserializeOption {
	return func(o *deserializeOptions) {
		o.schema = schema
	}
}

// Serialize encodes value with the configured codec. Undefined and function
// members of objects are left out and become null inside arrays. Undefined
// or a function at the top level fails with ErrUndefinedValue.
func (u *Utils) Serialize(value any, opts ...SerializeOption) (string, error) {
	var o serializeOptions
	for _, opt := range opts {
		opt(&o)
	}

	v := prune(value)
	if o.replacer != nil || o.allow != nil {
		normalized, err := u.normalize(v)
		if err != nil {
			return "", &SerializationError{Value: value, Err: err}
		}
		v = o.replace("", normalized)
	}
	if IsUndefined(v) {
		return "", &SerializationError{Value: value, Err: ErrUndefinedValue}
	}

	data, err := u.codec.Marshal(v, o.indent)
	if err != nil {
		return "", &SerializationError{Value: value, Err: err}
	}
	return string(data), nil
}

// Deserialize decodes text with the configured codec. With a reviver that
// drops the root, the result is Undefined.
func (u *Utils) Deserialize(text string, opts ...DeserializeOption) (any, error) {
	var o deserializeOptions
	for _, opt := range opts {
		opt(&o)
	}

	var out any
	if err := u.codec.Unmarshal([]byte(text), &out); err != nil {
		return nil, newParseError(err)
	}

	if o.schema != nil {
		if err := validateSchema(o.schema, out); err != nil {
			return nil, err
		}
	}
	if o.reviver != nil {
		out = revive(o.reviver, "", out)
	}
	return out, nil
}

// normalize converts value to the generic form the codec decodes to.
func (u *Utils) normalize(value any) (any, error) {
	data, err := u.codec.Marshal(value, "")
	if err != nil {
		return nil, err
	}
	var out any
	if err := u.codec.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// prune copies the generic maps and slices of v without Undefined or
// function members. Containers that reach themselves are kept as they are
// so the codec reports the cycle.
func prune(v any) any {
	if omitted(v) {
		return Undefined
	}
	return pruneValue(v, make(map[uintptr]bool))
}

func pruneValue(v any, path map[uintptr]bool) any {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return v
		}
		ptr := reflect.ValueOf(t).Pointer()
		if path[ptr] {
			return v
		}
		path[ptr] = true
		defer delete(path, ptr)

		out := make(map[string]any, len(t))
		for k, elem := range t {
			if !omitted(elem) {
				out[k] = pruneValue(elem, path)
			}
		}
		return out
	case []any:
		if len(t) == 0 {
			return v
		}
		ptr := reflect.ValueOf(t).Pointer()
		if path[ptr] {
			return v
		}
		path[ptr] = true
		defer delete(path, ptr)

		out := make([]any, len(t))
		for i, elem := range t {
			if !omitted(elem) {
				out[i] = pruneValue(elem, path)
			}
		}
		return out
	}
	return v
}

// omitted reports whether v has no JSON form as a member.
func omitted(v any) bool {
	return IsUndefined(v) || IsFunction(v)
}

func (o *serializeOptions) replace(key string, v any) any {
	if o.replacer != nil {
		v = o.replacer(key, v)
	}

	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			if o.allow != nil && !o.allow[k] {
				continue
			}
			if r := o.replace(k, elem); !IsUndefined(r) {
				out[k] = r
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			r := o.replace(strconv.Itoa(i), elem)
			if IsUndefined(r) {
				r = nil
			}
			out[i] = r
		}
		return out
	}
	return v
}

func revive(fn func(key string, value any) any, key string, v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, elem := range t {
			if r := revive(fn, k, elem); IsUndefined(r) {
				delete(t, k)
			} else {
				t[k] = r
			}
		}
	case []any:
		for i, elem := range t {
			r := revive(fn, strconv.Itoa(i), elem)
			if IsUndefined(r) {
				r = nil
			}
			t[i] = r
		}
	}
	return fn(key, v)
}

func validateSchema(schema []byte, doc any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("scriptutils: schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	violations := make([]*SchemaViolation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, &SchemaViolation{ResultError: re})
	}
	return &ValidationError{Violations: violations}
}

func newParseError(err error) *ParseError {
	pe := &ParseError{Offset: -1, Err: err}
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		pe.Offset = syntax.Offset
	}
	return pe
}

// MarshalJSON encodes Undefined nested in a value as null.
func (undefined) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}
