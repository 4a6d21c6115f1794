package codec

import (
	"strings"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
)

// OJG is a JSON codec backed by ojg. Integers decode as int64 and object
// keys are written in sorted order.
type OJG struct{}

// Marshal encodes v as JSON. A value that contains itself fails with
// ErrCyclicValue.
func (OJG) Marshal(v any, indent string) ([]byte, error) {
	if err := checkCycles(v); err != nil {
		return nil, err
	}

	opts := ojg.GoOptions
	opts.Sort = true
	switch {
	case indent == "":
	case strings.HasPrefix(indent, "\t"):
		opts.Tab = true
	default:
		opts.Indent = len(indent)
	}
	return oj.Marshal(v, &opts)
}

// Unmarshal decodes JSON data into v. A *any target receives the generic
// form: map[string]any, []any, int64, float64, string, bool or nil.
func (OJG) Unmarshal(data []byte, v any) error {
	if p, ok := v.(*any); ok {
		out, err := oj.Parse(data)
		if err != nil {
			return err
		}
		*p = out
		return nil
	}
	return oj.Unmarshal(data, v)
}
