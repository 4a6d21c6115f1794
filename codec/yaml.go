package codec

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// YAML is a YAML codec backed by goccy/go-yaml. It reads JSON as well,
// since JSON is a subset of YAML.
type YAML struct{}

// Marshal encodes v as a YAML document. The indent width is the length of
// indent, two spaces when empty. A value that contains itself fails with
// ErrCyclicValue.
func (YAML) Marshal(v any, indent string) ([]byte, error) {
	if err := checkCycles(v); err != nil {
		return nil, err
	}
	width := 2
	if indent != "" {
		width = len(strings.ReplaceAll(indent, "\t", "    "))
	}
	return yaml.MarshalWithOptions(v, yaml.Indent(width))
}

// Unmarshal decodes YAML data into v.
func (YAML) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
