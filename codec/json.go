package codec

import (
	"bytes"
	"encoding/json"
)

// JSON is the encoding/json codec. Unlike json.Marshal it does not escape
// HTML characters.
type JSON struct{}

// Marshal encodes v as JSON.
func (JSON) Marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
