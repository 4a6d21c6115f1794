// Package codec provides the encoding facilities behind scriptutils'
// Serialize and Deserialize.
//
// Errors from the underlying libraries are returned unchanged so callers can
// inspect them.
package codec

// Codec encodes and decodes values.
type Codec interface {
	// Marshal encodes v. A non-empty indent pretty-prints with one indent
	// per nesting level.
	Marshal(v any, indent string) ([]byte, error)

	// Unmarshal decodes data into the value pointed to by v.
	Unmarshal(data []byte, v any) error
}

// Names of the built-in codecs.
const (
	JSONName = "json"
	OJGName  = "ojg"
	YAMLName = "yaml"
)

// ByName returns the built-in codec registered under name.
func ByName(name string) (Codec, bool) {
	switch name {
	case JSONName:
		return JSON{}, true
	case OJGName:
		return OJG{}, true
	case YAMLName:
		return YAML{}, true
	}
	return nil, false
}
