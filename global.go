package scriptutils

// Global is the top-level scope of an execution environment. A Global is
// identified by its pointer; two Globals with the same name are still
// different environments.
type Global struct {
	name   string
	lookup func(key string) (any, bool)
}

// NewGlobal creates a global scope. lookup resolves top-level names and may
// be nil for a scope without bindings.
func NewGlobal(name string, lookup func(key string) (any, bool)) *Global {
	return &Global{name: name, lookup: lookup}
}

// Name returns the environment name.
func (g *Global) Name() string {
	return g.name
}

// Lookup resolves a top-level name.
func (g *Global) Lookup(key string) (any, bool) {
	if g.lookup == nil {
		return nil, false
	}
	return g.lookup(key)
}

// String implements fmt.Stringer.
func (g *Global) String() string {
	return "[global " + g.name + "]"
}
