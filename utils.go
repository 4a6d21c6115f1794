package scriptutils

import (
	"github.com/agentstation/scriptutils/codec"
)

// Codec encodes and decodes values for Serialize and Deserialize.
type Codec = codec.Codec

// Utils binds the helpers that depend on their environment: the global
// context, the console and the codec. A Utils is immutable once created.
type Utils struct {
	global  *Global
	console Console
	codec   Codec
}

// Option configures a Utils.
type Option func(*options)

type options struct {
	global     *Global
	console    Console
	hasConsole bool
	codec      Codec
}

// WithGlobal sets the global context. Without one, IsWindow is always false.
func WithGlobal(g *Global) Option {
	return func(o *options) {
		o.global = g
	}
}

// WithConsole sets the log sink. A zero Console drops everything.
func WithConsole(c Console) Option {
	return func(o *options) {
		o.console = c
		o.hasConsole = true
	}
}

// WithCodec sets the codec used by Serialize and Deserialize.
func WithCodec(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// New creates a Utils. Unset options fall back to no global context, the
// logrus standard logger and the encoding/json codec.
func New(opts ...Option) *Utils {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newUtils(o)
}

func newUtils(o options) *Utils {
	u := &Utils{
		global:  o.global,
		console: o.console,
		codec:   o.codec,
	}
	if !o.hasConsole {
		u.console = DefaultConsole()
	}
	if u.codec == nil {
		u.codec = codec.JSON{}
	}
	return u
}

// Global returns the configured global context, or nil.
func (u *Utils) Global() *Global {
	return u.global
}

// Console returns the configured log sink.
func (u *Utils) Console() Console {
	return u.console
}

// Codec returns the configured codec.
func (u *Utils) Codec() Codec {
	return u.codec
}

// IsWindow reports whether v is the configured global context itself.
func (u *Utils) IsWindow(v any) bool {
	if IsNothing(u.global) || IsNothing(v) {
		return false
	}
	g, ok := v.(*Global)
	return ok && g == u.global
}

// Error writes args to the console's error channel, if it has one.
func (u *Utils) Error(args ...any) {
	u.console.write(u.console.Error, args)
}

// Info writes args to the console's info channel, if it has one.
func (u *Utils) Info(args ...any) {
	u.console.write(u.console.Info, args)
}

// Log writes args to the console's log channel, if it has one.
func (u *Utils) Log(args ...any) {
	u.console.write(u.console.Log, args)
}
