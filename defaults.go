package scriptutils

import (
	"sync"
)

// globalDefaults holds the instance behind the package-level helpers.
var globalDefaults = &utilsDefaults{
	utils: New(),
}

type utilsDefaults struct {
	mu    sync.RWMutex
	utils *Utils
}

// Default returns the instance used by the package-level helpers.
func Default() *Utils {
	globalDefaults.mu.RLock()
	defer globalDefaults.mu.RUnlock()
	return globalDefaults.utils
}

// SetDefaults reconfigures the package-level helpers. Options not given keep
// their current value.
func SetDefaults(opts ...Option) {
	globalDefaults.mu.Lock()
	defer globalDefaults.mu.Unlock()

	current := globalDefaults.utils
	o := options{
		global:     current.global,
		console:    current.console,
		hasConsole: true,
		codec:      current.codec,
	}
	for _, opt := range opts {
		opt(&o)
	}
	globalDefaults.utils = newUtils(o)
}

// ResetDefaults restores the initial configuration of the package-level
// helpers.
func ResetDefaults() {
	globalDefaults.mu.Lock()
	defer globalDefaults.mu.Unlock()
	globalDefaults.utils = New()
}

// IsWindow reports whether v is the default instance's global context.
func IsWindow(v any) bool { return Default().IsWindow(v) }

// Error writes args to the default console's error channel.
func Error(args ...any) { Default().Error(args...) }

// Info writes args to the default console's info channel.
func Info(args ...any) { Default().Info(args...) }

// Log writes args to the default console's log channel.
func Log(args ...any) { Default().Log(args...) }

// Serialize encodes value with the default codec.
func Serialize(value any, opts ...SerializeOption) (string, error) {
	return Default().Serialize(value, opts...)
}

// Deserialize decodes text with the default codec.
func Deserialize(text string, opts ...DeserializeOption) (any, error) {
	return Default().Deserialize(text, opts...)
}

// Loggable adds the default instance's log members to rec.
func Loggable(rec *Record) *Record { return Default().Loggable(rec) }

// Serializable adds a serialize member bound to rec, using the default
// codec.
func Serializable(rec *Record) *Record { return Default().Serializable(rec) }
