package scriptutils

// Mixin attaches members to target. args are the extra arguments given to
// Mix.
type Mixin func(target *Record, args ...any) any

// SerializeFunc serializes the record it was attached to.
type SerializeFunc func(opts ...SerializeOption) (string, error)

// Mix runs fn against target and returns fn's result. A nil target is
// replaced by a new record. When fn is nil, or returns nil, the target
// itself is returned.
func Mix(fn Mixin, target *Record, args ...any) any {
	if target == nil {
		target = NewRecord()
	}
	if fn == nil {
		return target
	}
	if out := fn(target, args...); out != nil {
		return out
	}
	return target
}

// LoggableMixin returns the mixin adding error, info and log members that
// write to u's console.
func (u *Utils) LoggableMixin() Mixin {
	return func(target *Record, _ ...any) any {
		target.SetDefault("error", LogFunc(u.Error))
		target.SetDefault("info", LogFunc(u.Info))
		target.SetDefault("log", LogFunc(u.Log))
		return target
	}
}

// SerializableMixin returns the mixin adding a serialize member bound to the
// target record.
func (u *Utils) SerializableMixin() Mixin {
	return func(target *Record, _ ...any) any {
		self := target
		target.SetDefault("serialize", SerializeFunc(func(opts ...SerializeOption) (string, error) {
			return u.Serialize(self, opts...)
		}))
		return target
	}
}

// Loggable ensures rec has error, info and log members, adding only the
// missing ones. A nil rec is replaced by a new record.
func (u *Utils) Loggable(rec *Record) *Record {
	return Mix(u.LoggableMixin(), rec).(*Record)
}

// Serializable ensures rec has a serialize member bound to rec. A nil rec
// is replaced by a new record.
func (u *Utils) Serializable(rec *Record) *Record {
	return Mix(u.SerializableMixin(), rec).(*Record)
}
