/*
Package scriptutils provides small helpers for working with loosely typed
values: type predicates, log forwarding, JSON encoding and record mixins.

Key features:
  - Predicates that never panic, for any input including nil and Undefined
  - Classification by a value's own category (see KindOf), so values from
    another execution realm classify like native ones
  - Environment passed in explicitly: global context, console and codec
  - Non-destructive mixins over mutable records

Predicates:

	scriptutils.IsBlank("   ")        // true
	scriptutils.IsNumber("42")        // true, a numeric-validity check
	scriptutils.IsNothing(scriptutils.Undefined) // true

Configured instances:

	u := scriptutils.New(
		scriptutils.WithConsole(scriptutils.LogrusConsole(logger)),
		scriptutils.WithCodec(codec.OJG{}),
	)
	text, err := u.Serialize(map[string]any{"id": 1}, scriptutils.WithIndent(2))

The package-level helpers (Serialize, Log, IsWindow, ...) use a default
instance that SetDefaults reconfigures.

Mixins:

	rec := u.Serializable(u.Loggable(nil))
	rec.Set("name", "report")
	out, err := rec.Invoke("serialize") // {"name":"report"}
*/
package scriptutils
