package script

import (
	"github.com/Shopify/go-lua"

	"github.com/agentstation/scriptutils"
)

// Namespace is the global name Install binds.
const Namespace = "ScriptUtils"

var predicates = map[string]func(any) bool{
	"isArray":       scriptutils.IsArray,
	"isBlank":       scriptutils.IsBlank,
	"isBoolean":     scriptutils.IsBoolean,
	"isDate":        scriptutils.IsDate,
	"isError":       scriptutils.IsError,
	"isFunction":    scriptutils.IsFunction,
	"isGlobal":      scriptutils.IsGlobal,
	"isNotBlank":    scriptutils.IsNotBlank,
	"isNotNull":     scriptutils.IsNotNull,
	"isNothing":     scriptutils.IsNothing,
	"isNull":        scriptutils.IsNull,
	"isNumber":      scriptutils.IsNumber,
	"isPlainObject": scriptutils.IsPlainObject,
	"isRegex":       scriptutils.IsRegex,
	"isSomething":   scriptutils.IsSomething,
	"isString":      scriptutils.IsString,
	"isUndefined":   scriptutils.IsUndefined,
}

// Install binds the scriptutils namespace to the realm's global table as
// ScriptUtils, backed by u. The realm's print is redirected to u.Log.
//
// A missing argument reaches the predicates as scriptutils.Undefined and an
// explicit nil as null, so ScriptUtils.isUndefined() is true while
// ScriptUtils.isUndefined(nil) is false.
func (r *Realm) Install(u *scriptutils.Utils) {
	l := r.l
	l.NewTable()

	for name, fn := range predicates {
		r.setFunc(name, r.predicate(fn))
	}
	r.setFunc("isWindow", r.predicate(u.IsWindow))

	r.setFunc("error", r.forward(u.Error))
	r.setFunc("info", r.forward(u.Info))
	r.setFunc("log", r.forward(u.Log))

	r.setFunc("serialize", func(l *lua.State) int {
		var opts []scriptutils.SerializeOption
		switch l.TypeOf(2) {
		case lua.TypeNumber:
			n, _ := l.ToNumber(2)
			opts = append(opts, scriptutils.WithIndent(int(n)))
		case lua.TypeString:
			s, _ := l.ToString(2)
			opts = append(opts, scriptutils.WithIndentString(s))
		}
		text, err := u.Serialize(r.arg(1), opts...)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		l.PushString(text)
		return 1
	})

	r.setFunc("deserialize", func(l *lua.State) int {
		text := lua.CheckString(l, 1)
		v, err := u.Deserialize(text)
		if err != nil {
			lua.Errorf(l, "%s", err.Error())
			return 0
		}
		r.push(v)
		return 1
	})

	r.setFunc("kindOf", func(l *lua.State) int {
		l.PushString(scriptutils.KindOf(r.arg(1)).String())
		return 1
	})

	l.SetGlobal(Namespace)
	l.Register("print", r.forward(u.Log))
}

func (r *Realm) setFunc(name string, fn lua.Function) {
	r.l.PushGoFunction(fn)
	r.l.SetField(-2, name)
}

// arg returns argument n, Undefined when it was not passed.
func (r *Realm) arg(n int) any {
	if n > r.l.Top() {
		return scriptutils.Undefined
	}
	return r.pull(n)
}

func (r *Realm) predicate(fn func(any) bool) lua.Function {
	return func(l *lua.State) int {
		l.PushBoolean(fn(r.arg(1)))
		return 1
	}
}

func (r *Realm) forward(fn func(args ...any)) lua.Function {
	return func(l *lua.State) int {
		n := l.Top()
		args := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			args = append(args, r.pullPrintable(i))
		}
		fn(args...)
		return 0
	}
}
