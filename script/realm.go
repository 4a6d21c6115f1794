// Package script runs Lua code in a sandboxed realm and exposes the
// scriptutils namespace to it.
//
// Values crossing from the realm into Go are converted to nil, bool,
// float64, string, []any, map[string]any, *Function, or the realm's
// *scriptutils.Global for the global table. They classify with
// scriptutils.KindOf like values built in Go.
package script

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/agentstation/scriptutils"
)

// refsTable holds the Lua functions handed out as *Function.
const refsTable = "__scriptutils_refs"

// Realm is a sandboxed Lua state. A Realm is not safe for concurrent use.
type Realm struct {
	l       *lua.State
	global  *scriptutils.Global
	nextRef int
}

// NewRealm creates a sandboxed realm named name.
func NewRealm(name string) *Realm {
	l := lua.NewState()
	setupSandbox(l)

	l.NewTable()
	l.SetGlobal(refsTable)

	r := &Realm{l: l}
	r.global = scriptutils.NewGlobal(name, r.lookup)
	return r
}

// Global returns the realm's global scope. The same pointer is returned on
// every call and whenever the realm hands out its global table.
func (r *Realm) Global() *scriptutils.Global {
	return r.global
}

// Eval runs src and returns its first result, or nil when it returns
// nothing.
func (r *Realm) Eval(src string) (any, error) {
	top := r.l.Top()
	defer r.l.SetTop(top)

	if err := lua.LoadString(r.l, src); err != nil {
		return nil, fmt.Errorf("script: load: %w", err)
	}
	if err := r.l.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("script: run: %w", err)
	}
	return r.pull(-1), nil
}

// Set binds a Go value to a global name.
func (r *Realm) Set(name string, v any) {
	r.push(v)
	r.l.SetGlobal(name)
}

// Get returns the value of a global name, nil when unset.
func (r *Realm) Get(name string) any {
	v, _ := r.lookup(name)
	return v
}

func (r *Realm) lookup(key string) (any, bool) {
	r.l.Global(key)
	defer r.l.Pop(1)

	if t := r.l.TypeOf(-1); t == lua.TypeNil || t == lua.TypeNone {
		return nil, false
	}
	return r.pull(-1), true
}

// Function is a Lua function held by its realm.
type Function struct {
	realm *Realm
	ref   int
}

// Kind implements scriptutils.Kinded.
func (f *Function) Kind() scriptutils.Kind {
	return scriptutils.KindFunction
}

// Call invokes the function with args and returns its first result.
func (f *Function) Call(args ...any) (any, error) {
	l := f.realm.l
	top := l.Top()
	defer l.SetTop(top)

	l.Global(refsTable)
	l.PushInteger(f.ref)
	l.Table(-2)
	for _, a := range args {
		f.realm.push(a)
	}
	if err := l.ProtectedCall(len(args), 1, 0); err != nil {
		return nil, fmt.Errorf("script: call: %w", err)
	}
	return f.realm.pull(-1), nil
}

// hold stores the function at idx in the refs table.
func (r *Realm) hold(idx int) *Function {
	r.nextRef++
	ref := r.nextRef

	r.l.PushValue(idx)
	r.l.Global(refsTable)
	r.l.PushInteger(ref)
	r.l.PushValue(-3)
	r.l.SetTable(-3)
	r.l.Pop(2)

	return &Function{realm: r, ref: ref}
}
