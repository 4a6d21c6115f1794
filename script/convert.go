package script

import (
	"encoding/json"
	"math"

	"github.com/Shopify/go-lua"

	"github.com/agentstation/scriptutils"
)

// setupSandbox loads the safe standard libraries and removes file and code
// loading functions.
func setupSandbox(l *lua.State) {
	lua.Require(l, "_G", lua.BaseOpen, true)
	l.Pop(1)
	lua.Require(l, "string", lua.StringOpen, true)
	l.Pop(1)
	lua.Require(l, "table", lua.TableOpen, true)
	l.Pop(1)
	lua.Require(l, "math", lua.MathOpen, true)
	l.Pop(1)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		l.PushNil()
		l.SetGlobal(name)
	}
}

// push converts a Go value to Lua and pushes it.
func (r *Realm) push(v any) {
	l := r.l
	switch val := v.(type) {
	case nil:
		l.PushNil()
	case bool:
		l.PushBoolean(val)
	case string:
		l.PushString(val)
	case *Function:
		if val.realm != r {
			l.PushNil()
			return
		}
		l.Global(refsTable)
		l.PushInteger(val.ref)
		l.Table(-2)
		l.Remove(-2)
	case *scriptutils.Global:
		if val != r.global {
			l.PushNil()
			return
		}
		l.PushGlobalTable()
	case []any:
		l.NewTable()
		for i, item := range val {
			l.PushInteger(i + 1)
			r.push(item)
			l.SetTable(-3)
		}
	case map[string]any:
		l.NewTable()
		for k, item := range val {
			l.PushString(k)
			r.push(item)
			l.SetTable(-3)
		}
	default:
		switch {
		case scriptutils.IsUndefined(v) || scriptutils.IsNull(v):
			l.PushNil()
		case scriptutils.KindOf(v) == scriptutils.KindNumber:
			l.PushNumber(scriptutils.ToNumber(v))
		default:
			// Anything else crosses as its JSON form.
			if data, err := json.Marshal(val); err == nil {
				var generic any
				if json.Unmarshal(data, &generic) == nil {
					r.push(generic)
					return
				}
			}
			l.PushNil()
		}
	}
}

// conversion tracks the tables met while pulling one value.
type conversion struct {
	seen map[any]any
	path map[any]bool
	// cut replaces a table that contains itself with circular.
	cut bool
}

// circular stands in for a table inside itself when cycles are cut.
const circular = "[Circular]"

// pull converts the Lua value at idx to Go. A table seen twice converts to
// the same Go value, so cyclic tables become cyclic maps and slices.
func (r *Realm) pull(idx int) any {
	return r.pullValue(idx, &conversion{seen: make(map[any]any), path: make(map[any]bool)})
}

// pullPrintable is pull for values headed to a console, which cannot print
// cyclic values.
func (r *Realm) pullPrintable(idx int) any {
	return r.pullValue(idx, &conversion{seen: make(map[any]any), path: make(map[any]bool), cut: true})
}

func (r *Realm) pullValue(idx int, c *conversion) any {
	l := r.l
	if idx < 0 {
		idx = l.Top() + idx + 1
	}

	switch l.TypeOf(idx) {
	case lua.TypeBoolean:
		return l.ToBoolean(idx)
	case lua.TypeNumber:
		n, _ := l.ToNumber(idx)
		return n
	case lua.TypeString:
		s, _ := l.ToString(idx)
		return s
	case lua.TypeFunction:
		return r.hold(idx)
	case lua.TypeTable:
		return r.pullTable(idx, c)
	default:
		return nil
	}
}

func (r *Realm) pullTable(idx int, c *conversion) any {
	l := r.l

	id := l.ToValue(idx)
	if c.cut && c.path[id] {
		return circular
	}
	if v, ok := c.seen[id]; ok {
		return v
	}
	if !l.CheckStack(4) {
		return nil
	}

	l.PushGlobalTable()
	isGlobal := l.RawEqual(-1, idx)
	l.Pop(1)
	if isGlobal {
		return r.global
	}

	c.path[id] = true
	defer delete(c.path, id)

	if n := sequenceLen(l, idx); n > 0 {
		arr := make([]any, n)
		if !c.cut {
			c.seen[id] = arr
		}
		for i := 1; i <= n; i++ {
			l.PushInteger(i)
			l.RawGet(idx)
			arr[i-1] = r.pullValue(-1, c)
			l.Pop(1)
		}
		c.seen[id] = arr
		return arr
	}

	obj := make(map[string]any)
	if !c.cut {
		c.seen[id] = obj
	}
	l.PushNil()
	for l.Next(idx) {
		// ToString on a number key would change the key in place and
		// break Next, so keys are read from a copy.
		l.PushValue(-2)
		key, _ := l.ToString(-1)
		l.Pop(1)
		obj[key] = r.pullValue(-1, c)
		l.Pop(1)
	}
	c.seen[id] = obj
	return obj
}

// sequenceLen returns the array length of the table at idx, or 0 when it
// converts to an object. Every key must be an integer of at least 1, and at
// least half of the slots up to the largest key must be filled.
func sequenceLen(l *lua.State, idx int) int {
	count, maxIndex := 0, 0.0

	l.PushNil()
	for l.Next(idx) {
		n, ok := 0.0, l.TypeOf(-2) == lua.TypeNumber
		if ok {
			n, _ = l.ToNumber(-2)
			ok = n >= 1 && n == math.Trunc(n)
		}
		if !ok {
			l.Pop(2)
			return 0
		}
		count++
		maxIndex = math.Max(maxIndex, n)
		l.Pop(1)
	}

	if count == 0 || maxIndex > float64(2*count) {
		return 0
	}
	return int(maxIndex)
}
