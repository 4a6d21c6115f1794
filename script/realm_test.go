package script_test

import (
	"testing"

	"github.com/agentstation/scriptutils"
	"github.com/agentstation/scriptutils/internal/testutil"
	"github.com/agentstation/scriptutils/script"
)

func TestEvalKinds(t *testing.T) {
	r := script.NewRealm("test")

	tests := []struct {
		src  string
		kind scriptutils.Kind
	}{
		{"return nil", scriptutils.KindNull},
		{"return true", scriptutils.KindBoolean},
		{"return 1.5", scriptutils.KindNumber},
		{"return 'x'", scriptutils.KindString},
		{"return {1, 2}", scriptutils.KindArray},
		{"return {a = 1}", scriptutils.KindObject},
		{"return function() end", scriptutils.KindFunction},
		{"return print", scriptutils.KindFunction},
		{"return _G", scriptutils.KindGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := r.Eval(tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if got := scriptutils.KindOf(v); got != tt.kind {
				t.Errorf("KindOf(%q) = %v, want %v", tt.src, got, tt.kind)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	a := testutil.NewAssert(t)
	r := script.NewRealm("test")

	_, err := r.Eval("return +")
	a.Error(err)
	a.Contains(err.Error(), "script: load")

	_, err = r.Eval("error('boom')")
	a.Error(err)
	a.Contains(err.Error(), "boom")

	// The realm is still usable after a failure.
	v, err := r.Eval("return 1 + 1")
	a.NoError(err)
	a.Equal(float64(2), v)
}

func TestGlobal(t *testing.T) {
	a := testutil.NewAssert(t)
	r := script.NewRealm("sandbox")

	g := r.Global()
	a.Equal("sandbox", g.Name())
	a.Same(g, r.Global())

	v, err := r.Eval("return _G")
	a.NoError(err)
	a.Same(g, v)

	nested, err := r.Eval("return {env = _G}")
	a.NoError(err)
	a.Same(g, nested.(map[string]any)["env"])

	r.Set("answer", 42)
	got, ok := g.Lookup("answer")
	a.True(ok)
	a.Equal(float64(42), got)

	_, ok = g.Lookup("missing")
	a.False(ok)

	u := scriptutils.New(scriptutils.WithGlobal(g))
	a.True(u.IsWindow(v))
	a.False(scriptutils.New().IsWindow(v))
	a.False(u.IsWindow(script.NewRealm("sandbox").Global()))
}

func TestSetGet(t *testing.T) {
	a := testutil.NewAssert(t)
	r := script.NewRealm("test")
	user := testutil.NewFixtures().SampleUsers()[1]

	r.Set("user", user)
	r.Set("tags", []any{"a", "b"})

	v, err := r.Eval("return user.name .. ':' .. #tags")
	a.NoError(err)
	a.Equal("Bob:2", v)

	a.Equal(map[string]any{
		"id":    "2",
		"name":  "Bob",
		"email": "bob@example.com",
		"age":   float64(25),
	}, r.Get("user"))
	a.Nil(r.Get("missing"))

	r.Set("user", nil)
	a.Nil(r.Get("user"))
}

func TestFunction(t *testing.T) {
	a := testutil.NewAssert(t)
	r := script.NewRealm("test")

	v, err := r.Eval("return function(x, y) return x * (y or 2) end")
	a.NoError(err)
	fn, ok := v.(*script.Function)
	a.True(ok)

	got, err := fn.Call(21)
	a.NoError(err)
	a.Equal(float64(42), got)

	got, err = fn.Call(2, 5)
	a.NoError(err)
	a.Equal(float64(10), got)

	_, err = fn.Call("x")
	a.Error(err)
	a.Contains(err.Error(), "script: call")

	// Functions survive the trip back into the realm.
	r.Set("double", fn)
	got, err = r.Eval("return double(4)")
	a.NoError(err)
	a.Equal(float64(8), got)

	// A function from another realm does not cross.
	other := script.NewRealm("other")
	other.Set("double", fn)
	a.Nil(other.Get("double"))
}

func TestInstall(t *testing.T) {
	capture := testutil.NewCaptureConsole()
	r := script.NewRealm("test")
	u := scriptutils.New(
		scriptutils.WithConsole(capture.Console()),
		scriptutils.WithGlobal(r.Global()),
	)
	r.Install(u)

	t.Run("predicates", func(t *testing.T) {
		tests := []struct {
			src  string
			want bool
		}{
			{"return ScriptUtils.isBlank('  ')", true},
			{"return ScriptUtils.isNotBlank('  ')", false},
			{"return ScriptUtils.isUndefined()", true},
			{"return ScriptUtils.isUndefined(nil)", false},
			{"return ScriptUtils.isNull(nil)", true},
			{"return ScriptUtils.isNothing()", true},
			{"return ScriptUtils.isSomething(false)", true},
			{"return ScriptUtils.isArray({1, 2})", true},
			{"return ScriptUtils.isPlainObject({a = 1})", true},
			{"return ScriptUtils.isPlainObject({1})", false},
			{"return ScriptUtils.isArray({[2^40] = true})", false},
			{"return ScriptUtils.isArray({[1.5] = true})", false},
			{"return ScriptUtils.isFunction(print)", true},
			{"return ScriptUtils.isString('x')", true},
			{"return ScriptUtils.isNumber('42')", true},
			{"return ScriptUtils.isNumber('4x')", false},
			{"return ScriptUtils.isBoolean(true)", true},
			{"return ScriptUtils.isGlobal(_G)", true},
			{"return ScriptUtils.isWindow(_G)", true},
			{"return ScriptUtils.isWindow({})", false},
			{"return ScriptUtils.isDate(1)", false},
			{"return ScriptUtils.isRegex('a+')", false},
			{"return ScriptUtils.isError('boom')", false},
		}
		for _, tt := range tests {
			v, err := r.Eval(tt.src)
			if err != nil {
				t.Fatalf("Eval(%q) error = %v", tt.src, err)
			}
			if v != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.src, v, tt.want)
			}
		}
	})

	t.Run("logging", func(t *testing.T) {
		a := testutil.NewAssert(t)
		capture.Reset()

		_, err := r.Eval(`
			ScriptUtils.error("bad", 1)
			ScriptUtils.info("fyi")
			ScriptUtils.log("trace")
			print("printed")
		`)
		a.NoError(err)
		a.Equal([]string{"error: bad1", "info: fyi", "log: trace", "log: printed"}, capture.Lines())
		a.Equal([]any{"bad", float64(1)}, capture.Calls()[0].Args)
	})

	t.Run("serialize", func(t *testing.T) {
		a := testutil.NewAssert(t)

		v, err := r.Eval("return ScriptUtils.serialize({b = 1, a = {true}})")
		a.NoError(err)
		a.Equal(`{"a":[true],"b":1}`, v)

		v, err = r.Eval("return ScriptUtils.serialize({1}, 2)")
		a.NoError(err)
		a.Equal("[\n  1\n]", v)

		v, err = r.Eval("return ScriptUtils.serialize({1}, '\\t')")
		a.NoError(err)
		a.Equal("[\n\t1\n]", v)

		v, err = r.Eval("local ok, err = pcall(ScriptUtils.serialize) return err")
		a.NoError(err)
		a.Contains(v.(string), "undefined value")

		v, err = r.Eval("return ScriptUtils.serialize({f = function() end, x = 1, list = {print}})")
		a.NoError(err)
		a.Equal(`{"list":[null],"x":1}`, v)
	})

	t.Run("serialize cycle", func(t *testing.T) {
		a := testutil.NewAssert(t)

		v, err := r.Eval("local t = {} t.self = t local ok, err = pcall(ScriptUtils.serialize, t) return {ok, err}")
		a.NoError(err)
		res := v.([]any)
		a.Equal(false, res[0])
		a.Contains(res[1].(string), "cycle")

		v, err = r.Eval("local t = {} t[1] = t local ok = pcall(ScriptUtils.serialize, t) return ok")
		a.NoError(err)
		a.Equal(false, v)
	})

	t.Run("log cycle", func(t *testing.T) {
		a := testutil.NewAssert(t)
		capture.Reset()

		_, err := r.Eval("local t = {} t.self = t ScriptUtils.log(t)")
		a.NoError(err)
		a.Equal([]any{map[string]any{"self": "[Circular]"}}, capture.Calls()[0].Args)
	})

	t.Run("deserialize", func(t *testing.T) {
		a := testutil.NewAssert(t)

		v, err := r.Eval(`return ScriptUtils.deserialize('{"a":[1,2]}').a[2]`)
		a.NoError(err)
		a.Equal(float64(2), v)

		v, err = r.Eval(`local ok = pcall(ScriptUtils.deserialize, '{') return ok`)
		a.NoError(err)
		a.Equal(false, v)
	})

	t.Run("kindOf", func(t *testing.T) {
		a := testutil.NewAssert(t)
		for src, want := range map[string]string{
			"return ScriptUtils.kindOf()":        "Undefined",
			"return ScriptUtils.kindOf(nil)":     "Null",
			"return ScriptUtils.kindOf(_G)":      "Global",
			"return ScriptUtils.kindOf('s')":     "String",
			"return ScriptUtils.kindOf(print)":   "Function",
			"return ScriptUtils.kindOf({x = 1})": "Object",
			"return ScriptUtils.kindOf({1, 2})":  "Array",
			"return ScriptUtils.kindOf(1 / 0)":   "Number",
		} {
			v, err := r.Eval(src)
			a.NoError(err)
			a.Equal(want, v, src)
		}
	})
}
