package scriptutils_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/agentstation/scriptutils"
	"github.com/agentstation/scriptutils/codec"
	"github.com/agentstation/scriptutils/internal/testutil"
)

func TestRecordMembers(t *testing.T) {
	a := testutil.NewAssert(t)
	rec := scriptutils.NewRecord()

	a.Equal(0, rec.Len())
	a.True(scriptutils.IsUndefined(rec.Get("missing")))
	_, ok := rec.Lookup("missing")
	a.False(ok)

	rec.Set("b", 1)
	rec.Set("a", nil)
	rec.Set("c", "x")
	rec.Set("b", 2)
	a.Equal([]string{"b", "a", "c"}, rec.Names())
	a.Equal(2, rec.Get("b"))

	v, ok := rec.Lookup("a")
	a.True(ok)
	a.Nil(v)
	a.True(scriptutils.IsNull(rec.Get("a")))

	a.False(rec.SetDefault("c", "y"))
	a.Equal("x", rec.Get("c"))
	a.True(rec.SetDefault("d", "y"))

	rec.Delete("a")
	rec.Delete("missing")
	a.Equal([]string{"b", "c", "d"}, rec.Names())
	a.False(rec.Has("a"))

	names := rec.Names()
	names[0] = "changed"
	a.Equal("b", rec.Names()[0])
}

func TestRecordInvoke(t *testing.T) {
	errBoom := errors.New("boom")

	rec := scriptutils.NewRecord()
	rec.Set("add", func(x, y int) int { return x + y })
	rec.Set("isNil", func(p *int) bool { return p == nil })
	rec.Set("fail", func() (string, error) { return "", errBoom })
	rec.Set("ok", func() (string, error) { return "fine", nil })
	rec.Set("nothing", func() {})
	rec.Set("count", func(args ...any) any { return len(args) })
	rec.Set("variadic", func(xs ...int) int { return len(xs) })
	rec.Set("number", 5)
	rec.Set("nilFunc", (func())(nil))

	t.Run("reflected call", func(t *testing.T) {
		a := testutil.NewAssert(t)

		got, err := rec.Invoke("add", 2, 3)
		a.NoError(err)
		a.Equal(5, got)

		got, err = rec.Invoke("isNil", nil)
		a.NoError(err)
		a.Equal(true, got)

		got, err = rec.Invoke("ok")
		a.NoError(err)
		a.Equal("fine", got)

		got, err = rec.Invoke("nothing")
		a.NoError(err)
		a.Nil(got)
	})

	t.Run("generic call", func(t *testing.T) {
		a := testutil.NewAssert(t)
		got, err := rec.Invoke("count", 1, "a", nil)
		a.NoError(err)
		a.Equal(3, got)
	})

	t.Run("error result", func(t *testing.T) {
		a := testutil.NewAssert(t)
		_, err := rec.Invoke("fail")
		a.ErrorIs(err, errBoom)
	})

	t.Run("bad arguments", func(t *testing.T) {
		a := testutil.NewAssert(t)

		_, err := rec.Invoke("add", 1)
		a.Error(err)
		a.Contains(err.Error(), "want 2 arguments, got 1")

		_, err = rec.Invoke("add", 1, "2")
		a.Error(err)
		a.Contains(err.Error(), "argument 1 is string")

		_, err = rec.Invoke("variadic", 1, 2)
		a.Error(err)
	})

	t.Run("not callable", func(t *testing.T) {
		a := testutil.NewAssert(t)

		_, err := rec.Invoke("number")
		a.ErrorIs(err, scriptutils.ErrNotCallable)

		_, err = rec.Invoke("nilFunc")
		a.ErrorIs(err, scriptutils.ErrNotCallable)

		_, err = rec.Invoke("missing")
		a.ErrorIs(err, scriptutils.ErrNoMember)
		a.Contains(err.Error(), "missing")
	})
}

func TestRecordMarshalJSON(t *testing.T) {
	a := testutil.NewAssert(t)

	inner := scriptutils.NewRecord()
	inner.Set("ok", true)

	rec := scriptutils.NewRecord()
	rec.Set("z", 1)
	rec.Set("a", "two")
	rec.Set("fn", func() {})
	rec.Set("gone", scriptutils.Undefined)
	rec.Set("inner", inner)
	rec.Set("none", nil)

	data, err := json.Marshal(rec)
	a.NoError(err)
	a.Equal(`{"z":1,"a":"two","inner":{"ok":true},"none":null}`, string(data))

	data, err = json.Marshal(scriptutils.NewRecord())
	a.NoError(err)
	a.Equal(`{}`, string(data))
}

func TestRecordCycle(t *testing.T) {
	a := testutil.NewAssert(t)

	rec := scriptutils.NewRecord()
	rec.Set("name", "loop")
	rec.Set("self", rec)

	_, err := scriptutils.New().Serialize(rec)
	a.ErrorIs(err, scriptutils.ErrCyclicRecord)

	var serr *scriptutils.SerializationError
	a.ErrorAs(err, &serr)

	// The record stays usable once the cycle is broken.
	rec.Delete("self")
	text, err := scriptutils.New().Serialize(rec)
	a.NoError(err)
	a.Equal(`{"name":"loop"}`, text)
}

func TestRecordShared(t *testing.T) {
	a := testutil.NewAssert(t)

	shared := scriptutils.NewRecord()
	shared.Set("v", 1)

	rec := scriptutils.NewRecord()
	rec.Set("first", shared)
	rec.Set("second", shared)

	text, err := scriptutils.New().Serialize(rec)
	a.NoError(err)
	a.Equal(`{"first":{"v":1},"second":{"v":1}}`, text)
}

func TestRecordMarshalYAML(t *testing.T) {
	a := testutil.NewAssert(t)

	rec := scriptutils.Loggable(nil)
	rec.Set("name", "report")

	out, err := codec.YAML{}.Marshal(rec, "")
	a.NoError(err)
	a.Contains(string(out), "name: report")
	a.NotContains(string(out), "log")

	self := scriptutils.NewRecord()
	self.Set("self", self)
	_, err = self.MarshalYAML()
	a.ErrorIs(err, scriptutils.ErrCyclicRecord)
}
