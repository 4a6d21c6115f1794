package scriptutils_test

import (
	"testing"

	"github.com/agentstation/scriptutils"
	"github.com/agentstation/scriptutils/internal/testutil"
)

type selfKinded struct{}

func (selfKinded) Kind() scriptutils.Kind { return scriptutils.KindDate }

func TestKindOf(t *testing.T) {
	for _, s := range testutil.NewFixtures().Samples() {
		t.Run(s.Name, func(t *testing.T) {
			if got := scriptutils.KindOf(s.Value); got != s.Kind {
				t.Errorf("KindOf(%v) = %v, want %v", s.Value, got, s.Kind)
			}
		})
	}
}

func TestKindOfKinded(t *testing.T) {
	if got := scriptutils.KindOf(selfKinded{}); got != scriptutils.KindDate {
		t.Errorf("KindOf(selfKinded) = %v, want Date", got)
	}
	if !scriptutils.IsDate(selfKinded{}) {
		t.Error("IsDate(selfKinded) = false, want true")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind scriptutils.Kind
		want string
	}{
		{scriptutils.KindArray, "Array"},
		{scriptutils.KindRegex, "Regex"},
		{scriptutils.KindUndefined, "Undefined"},
		{scriptutils.Kind(99), "Other"},
		{scriptutils.Kind(-1), "Other"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}
