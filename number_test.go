package scriptutils_test

import (
	"math"
	"testing"
	"time"

	"github.com/agentstation/scriptutils"
)

func TestToNumber(t *testing.T) {
	when := time.UnixMilli(1_400_000_000_000)

	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"nil", nil, 0},
		{"true", true, 1},
		{"false", false, 0},
		{"int", -3, -3},
		{"uint", uint16(9), 9},
		{"float32", float32(0.5), 0.5},
		{"empty string", "", 0},
		{"blank string", "  \n", 0},
		{"decimal", "12.5", 12.5},
		{"leading dot", ".5", 0.5},
		{"trailing dot", "5.", 5},
		{"signed exponent", "-1.5e2", -150},
		{"hex", "0xff", 255},
		{"octal", "0o17", 15},
		{"binary", "0b101", 5},
		{"infinity", "Infinity", math.Inf(1)},
		{"negative infinity", "-Infinity", math.Inf(-1)},
		{"overflow", "1e400", math.Inf(1)},
		{"date", when, 1_400_000_000_000},
		{"date pointer", &when, 1_400_000_000_000},
		{"empty array", []any{}, 0},
		{"single number", []int{4}, 4},
		{"single string", []any{" 8 "}, 8},
		{"single nil", []any{nil}, 0},
		{"nil slice", []int(nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scriptutils.ToNumber(tt.value); got != tt.want {
				t.Errorf("ToNumber(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestToNumberNaN(t *testing.T) {
	values := []any{
		scriptutils.Undefined,
		"abc",
		"12px",
		"inf",
		"0x",
		"1_000",
		"--1",
		[]any{1, 2},
		map[string]any{"a": 1},
		struct{}{},
		func() {},
		make(chan int),
		scriptutils.NewRecord(),
		stringer{"x"},
	}

	for _, v := range values {
		if got := scriptutils.ToNumber(v); !math.IsNaN(got) {
			t.Errorf("ToNumber(%#v) = %v, want NaN", v, got)
		}
	}
}

func TestToNumberStringer(t *testing.T) {
	if got := scriptutils.ToNumber(stringer{"42"}); got != 42 {
		t.Errorf("ToNumber(stringer 42) = %v, want 42", got)
	}
}
