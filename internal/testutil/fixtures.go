package testutil

import (
	"errors"
	"math"
	"regexp"
	"time"

	"github.com/agentstation/scriptutils"
)

// Fixtures provides sample values for tests.
type Fixtures struct{}

// NewFixtures creates a new fixtures helper.
func NewFixtures() *Fixtures {
	return &Fixtures{}
}

// User represents a test user.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// Sample is a value with the kind KindOf should report for it.
type Sample struct {
	Name  string
	Value any
	Kind  scriptutils.Kind
}

// Samples returns one or more values of every kind.
func (f *Fixtures) Samples() []Sample {
	var nilMap map[string]any
	var nilUser *User
	n := 7

	return []Sample{
		{"undefined", scriptutils.Undefined, scriptutils.KindUndefined},
		{"nil", nil, scriptutils.KindNull},
		{"nil map", nilMap, scriptutils.KindNull},
		{"nil pointer", nilUser, scriptutils.KindNull},
		{"slice", []any{1, "a"}, scriptutils.KindArray},
		{"array", [2]int{1, 2}, scriptutils.KindArray},
		{"empty slice", []string{}, scriptutils.KindArray},
		{"true", true, scriptutils.KindBoolean},
		{"false", false, scriptutils.KindBoolean},
		{"time", time.Date(2014, 1, 2, 3, 4, 5, 0, time.UTC), scriptutils.KindDate},
		{"time pointer", &time.Time{}, scriptutils.KindDate},
		{"error", errors.New("boom"), scriptutils.KindError},
		{"func", func() {}, scriptutils.KindFunction},
		{"predicate", scriptutils.Predicate(func(...any) bool { return true }), scriptutils.KindFunction},
		{"global", scriptutils.NewGlobal("test", nil), scriptutils.KindGlobal},
		{"int", 42, scriptutils.KindNumber},
		{"uint8", uint8(1), scriptutils.KindNumber},
		{"float", 3.5, scriptutils.KindNumber},
		{"NaN", math.NaN(), scriptutils.KindNumber},
		{"int pointer", &n, scriptutils.KindNumber},
		{"map", map[string]any{"a": 1}, scriptutils.KindObject},
		{"struct", User{ID: "1"}, scriptutils.KindObject},
		{"struct pointer", &User{ID: "1"}, scriptutils.KindObject},
		{"record", scriptutils.NewRecord(), scriptutils.KindObject},
		{"regexp", regexp.MustCompile(`^a+$`), scriptutils.KindRegex},
		{"string", "hello", scriptutils.KindString},
		{"empty string", "", scriptutils.KindString},
		{"channel", make(chan int), scriptutils.KindOther},
		{"complex", complex(1, 2), scriptutils.KindOther},
	}
}

// SampleUsers returns sample user data.
func (f *Fixtures) SampleUsers() []User {
	return []User{
		{ID: "1", Name: "Alice", Email: "alice@example.com", Age: 30},
		{ID: "2", Name: "Bob", Email: "bob@example.com", Age: 25},
		{ID: "3", Name: "Charlie", Email: "charlie@example.com", Age: 35},
	}
}

// PlainValues returns JSON-representable values in the generic form
// encoding/json decodes to.
func (f *Fixtures) PlainValues() []any {
	return []any{
		nil,
		true,
		false,
		float64(0),
		float64(-12.5),
		"",
		"hello \"world\" <&>",
		[]any{},
		[]any{float64(1), "two", nil, true},
		map[string]any{},
		map[string]any{
			"name":  "report",
			"tags":  []any{"a", "b"},
			"owner": map[string]any{"id": float64(7), "active": true},
		},
	}
}
