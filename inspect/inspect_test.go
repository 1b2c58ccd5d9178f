package inspect_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Direction int

const (
	North Direction = iota
	East
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	}
	return "Unknown"
}

type point struct {
	X int
	Y int
}

func TestKindOf(t *testing.T) {
	var nilPtr *int
	var nilSlice []int
	var nilMap map[string]int
	var nilErr error

	tests := []struct {
		name  string
		value any
		want  inspect.Kind
	}{
		{"untyped nil", nil, inspect.KindNull},
		{"nil error", nilErr, inspect.KindNull},
		{"nil pointer", nilPtr, inspect.KindNull},
		{"nil slice", nilSlice, inspect.KindNull},
		{"nil map", nilMap, inspect.KindNull},
		{"string", "text", inspect.KindText},
		{"bool", false, inspect.KindBool},
		{"empty slice", []int{}, inspect.KindSequence},
		{"array", [2]string{"a", "b"}, inspect.KindSequence},
		{"map", map[int]int{1: 1}, inspect.KindSequence},
		{"enum", East, inspect.KindEnum},
		{"plain int", 42, inspect.KindOther},
		{"struct", point{1, 2}, inspect.KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inspect.KindOf(tt.value))
		})
	}
}

func TestInspect(t *testing.T) {
	var nilPtr *point

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "null"},
		{"nil pointer", nilPtr, "null"},
		{"string is quoted", "Cheese", `"Cheese"`},
		{"string is not escaped", `say "hi"`, `"say "hi""`},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"ints", []int{1, 2, 3}, "[1, 2, 3]"},
		{"strings", []string{"a", "b"}, `["a", "b"]`},
		{"empty", []int{}, "[]"},
		{"nested", [][]int{{1}, {2, 3}}, "[[1], [2, 3]]"},
		{"nil element", []any{nil, 1}, "[null, 1]"},
		{"map sorted by key", map[string]int{"b": 2, "a": 1}, `["a": 1, "b": 2]`},
		{"enum", North, "Direction.North"},
		{"enum in slice", []Direction{North, East}, "[Direction.North, Direction.East]"},
		{"error", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inspect.Inspect(tt.value))
		})
	}
}

func TestInspectStruct(t *testing.T) {
	got := inspect.Inspect(point{X: 1, Y: 2})
	assert.Contains(t, got, "X:1")
	assert.Contains(t, got, "Y:2")
}

func TestInspectMultiline(t *testing.T) {
	values := make([]int, 20)
	for i := range values {
		values[i] = i
	}

	got := inspect.Inspect(values)
	require.True(t, strings.HasPrefix(got, "\n[\n  0,\n  1,\n  2"), got)
	require.True(t, strings.HasSuffix(got, "18,\n  19\n]\n"), got)

	short := inspect.New(inspect.Config{MultilineThreshold: 1000}).Inspect(values)
	require.False(t, strings.Contains(short, "\n"))
}

func TestInspectThresholdBoundary(t *testing.T) {
	// "[" + 28 characters + "]" is exactly 30 characters long.
	exact := strings.Repeat("x", 26)
	require.Equal(t, `["`+exact+`"]`, inspect.Inspect([]string{exact}))

	over := strings.Repeat("x", 27)
	require.Equal(t, "\n[\n  \""+over+"\"\n]\n", inspect.Inspect([]string{over}))
}

func TestInspectSelfReference(t *testing.T) {
	loop := []any{1, nil}
	loop[1] = loop

	in := inspect.New(inspect.Config{MaxDepth: 3})
	got := in.Inspect(loop)
	require.Contains(t, got, inspect.Ellipsis)
}

func TestInspectWideCycle(t *testing.T) {
	loop := make([]any, 4)
	for i := range loop {
		loop[i] = loop
	}
	require.Equal(t, "[..., ..., ..., ...]", inspect.Inspect(loop))

	m := map[string]any{}
	m["self"] = m
	require.Equal(t, "[\"self\": ...]", inspect.Inspect(m))
}

func TestInspectSharedSequencesAreNotCycles(t *testing.T) {
	shared := []int{1, 2}
	require.Equal(t, "[[1, 2], [1, 2]]", inspect.Inspect([][]int{shared, shared}))
}

func TestInspectIsIdempotent(t *testing.T) {
	value := map[string][]int{
		"one":   {1},
		"two":   {2, 2},
		"three": {3, 3, 3},
		"four":  {4, 4, 4, 4},
	}

	first := inspect.Inspect(value)
	for range 10 {
		require.Equal(t, first, inspect.Inspect(value))
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := inspect.New(inspect.Config{}).Config()
	require.Equal(t, inspect.DefaultMultilineThreshold, cfg.MultilineThreshold)
	require.Equal(t, inspect.DefaultMaxDepth, cfg.MaxDepth)
}
