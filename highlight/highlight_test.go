package highlight_test

import (
	"strings"
	"testing"

	"github.com/ogzhanolguncu/shouldbe/highlight"
	"github.com/stretchr/testify/require"
)

func TestSequenceCanProcess(t *testing.T) {
	var nilInts []int

	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"same slice type", []int{1}, []int{2}, true},
		{"slice and array", []int{1}, [2]int{1, 2}, true},
		{"nil expected", nil, []int{1}, false},
		{"nil slice actual", []int{1}, nilInts, false},
		{"strings", "abc", "abd", false},
		{"maps", map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		{"element types differ", []int{1}, []int64{1}, false},
		{"scalar", 1, 2, false},
	}

	s := highlight.NewSequence(highlight.Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, s.CanProcess(tt.expected, tt.actual))
		})
	}
}

func TestSequenceHighlight(t *testing.T) {
	tests := []struct {
		name     string
		expected []int
		actual   []int
		want     string
	}{
		{
			name:     "first element differs",
			expected: []int{2, 2, 3},
			actual:   []int{1, 2, 3},
			want:     "\n[\n  *1*,\n  2,\n  3\n]\n",
		},
		{
			name:     "all equal",
			expected: []int{1, 2, 3},
			actual:   []int{1, 2, 3},
			want:     "\n[\n  1,\n  2,\n  3\n]\n",
		},
		{
			name:     "actual longer",
			expected: []int{1},
			actual:   []int{1, 2, 3},
			want:     "\n[\n  1,\n  *2*,\n  *3*\n]\n",
		},
		{
			name:     "actual shorter",
			expected: []int{1, 2, 3},
			actual:   []int{1},
			want:     "\n[\n  1,\n  *,\n  *\n]\n",
		},
		{
			name:     "both empty",
			expected: []int{},
			actual:   []int{},
			want:     "\n[\n  \n]\n",
		},
	}

	s := highlight.NewSequence(highlight.Config{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, s.Highlight(tt.expected, tt.actual))
		})
	}
}

func TestSequenceHighlightStrings(t *testing.T) {
	s := highlight.NewSequence(highlight.Config{})
	got := s.Highlight([]string{"a", "b"}, []string{"a", "c"})
	require.Equal(t, "\n[\n  \"a\",\n  *\"c\"*\n]\n", got)
}

func TestSequenceTruncates(t *testing.T) {
	expected := make([]int, 1500)
	actual := make([]int, 1500)
	for i := range actual {
		actual[i] = i
	}

	got := highlight.NewSequence(highlight.Config{}).Highlight(expected, actual)
	require.True(t, strings.HasSuffix(got, ",\n  ...\n]\n"))
	require.Equal(t, highlight.DefaultMaxElements, strings.Count(got, ",\n  "))
	require.NotContains(t, got, "1000")

	small := highlight.NewSequence(highlight.Config{MaxElements: 2}).Highlight(expected, actual)
	require.Equal(t, "\n[\n  0,\n  *1*,\n  ...\n]\n", small)
}

func TestSequenceCustomMarkerAndEquality(t *testing.T) {
	s := highlight.NewSequence(highlight.Config{
		Marker: "!",
		Equal:  func(expected, actual any) bool { return true },
	})
	require.Equal(t, "\n[\n  1,\n  !2!\n]\n", s.Highlight([]int{5}, []int{1, 2}))
}

func TestSequenceEqualityPanicPropagates(t *testing.T) {
	s := highlight.NewSequence(highlight.Config{
		Equal: func(expected, actual any) bool { panic("broken equality") },
	})
	require.PanicsWithValue(t, "broken equality", func() {
		s.Highlight([]int{1}, []int{1})
	})
}

func TestTextHighlight(t *testing.T) {
	h := highlight.NewText(highlight.Config{})

	require.False(t, h.CanProcess("a", "b"))
	require.False(t, h.CanProcess([]string{"a\n"}, "a\n"))
	require.True(t, h.CanProcess("a\nb\n", "a\nc\n"))

	got := h.Highlight("a\nb\n", "a\nc\n")
	require.Contains(t, got, "--- expected")
	require.Contains(t, got, "+++ actual")
	require.Contains(t, got, "-b\n")
	require.Contains(t, got, "+c\n")
}

func TestRegistry(t *testing.T) {
	r := highlight.NewRegistry(highlight.Config{})

	h, ok := r.For([]int{1}, []int{2})
	require.True(t, ok)
	require.IsType(t, &highlight.Sequence{}, h)

	h, ok = r.For("x\ny", "x\nz")
	require.True(t, ok)
	require.IsType(t, &highlight.Text{}, h)

	require.False(t, r.CanHighlight(1, 2))
	require.Equal(t, "2", r.Highlight(1, 2))
}

type everything struct{}

func (everything) CanProcess(expected, actual any) bool  { return true }
func (everything) Highlight(expected, actual any) string { return "custom" }

func TestRegistryRegister(t *testing.T) {
	r := highlight.NewRegistry(highlight.Config{})
	r.Register(everything{})

	require.Equal(t, "custom", r.Highlight(1, 2))
	require.Equal(t, "\n[\n  *2*\n]\n", r.Highlight([]int{1}, []int{2}))
}
