package inspect_test

import (
	"testing"

	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/stretchr/testify/require"
)

func TestCamelCaseToSpaced(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Be", "be"},
		{"ContainKey", "contain key"},
		{"ContainKeyAndValue", "contain key and value"},
		{"BeGreaterThanOrEqualTo", "be greater than or equal to"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, inspect.CamelCaseToSpaced(tt.in))
		})
	}
}

func TestQuotify(t *testing.T) {
	require.Equal(t, `say "hi"`, inspect.Quotify("say 'hi'"))
}

func TestStripWhitespace(t *testing.T) {
	require.Equal(t, "abc", inspect.StripWhitespace(" a b\n\t c "))
}

func TestDelimitWith(t *testing.T) {
	require.Equal(t, "1,,x", inspect.DelimitWith([]any{1, nil, "x"}, ","))
	require.Equal(t, "", inspect.DelimitWith([]string{}, ", "))
}
