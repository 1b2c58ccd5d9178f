package highlight

import (
	"reflect"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Text renders a unified line diff between two multi-line strings.
type Text struct {
	config Config
}

func NewText(config Config) *Text {
	return &Text{config: config.withDefaults()}
}

func (t *Text) CanProcess(expected, actual any) bool {
	e, ok := asString(expected)
	if !ok {
		return false
	}
	a, ok := asString(actual)
	if !ok {
		return false
	}
	return strings.Contains(e, "\n") || strings.Contains(a, "\n")
}

func (t *Text) Highlight(expected, actual any) string {
	e, _ := asString(expected)
	a, _ := asString(actual)

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(e),
		B:        difflib.SplitLines(a),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  t.config.TextContext,
	})
	if err != nil {
		return t.config.Inspector.Inspect(actual)
	}
	return "\n" + diff
}

// asString accepts any string kind, named string types included.
func asString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
