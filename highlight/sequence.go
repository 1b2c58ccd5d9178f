package highlight

import (
	"reflect"
	"strings"

	"github.com/ogzhanolguncu/shouldbe/inspect"
)

// Sequence aligns two slices or arrays by position and marks the elements of
// actual that differ from expected.
type Sequence struct {
	config Config
}

func NewSequence(config Config) *Sequence {
	return &Sequence{config: config.withDefaults()}
}

// CanProcess accepts non-nil slices or arrays sharing an element type.
// Strings and maps are rejected.
func (s *Sequence) CanProcess(expected, actual any) bool {
	if inspect.IsNilValue(expected) || inspect.IsNilValue(actual) {
		return false
	}

	et, at := reflect.TypeOf(expected), reflect.TypeOf(actual)
	if !isList(et) || !isList(at) {
		return false
	}
	return et.Elem() == at.Elem()
}

func isList(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

func (s *Sequence) Highlight(expected, actual any) string {
	if !s.CanProcess(expected, actual) {
		return s.config.Inspector.Inspect(actual)
	}

	exp, act := reflect.ValueOf(expected), reflect.ValueOf(actual)
	longest := max(exp.Len(), act.Len())

	var b strings.Builder
	b.WriteString("\n[\n  ")
	for i := 0; i < longest; i++ {
		if i >= s.config.MaxElements {
			b.WriteString(inspect.Ellipsis)
			break
		}

		b.WriteString(s.element(exp, act, i))
		if i < longest-1 {
			b.WriteString(",\n  ")
		}
	}
	b.WriteString("\n]\n")
	return b.String()
}

func (s *Sequence) element(exp, act reflect.Value, i int) string {
	if i >= act.Len() {
		return s.config.Marker
	}

	a := act.Index(i).Interface()
	rendered := s.config.Inspector.Inspect(a)
	if i >= exp.Len() {
		return s.mark(rendered)
	}
	if s.config.Equal(exp.Index(i).Interface(), a) {
		return rendered
	}
	return s.mark(rendered)
}

func (s *Sequence) mark(item string) string {
	return s.config.Marker + item + s.config.Marker
}
