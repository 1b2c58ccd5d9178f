// Package inspect renders arbitrary Go values as short, deterministic strings
// for use in test failure messages.
package inspect

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

const (
	DefaultMultilineThreshold = 30
	DefaultMaxDepth           = 16

	// Ellipsis replaces anything the inspector refuses to render in full.
	Ellipsis = "..."
)

type Config struct {
	// Sequences whose single line rendering is longer than this are split
	// one element per line.
	MultilineThreshold int `yaml:"multiline_threshold"`
	// Nesting deeper than this renders as Ellipsis. A slice or map that
	// contains itself renders as Ellipsis where it recurs.
	MaxDepth int `yaml:"max_depth"`
}

func (c Config) withDefaults() Config {
	if c.MultilineThreshold <= 0 {
		c.MultilineThreshold = DefaultMultilineThreshold
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	return c
}

type Inspector struct {
	config Config
	spew   *spew.ConfigState
}

func New(config Config) *Inspector {
	config = config.withDefaults()
	return &Inspector{
		config: config,
		spew: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
			MaxDepth:                config.MaxDepth,
		},
	}
}

var defaultInspector = New(Config{})

// Inspect renders v with the default configuration.
func Inspect(v any) string {
	return defaultInspector.Inspect(v)
}

func (in *Inspector) Config() Config {
	return in.config
}

// Inspect renders v. Rendering the same immutable value twice yields the same
// string: map entries are ordered by their rendered key.
func (in *Inspector) Inspect(v any) string {
	if v == nil {
		return "null"
	}
	return in.render(reflect.ValueOf(v), &path{})
}

// sequenceID identifies a slice or map by its backing storage.
type sequenceID struct {
	ptr  uintptr
	len  int
	kind reflect.Kind
}

// path holds the sequences being rendered from the root down to the current
// element. A sequence met again on its own path renders as Ellipsis.
type path struct {
	depth int
	open  map[sequenceID]struct{}
}

func (p *path) enter(rv reflect.Value) (sequenceID, bool) {
	if rv.Kind() == reflect.Array || rv.Len() == 0 {
		return sequenceID{}, true
	}
	id := sequenceID{ptr: rv.Pointer(), len: rv.Len(), kind: rv.Kind()}
	if _, ok := p.open[id]; ok {
		return id, false
	}
	if p.open == nil {
		p.open = make(map[sequenceID]struct{})
	}
	p.open[id] = struct{}{}
	return id, true
}

func (in *Inspector) render(rv reflect.Value, p *path) string {
	for rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch kindOfValue(rv) {
	case KindNull:
		return "null"
	case KindText:
		return `"` + rv.String() + `"`
	case KindBool:
		if rv.Bool() {
			return "true"
		}
		return "false"
	case KindSequence:
		return in.renderSequence(rv, p)
	case KindEnum:
		return rv.Type().Name() + "." + rv.Interface().(fmt.Stringer).String()
	default:
		return in.renderOther(rv)
	}
}

func (in *Inspector) renderSequence(rv reflect.Value, p *path) string {
	if p.depth >= in.config.MaxDepth {
		return Ellipsis
	}
	id, ok := p.enter(rv)
	if !ok {
		return Ellipsis
	}
	p.depth++
	defer func() {
		p.depth--
		delete(p.open, id)
	}()

	var items []string
	if rv.Kind() == reflect.Map {
		items = in.mapEntries(rv, p)
	} else {
		items = make([]string, rv.Len())
		for i := range items {
			items[i] = in.render(rv.Index(i), p)
		}
	}

	line := "[" + strings.Join(items, ", ") + "]"
	if len(line) <= in.config.MultilineThreshold {
		return line
	}
	return "\n[\n  " + strings.Join(items, ",\n  ") + "\n]\n"
}

func (in *Inspector) mapEntries(rv reflect.Value, p *path) []string {
	type entry struct{ key, value string }

	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:   in.render(iter.Key(), p),
			value: in.render(iter.Value(), p),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key == entries[j].key {
			return entries[i].value < entries[j].value
		}
		return entries[i].key < entries[j].key
	})

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.key + ": " + e.value
	}
	return items
}

func (in *Inspector) renderOther(rv reflect.Value) string {
	if !rv.CanInterface() {
		// fmt prints the value held by a reflect.Value, exported or not.
		return fmt.Sprintf("%+v", rv)
	}

	v := rv.Interface()
	switch x := v.(type) {
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return in.spew.Sprintf("%+v", v)
}
