// Package highlight renders the structural difference between an expected and
// an actual value.
package highlight

import (
	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/stretchr/testify/assert"
)

const (
	DefaultMaxElements = 1000
	DefaultMarker      = "*"
)

// Highlighter produces a difference rendering for the value pairs it accepts.
type Highlighter interface {
	CanProcess(expected, actual any) bool
	Highlight(expected, actual any) string
}

// EqualFunc decides whether two elements are equal. Panics are not recovered.
type EqualFunc func(expected, actual any) bool

type Config struct {
	// Sequences are cut after this many elements.
	MaxElements int `yaml:"max_elements"`
	// Marker wraps each differing element.
	Marker string `yaml:"marker"`
	// Lines of context around changes in text diffs.
	TextContext int `yaml:"text_context"`

	Inspector *inspect.Inspector `yaml:"-"`
	Equal     EqualFunc          `yaml:"-"`
}

func (c Config) withDefaults() Config {
	if c.MaxElements <= 0 {
		c.MaxElements = DefaultMaxElements
	}
	if c.Marker == "" {
		c.Marker = DefaultMarker
	}
	if c.TextContext <= 0 {
		c.TextContext = 1
	}
	if c.Inspector == nil {
		c.Inspector = inspect.New(inspect.Config{})
	}
	if c.Equal == nil {
		c.Equal = assert.ObjectsAreEqual
	}
	return c
}

// Registry picks the first registered highlighter able to process a pair.
type Registry struct {
	highlighters []Highlighter
	inspector    *inspect.Inspector
}

// NewRegistry returns a registry holding the sequence and text highlighters.
func NewRegistry(config Config) *Registry {
	config = config.withDefaults()
	return &Registry{
		highlighters: []Highlighter{NewSequence(config), NewText(config)},
		inspector:    config.Inspector,
	}
}

// Register appends h. Highlighters registered earlier take precedence.
func (r *Registry) Register(h Highlighter) {
	r.highlighters = append(r.highlighters, h)
}

func (r *Registry) For(expected, actual any) (Highlighter, bool) {
	for _, h := range r.highlighters {
		if h.CanProcess(expected, actual) {
			return h, true
		}
	}
	return nil, false
}

func (r *Registry) CanHighlight(expected, actual any) bool {
	_, ok := r.For(expected, actual)
	return ok
}

// Highlight falls back to inspecting actual when no highlighter applies.
func (r *Registry) Highlight(expected, actual any) string {
	h, ok := r.For(expected, actual)
	if !ok {
		return r.inspector.Inspect(actual)
	}
	return h.Highlight(expected, actual)
}
