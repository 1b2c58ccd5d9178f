// Package should provides fluent test assertions. Each assertion takes the
// test handle first and the actual value second, reports a readable failure
// through the handle, and returns the actual value so calls can be chained:
//
//	user := should.NotBeNil(t, repo.Find(42))
//	should.Be(t, user.Name, "bob")
//
// Failure messages name the asserted expression as written at the call site,
// recovered from the caller's source file. Use Describe to supply a label
// instead.
package should

import (
	"reflect"

	"github.com/ogzhanolguncu/shouldbe/highlight"
	"github.com/ogzhanolguncu/shouldbe/inspect"
	"go.uber.org/zap"
)

// T is the part of testing.TB the assertions need. Fatal must not return
// normally for the assertions to stop at the first failure, as with
// testing.T.
type T interface {
	Helper()
	Fatal(args ...any)
}

// pkgPath identifies assertion frames on the stack.
var pkgPath = reflect.TypeOf(settings{}).PkgPath()

type settings struct {
	label      string
	config     Config
	inspector  *inspect.Inspector
	highlights *highlight.Registry
	logger     *zap.Logger
}

func newSettings(config Config) *settings {
	config = config.withDefaults()

	inspector := inspect.New(config.Inspect)
	hc := config.Highlight
	hc.Inspector = inspector

	return &settings{
		config:     config,
		inspector:  inspector,
		highlights: highlight.NewRegistry(hc),
		logger:     config.Logger,
	}
}

var defaultSettings = newSettings(Config{})

// configured carries settings alongside the caller's T.
type configured struct {
	T
	settings *settings
}

// Describe returns a T whose failures use label in place of the source
// expression of the actual value.
func Describe(t T, label string) T {
	s := *settingsOf(t)
	s.label = label
	return &configured{T: base(t), settings: &s}
}

// Configure returns a T whose assertions render with config. A label set by
// Describe is kept.
func Configure(t T, config Config) T {
	s := newSettings(config)
	s.label = settingsOf(t).label
	return &configured{T: base(t), settings: s}
}

func settingsOf(t T) *settings {
	if c, ok := t.(*configured); ok {
		return c.settings
	}
	return defaultSettings
}

// base unwraps t so Helper and Fatal are called on the caller's own handle.
func base(t T) T {
	if c, ok := t.(*configured); ok {
		return c.T
	}
	return t
}
