package should

import (
	"cmp"

	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/stretchr/testify/assert"
)

// quiet lets testify's assertions be used as predicates: it discards the
// messages they would otherwise report.
type quiet struct{}

func (quiet) Errorf(string, ...any) {}
func (quiet) Logf(string, ...any)   {}
func (quiet) FailNow()              {}

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Be asserts that actual equals expected. Byte slices are compared by
// content, everything else with reflect.DeepEqual semantics.
func Be[V any](t T, actual, expected V) V {
	base(t).Helper()
	if !assert.ObjectsAreEqual(expected, actual) {
		failWith(t, actual, expected)
	}
	return actual
}

func NotBe[V any](t T, actual, expected V) V {
	base(t).Helper()
	if assert.ObjectsAreEqual(expected, actual) {
		failWith(t, actual, expected)
	}
	return actual
}

// BeWithin asserts that actual is no further than tolerance from expected.
func BeWithin[V Number](t T, actual, expected, tolerance V) V {
	base(t).Helper()
	if !assert.InDelta(quiet{}, float64(expected), float64(actual), float64(tolerance)) {
		failWithTolerance(t, actual, expected, tolerance)
	}
	return actual
}

func NotBeWithin[V Number](t T, actual, expected, tolerance V) V {
	base(t).Helper()
	if assert.InDelta(quiet{}, float64(expected), float64(actual), float64(tolerance)) {
		failWithTolerance(t, actual, expected, tolerance)
	}
	return actual
}

// BeNil accepts untyped nil and nil pointers, slices, maps, channels,
// functions and interfaces.
func BeNil[V any](t T, actual V) V {
	base(t).Helper()
	if !inspect.IsNilValue(actual) {
		failWith(t, actual, nil)
	}
	return actual
}

func NotBeNil[V any](t T, actual V) V {
	base(t).Helper()
	if inspect.IsNilValue(actual) {
		failNull(t)
	}
	return actual
}

func BeGreaterThan[V cmp.Ordered](t T, actual, expected V) V {
	base(t).Helper()
	if !assert.Greater(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

func BeGreaterThanOrEqualTo[V cmp.Ordered](t T, actual, expected V) V {
	base(t).Helper()
	if !assert.GreaterOrEqual(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

// BeAtLeast is BeGreaterThanOrEqualTo.
func BeAtLeast[V cmp.Ordered](t T, actual, expected V) V {
	base(t).Helper()
	if !assert.GreaterOrEqual(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

func BeLessThan[V cmp.Ordered](t T, actual, expected V) V {
	base(t).Helper()
	if !assert.Less(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

func BeLessThanOrEqualTo[V cmp.Ordered](t T, actual, expected V) V {
	base(t).Helper()
	if !assert.LessOrEqual(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

// BeAtMost is BeLessThanOrEqualTo.
func BeAtMost[V cmp.Ordered](t T, actual, expected V) V {
	base(t).Helper()
	if !assert.LessOrEqual(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

// BeSameAs asserts that actual and expected point to the same variable.
func BeSameAs[E any](t T, actual, expected *E) *E {
	base(t).Helper()
	if !assert.Same(quiet{}, expected, actual) {
		failWith(t, actual, expected)
	}
	return actual
}

func NotBeSameAs[E any](t T, actual, expected *E) *E {
	base(t).Helper()
	if !assert.NotSame(quiet{}, expected, actual) {
		failWith(t, actual, expected)
	}
	return actual
}
