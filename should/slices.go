package should

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/stretchr/testify/assert"
)

// Collection assertions treat a nil slice as null and fail with
// "<expression> should not be null" before checking anything else.

func BeEmpty[S ~[]E, E any](t T, actual S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if len(actual) > 0 {
		failActual(t, actual)
	}
	return actual
}

func NotBeEmpty[S ~[]E, E any](t T, actual S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if len(actual) == 0 {
		failActual(t, actual)
	}
	return actual
}

// BeTheSequence asserts that actual holds the elements of expected in the
// same order. The failure message marks every differing position.
func BeTheSequence[S ~[]E, E any](t T, actual, expected S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !sameSequence(actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

func sameSequence[S ~[]E, E any](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !assert.ObjectsAreEqual(b[i], a[i]) {
			return false
		}
	}
	return true
}

// BeTheSet asserts that actual and expected hold the same distinct elements,
// in any order and with any multiplicity.
func BeTheSet[S ~[]E, E comparable](t T, actual, expected S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}

	missing := difference(expected, actual)
	unexpected := difference(actual, expected)
	if len(missing) == 0 && len(unexpected) == 0 {
		return actual
	}

	s := settingsOf(t)
	var b strings.Builder
	b.WriteString(s.message(actual, expected))
	b.WriteString("\n")
	if len(missing) > 0 {
		fmt.Fprintf(&b, "        missing\n    %s\n", s.inspector.Inspect(missing))
	}
	if len(unexpected) > 0 {
		fmt.Fprintf(&b, "        not expected\n    %s\n", s.inspector.Inspect(unexpected))
	}
	fail(t, b.String())
	return actual
}

// difference returns the distinct elements of a absent from b, in order of
// first appearance.
func difference[S ~[]E, E comparable](a, b S) S {
	in := make(map[E]struct{}, len(b))
	for _, e := range b {
		in[e] = struct{}{}
	}
	var out S
	for _, e := range a {
		if _, ok := in[e]; ok {
			continue
		}
		in[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

type keyGroup[K comparable, E any] struct {
	key   K
	items []E
}

// HaveUniqueKeys asserts that key maps no two elements of actual to equal
// keys. Duplicates are listed in the order their key first appeared.
func HaveUniqueKeys[S ~[]E, E any, K comparable](t T, actual S, key func(E) K) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}

	index := make(map[K]*keyGroup[K, E])
	var groups []*keyGroup[K, E]
	for _, e := range actual {
		k := key(e)
		g, ok := index[k]
		if !ok {
			g = &keyGroup[K, E]{key: k}
			index[k] = g
			groups = append(groups, g)
		}
		g.items = append(g.items, e)
	}

	s := settingsOf(t)
	var dups []string
	for _, g := range groups {
		if len(g.items) > 1 {
			dups = append(dups, s.inspector.Inspect(g.key)+" -> "+s.inspector.Inspect(g.items))
		}
	}
	if len(dups) > 0 {
		fail(t, s.messageActual(actual)+"\n  Duplicate Keys:\n"+strings.Join(dups, "\n"))
	}
	return actual
}

// BeASubsetOf asserts that every element of actual is in superset.
func BeASubsetOf[S ~[]E, E any](t T, actual, superset S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !assert.Subset(quiet{}, superset, actual) {
		failWith(t, actual, superset)
	}
	return actual
}

// ContainTheSubset asserts that every element of subset is in actual.
func ContainTheSubset[S ~[]E, E any](t T, actual, subset S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !assert.Subset(quiet{}, actual, subset) {
		failWith(t, actual, subset)
	}
	return actual
}

func Contain[S ~[]E, E any](t T, actual S, expected E) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !assert.Contains(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

func NotContain[S ~[]E, E any](t T, actual S, expected E) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !assert.NotContains(quiet{}, actual, expected) {
		failWith(t, actual, expected)
	}
	return actual
}

// ContainMatch asserts that at least one element satisfies condition. The
// failure message quotes the condition's source.
func ContainMatch[S ~[]E, E any](t T, actual S, condition func(E) bool) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !slices.ContainsFunc(actual, condition) {
		failExpectingElement(t)
	}
	return actual
}

func NotContainMatch[S ~[]E, E any](t T, actual S, condition func(E) bool) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if slices.ContainsFunc(actual, condition) {
		failExpectingElement(t)
	}
	return actual
}

func AllMatch[S ~[]E, E any](t T, actual S, condition func(E) bool) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	for _, e := range actual {
		if !condition(e) {
			failExpectingElement(t)
			return actual
		}
	}
	return actual
}

func BeAscending[S ~[]E, E cmp.Ordered](t T, actual S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !assert.IsNonDecreasing(quiet{}, actual) {
		expected := slices.Clone(actual)
		slices.Sort(expected)
		failWith(t, actual, expected)
	}
	return actual
}

// BeAscendingBy asserts that the keys of actual's elements never decrease.
func BeAscendingBy[S ~[]E, E any, K cmp.Ordered](t T, actual S, key func(E) K) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	byKey := func(a, b E) int { return cmp.Compare(key(a), key(b)) }
	if !slices.IsSortedFunc(actual, byKey) {
		expected := slices.Clone(actual)
		slices.SortStableFunc(expected, byKey)
		failWith(t, actual, expected)
	}
	return actual
}

func BeDescending[S ~[]E, E cmp.Ordered](t T, actual S) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !assert.IsNonIncreasing(quiet{}, actual) {
		expected := slices.Clone(actual)
		slices.SortFunc(expected, func(a, b E) int { return cmp.Compare(b, a) })
		failWith(t, actual, expected)
	}
	return actual
}

func BeDescendingBy[S ~[]E, E any, K cmp.Ordered](t T, actual S, key func(E) K) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	byKey := func(a, b E) int { return cmp.Compare(key(b), key(a)) }
	if !slices.IsSortedFunc(actual, byKey) {
		expected := slices.Clone(actual)
		slices.SortStableFunc(expected, byKey)
		failWith(t, actual, expected)
	}
	return actual
}

// ContainWithin asserts that some element is no further than tolerance from
// expected.
func ContainWithin[S ~[]E, E Number](t T, actual S, expected, tolerance E) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if !slices.ContainsFunc(actual, within(expected, tolerance)) {
		failWithTolerance(t, actual, expected, tolerance)
	}
	return actual
}

func NotContainWithin[S ~[]E, E Number](t T, actual S, expected, tolerance E) S {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if slices.ContainsFunc(actual, within(expected, tolerance)) {
		failWithTolerance(t, actual, expected, tolerance)
	}
	return actual
}

func within[E Number](expected, tolerance E) func(E) bool {
	return func(a E) bool {
		return math.Abs(float64(expected)-float64(a)) <= float64(tolerance)
	}
}
