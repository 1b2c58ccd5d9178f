package should

import (
	"reflect"
)

// BeTypeOf asserts that the dynamic type of actual is exactly V and returns
// actual as a V.
func BeTypeOf[V any](t T, actual any) V {
	base(t).Helper()
	want := reflect.TypeFor[V]()
	if reflect.TypeOf(actual) != want {
		failWith(t, actual, want)
	}
	v, _ := actual.(V)
	return v
}

func NotBeTypeOf[V any](t T, actual any) any {
	base(t).Helper()
	want := reflect.TypeFor[V]()
	if reflect.TypeOf(actual) == want {
		failWith(t, actual, want)
	}
	return actual
}

// BeInstanceOf asserts that actual holds a V. For an interface V this means
// the dynamic type implements it.
func BeInstanceOf[V any](t T, actual any) V {
	base(t).Helper()
	v, ok := actual.(V)
	if !ok {
		failWith(t, actual, reflect.TypeFor[V]())
	}
	return v
}

func NotBeInstanceOf[V any](t T, actual any) any {
	base(t).Helper()
	if _, ok := actual.(V); ok {
		failWith(t, actual, reflect.TypeFor[V]())
	}
	return actual
}

// BeAssignableTo asserts that actual's dynamic type is assignable to V and
// returns the converted value.
func BeAssignableTo[V any](t T, actual any) V {
	base(t).Helper()
	want := reflect.TypeFor[V]()
	if actual == nil || !reflect.TypeOf(actual).AssignableTo(want) {
		failWith(t, actual, want)
		var zero V
		return zero
	}
	return reflect.ValueOf(actual).Convert(want).Interface().(V)
}

func NotBeAssignableTo[V any](t T, actual any) any {
	base(t).Helper()
	want := reflect.TypeFor[V]()
	if actual != nil && reflect.TypeOf(actual).AssignableTo(want) {
		failWith(t, actual, want)
	}
	return actual
}

// BeAssignableFrom asserts that a value of type V could be assigned to a
// variable of actual's dynamic type.
func BeAssignableFrom[V any](t T, actual any) any {
	base(t).Helper()
	want := reflect.TypeFor[V]()
	if actual == nil || !want.AssignableTo(reflect.TypeOf(actual)) {
		failWith(t, actual, want)
	}
	return actual
}

func NotBeAssignableFrom[V any](t T, actual any) any {
	base(t).Helper()
	want := reflect.TypeFor[V]()
	if actual != nil && want.AssignableTo(reflect.TypeOf(actual)) {
		failWith(t, actual, want)
	}
	return actual
}
