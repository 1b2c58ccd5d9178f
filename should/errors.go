package should

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ReturnError calls fn and asserts that the error it returns matches E in the
// sense of errors.As. The matched error is returned.
func ReturnError[E error](t T, fn func() error) E {
	base(t).Helper()
	target, ok := returnedError[E](t, fn)
	if !ok {
		var zero E
		return zero
	}
	return target
}

// ReturnErrorContaining is ReturnError that also requires the error message
// to contain substr.
func ReturnErrorContaining[E error](t T, fn func() error, substr string) E {
	base(t).Helper()
	target, ok := returnedError[E](t, fn)
	if !ok {
		return target
	}
	if !strings.Contains(target.Error(), substr) {
		failWith(t, target.Error(), substr)
	}
	return target
}

func returnedError[E error](t T, fn func() error) (E, bool) {
	base(t).Helper()
	var target E
	want := reflect.TypeFor[E]()

	err := fn()
	if err == nil {
		fail(t, fmt.Sprintf("Should return %s but no error was returned.", want))
		return target, false
	}
	if !errors.As(err, &target) {
		failWith(t, reflect.TypeOf(err), want)
		return target, false
	}
	return target, true
}

// Panic asserts that fn panics and returns the recovered value.
func Panic(t T, fn func()) any {
	base(t).Helper()
	recovered, panicked := recoverFrom(fn)
	if !panicked {
		failExpectingFormatted(t, "but it returned normally")
	}
	return recovered
}

func recoverFrom(fn func()) (recovered any, panicked bool) {
	defer func() {
		if panicked {
			recovered = recover()
		}
	}()
	panicked = true
	fn()
	panicked = false
	return nil, false
}
