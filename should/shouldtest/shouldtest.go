// Package shouldtest captures assertion failures so assertions themselves can
// be tested.
package shouldtest

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/ogzhanolguncu/shouldbe/should"
)

// Recorder is a should.T that records the first failure. Fatal stops the
// calling goroutine, so a Recorder must only be used through Run.
type Recorder struct {
	mu      sync.Mutex
	failed  bool
	message string
}

func (r *Recorder) Helper() {}

func (r *Recorder) Fatal(args ...any) {
	r.mu.Lock()
	if !r.failed {
		r.failed = true
		r.message = fmt.Sprint(args...)
	}
	r.mu.Unlock()
	runtime.Goexit()
}

func (r *Recorder) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed
}

func (r *Recorder) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}

// Run calls fn on its own goroutine with a fresh Recorder and waits for it to
// finish or fail.
func Run(fn func(t should.T)) *Recorder {
	r := &Recorder{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(r)
	}()
	<-done
	return r
}

// FailWithError asserts that fn fails with a message containing expected.
// Whitespace, newlines included, is ignored on both sides.
func FailWithError(t should.T, fn func(t should.T), expected string) {
	t.Helper()
	r := Run(fn)
	if !r.Failed() {
		t.Fatal(fmt.Sprintf("Should fail with error\n%s\n    but it succeeded.", expected))
		return
	}

	actual := inspect.StripWhitespace(r.Message())
	want := inspect.StripWhitespace(expected)
	if !strings.Contains(actual, want) {
		t.Fatal(fmt.Sprintf("Should fail with error\n'%d:%s'\n    but error was\n'%d:%s'\n",
			len(want), want, len(actual), actual))
	}
}

// Succeed asserts that fn completes without failing.
func Succeed(t should.T, fn func(t should.T)) {
	t.Helper()
	if r := Run(fn); r.Failed() {
		t.Fatal(fmt.Sprintf("Should succeed\n    but failed with\n%s", r.Message()))
	}
}
