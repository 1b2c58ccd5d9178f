package should

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/stretchr/testify/assert"
)

// BeCloseTo compares strings ignoring whitespace and treating single and
// double quotes alike.
func BeCloseTo(t T, actual, expected string) string {
	base(t).Helper()
	a := inspect.StripWhitespace(inspect.Quotify(actual))
	e := inspect.StripWhitespace(inspect.Quotify(expected))
	if a != e {
		failWith(t, actual, expected)
	}
	return actual
}

// StartWith is case-sensitive, as are the other string assertions.
func StartWith(t T, actual, prefix string) string {
	base(t).Helper()
	if !strings.HasPrefix(actual, prefix) {
		failWith(t, actual, prefix)
	}
	return actual
}

func EndWith(t T, actual, suffix string) string {
	base(t).Helper()
	if !strings.HasSuffix(actual, suffix) {
		failWith(t, actual, suffix)
	}
	return actual
}

func ContainSubstring(t T, actual, substr string) string {
	base(t).Helper()
	if !assert.Contains(quiet{}, actual, substr) {
		failWith(t, actual, substr)
	}
	return actual
}

func NotContainSubstring(t T, actual, substr string) string {
	base(t).Helper()
	if !assert.NotContains(quiet{}, actual, substr) {
		failWith(t, actual, substr)
	}
	return actual
}

// Match asserts that pattern matches somewhere in actual. An invalid pattern
// fails the assertion.
func Match(t T, actual, pattern string) string {
	base(t).Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		failExpectingFormatted(t, fmt.Sprintf("a valid pattern, got %q: %v", pattern, err))
		return actual
	}
	if !assert.Regexp(quiet{}, re, actual) {
		failWith(t, actual, pattern)
	}
	return actual
}

func NotMatch(t T, actual, pattern string) string {
	base(t).Helper()
	re, err := regexp.Compile(pattern)
	if err != nil {
		failExpectingFormatted(t, fmt.Sprintf("a valid pattern, got %q: %v", pattern, err))
		return actual
	}
	if !assert.NotRegexp(quiet{}, re, actual) {
		failWith(t, actual, pattern)
	}
	return actual
}
