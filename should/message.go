package should

import (
	"fmt"

	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/ogzhanolguncu/shouldbe/internal/callsite"
	"go.uber.org/zap"
)

// Placeholder names the actual value when its source can't be recovered.
const Placeholder = "The provided expression"

// Argument positions in an assertion call, t being 0.
const (
	actualArg    = 1
	conditionArg = 2
)

// Assertions whose spaced name reads badly in a message.
var descriptions = map[string]string{
	"ContainMatch":          "should contain",
	"NotContainMatch":       "should not contain",
	"AllMatch":              "should all be",
	"ContainWithin":         "should contain",
	"NotContainWithin":      "should not contain",
	"ContainSubstring":      "should contain",
	"NotContainSubstring":   "should not contain",
	"BeAscendingBy":         "should be ascending",
	"BeDescendingBy":        "should be descending",
	"ReturnErrorContaining": "should return error containing",
}

func describe(assertion string) string {
	if d, ok := descriptions[assertion]; ok {
		return d
	}
	if assertion == "" {
		return "should"
	}
	return "should " + inspect.CamelCaseToSpaced(assertion)
}

// code resolves the source text of argument arg of the running assertion and
// the assertion's name.
func (s *settings) code(arg int) (string, string) {
	site, err := callsite.Locate(pkgPath)
	if s.label != "" && arg == actualArg {
		return s.label, site.Func
	}
	if err != nil {
		s.logger.Debug("assertion caller not found", zap.Error(err))
		return Placeholder, ""
	}
	if s.config.DisableSource {
		return Placeholder, site.Func
	}

	expr, err := callsite.Expression(site, arg)
	if err != nil {
		s.logger.Debug("source context unavailable",
			zap.String("assertion", site.Func),
			zap.String("file", site.File),
			zap.Int("line", site.Line),
			zap.Error(err))
		return Placeholder, site.Func
	}
	return expr, site.Func
}

func (s *settings) context() string {
	code, assertion := s.code(actualArg)
	return code + "\n  " + describe(assertion)
}

func (s *settings) message(actual, expected any) string {
	msg := fmt.Sprintf("%s\n    %s\n        but was\n    %s",
		s.context(), s.inspector.Inspect(expected), s.inspector.Inspect(actual))

	if h, ok := s.highlights.For(expected, actual); ok {
		s.logger.Debug("highlighting difference", zap.String("highlighter", fmt.Sprintf("%T", h)))
		msg += fmt.Sprintf("\n        difference\n    %s", h.Highlight(expected, actual))
	}
	return msg
}

func (s *settings) messageWithDiff(actual, expected any, diff string) string {
	return fmt.Sprintf("%s\n    %s\n        but was\n    %s\n        difference\n    %s",
		s.context(), s.inspector.Inspect(expected), s.inspector.Inspect(actual), diff)
}

func (s *settings) messageWithTolerance(actual, expected, tolerance any) string {
	return fmt.Sprintf("%s\n    %v (+/- %v)\n        but was\n    %s",
		s.context(), expected, tolerance, s.inspector.Inspect(actual))
}

func (s *settings) messageActual(actual any) string {
	return fmt.Sprintf("%s but was\n    %s", s.context(), s.inspector.Inspect(actual))
}

func (s *settings) messageNull() string {
	code, _ := s.code(actualArg)
	return code + " should not be null"
}

func (s *settings) messageExpecting(expected any) string {
	return s.messageExpectingFormatted(s.inspector.Inspect(expected))
}

func (s *settings) messageExpectingFormatted(expected string) string {
	return fmt.Sprintf("%s\n    %s", s.context(), expected)
}

func (s *settings) messageExpectingElement() string {
	ctx := s.context()
	condition, _ := s.code(conditionArg)
	if condition == Placeholder {
		condition = "The provided condition"
	}
	return fmt.Sprintf("%s an element satisfying the condition\n    %s", ctx, condition)
}

func fail(t T, msg string) {
	base(t).Helper()
	base(t).Fatal(msg)
}

func failWith(t T, actual, expected any) {
	base(t).Helper()
	fail(t, settingsOf(t).message(actual, expected))
}

func failWithTolerance(t T, actual, expected, tolerance any) {
	base(t).Helper()
	fail(t, settingsOf(t).messageWithTolerance(actual, expected, tolerance))
}

func failActual(t T, actual any) {
	base(t).Helper()
	fail(t, settingsOf(t).messageActual(actual))
}

func failNull(t T) {
	base(t).Helper()
	fail(t, settingsOf(t).messageNull())
}

func failExpecting(t T, expected any) {
	base(t).Helper()
	fail(t, settingsOf(t).messageExpecting(expected))
}

func failExpectingFormatted(t T, expected string) {
	base(t).Helper()
	fail(t, settingsOf(t).messageExpectingFormatted(expected))
}

func failExpectingElement(t T) {
	base(t).Helper()
	fail(t, settingsOf(t).messageExpectingElement())
}
