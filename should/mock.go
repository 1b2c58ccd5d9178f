package should

import (
	"fmt"
	"strings"

	"github.com/ogzhanolguncu/shouldbe/inspect"
	"github.com/stretchr/testify/mock"
)

// HaveBeenCalled asserts that m recorded a call to method with arguments
// matching args. mock.Anything and the other testify argument matchers work
// as in mock.AssertCalled. On failure every recorded call to method is listed.
func HaveBeenCalled(t T, m *mock.Mock, method string, args ...any) *mock.Mock {
	base(t).Helper()
	if m.AssertCalled(quiet{}, method, args...) {
		return m
	}

	in := settingsOf(t).inspector
	var recorded []string
	for _, call := range m.Calls {
		if call.Method == method {
			recorded = append(recorded, fmt.Sprintf("% d: %s", len(recorded), methodCall(in.Inspect, method, call.Arguments)))
		}
	}
	fail(t, fmt.Sprintf("*Expecting*\n    %s\n*Recorded*\n%s",
		methodCall(in.Inspect, method, args), inspect.DelimitWith(recorded, "\n")))
	return m
}

func methodCall(render func(any) string, method string, args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = render(a)
	}
	return method + "(" + strings.Join(parts, ", ") + ")"
}
