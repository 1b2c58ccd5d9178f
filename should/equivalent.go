package should

import (
	"github.com/google/go-cmp/cmp"
)

// BeEquivalent compares with go-cmp, so options such as cmpopts.EquateEmpty
// or cmp.AllowUnexported apply. The difference section is cmp.Diff output.
// Like cmp.Equal, it panics on unexported fields no option handles.
func BeEquivalent[V any](t T, actual, expected V, opts ...cmp.Option) V {
	base(t).Helper()
	if !cmp.Equal(expected, actual, opts...) {
		s := settingsOf(t)
		fail(t, s.messageWithDiff(actual, expected, cmp.Diff(expected, actual, opts...)))
	}
	return actual
}
