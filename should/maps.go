package should

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

func ContainKey[M ~map[K]V, K comparable, V any](t T, actual M, key K) M {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if _, ok := actual[key]; !ok {
		failExpecting(t, key)
	}
	return actual
}

func NotContainKey[M ~map[K]V, K comparable, V any](t T, actual M, key K) M {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if _, ok := actual[key]; ok {
		failExpecting(t, key)
	}
	return actual
}

func ContainKeyAndValue[M ~map[K]V, K comparable, V any](t T, actual M, key K, value V) M {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	if v, ok := actual[key]; !ok || !assert.ObjectsAreEqual(value, v) {
		failExpectingFormatted(t, keyAndValue(t, key, value))
	}
	return actual
}

// NotContainValueForKey asserts that key is present and not mapped to value.
func NotContainValueForKey[M ~map[K]V, K comparable, V any](t T, actual M, key K, value V) M {
	base(t).Helper()
	if actual == nil {
		failNull(t)
		return actual
	}
	v, ok := actual[key]
	if !ok {
		failExpecting(t, key)
		return actual
	}
	if assert.ObjectsAreEqual(value, v) {
		failExpectingFormatted(t, keyAndValue(t, key, value))
	}
	return actual
}

func keyAndValue(t T, key, value any) string {
	in := settingsOf(t).inspector
	return fmt.Sprintf("{key: %s, val: %s}", in.Inspect(key), in.Inspect(value))
}
