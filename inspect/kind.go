package inspect

import (
	"fmt"
	"reflect"
)

// Kind is the rendering class of a value. It is decided once, when the value
// enters the inspector.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindBool
	KindSequence
	KindEnum
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindSequence:
		return "sequence"
	case KindEnum:
		return "enum"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()

// KindOf classifies v.
func KindOf(v any) Kind {
	if v == nil {
		return KindNull
	}
	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) Kind {
	if !rv.IsValid() || IsNil(rv) {
		return KindNull
	}

	switch rv.Kind() {
	case reflect.String:
		return KindText
	case reflect.Bool:
		return KindBool
	case reflect.Slice, reflect.Array, reflect.Map:
		return KindSequence
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// Named integer types with a String method play the role of enums.
		if rv.Type().Name() != "" && rv.Type().PkgPath() != "" && rv.Type().Implements(stringerType) {
			return KindEnum
		}
	}
	return KindOther
}

// IsNil reports whether rv holds a nil reference. Values of kinds that can't
// be nil are never nil.
func IsNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsNilValue is IsNil for an interface value, treating untyped nil as nil.
func IsNilValue(v any) bool {
	if v == nil {
		return true
	}
	return IsNil(reflect.ValueOf(v))
}
