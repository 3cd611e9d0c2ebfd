package predicate

import (
	"math"
	"reflect"
)

// IsNil reports whether v is the absence sentinel: an untyped nil, or a
// typed nil of a nilable kind.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsDefined is the negation of IsNil.
func IsDefined(v any) bool {
	return !IsNil(v)
}

// IsEmpty reports whether v carries nothing: nil, "", an empty slice, array
// or map, a struct without fields, or false. Numbers are never empty, so 0 is
// not empty while false is.
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Struct:
		return rv.NumField() == 0
	default:
		return false
	}
}

// IsFalsy reports whether v is nil, false, numeric zero, NaN or "".
func IsFalsy(v any) bool {
	if IsNil(v) {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return rv.Len() == 0
	default:
		return false
	}
}
