// Package logic holds small conditional combinators.
package logic

import (
	"github.com/ib-77/fnbox/pkg/arr"
	"github.com/ib-77/fnbox/pkg/predicate"
)

// IfElse builds a function that calls onTrue when pred holds and onFalse
// otherwise.
func IfElse[T, U any](pred func(T) bool, onTrue func(T) U, onFalse func() U) func(T) U {
	return func(v T) U {
		if pred(v) {
			return onTrue(v)
		}
		return onFalse()
	}
}

// When builds a function that applies whenTrue when pred holds and returns
// its argument unchanged otherwise.
func When[T any](pred func(T) bool, whenTrue func(T) T) func(T) T {
	return func(v T) T {
		if pred(v) {
			return whenTrue(v)
		}
		return v
	}
}

// DoWhen calls f with values only if none of them is falsy and, when given,
// filter returns true. Unlike when.All, 0, "" and false block the call.
func DoWhen[T any](values []T, f func([]T), filter ...func([]T) bool) {
	truthy := arr.Every(values, func(v T) bool { return !predicate.IsFalsy(v) })
	if !truthy {
		return
	}
	if len(filter) > 0 && filter[0] != nil && !filter[0](values) {
		return
	}
	f(values)
}
