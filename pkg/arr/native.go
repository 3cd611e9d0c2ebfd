package arr

import (
	"math"
	"reflect"

	"github.com/samber/lo"
)

func Map[T, U any](as []T, f func(T) U) []U {
	return lo.Map(as, func(a T, _ int) U { return f(a) })
}

func Filter[T any](as []T, pred func(T) bool) []T {
	return lo.Filter(as, func(a T, _ int) bool { return pred(a) })
}

func Reduce[T, U any](as []T, f func(acc U, current T) U, initial U) U {
	return lo.Reduce(as, func(acc U, a T, _ int) U { return f(acc, a) }, initial)
}

// Some reports whether pred holds for at least one element.
func Some[T any](as []T, pred func(T) bool) bool {
	return lo.SomeBy(as, pred)
}

// Every reports whether pred holds for all elements. It is true for an
// empty slice.
func Every[T any](as []T, pred func(T) bool) bool {
	return lo.EveryBy(as, pred)
}

// Concat returns as followed by bs.
func Concat[T any](as, bs []T) []T {
	return lo.Flatten([][]T{as, bs})
}

// Includes reports whether v is in as, starting the search at fromIndex when
// given. A negative fromIndex counts from the end. NaN matches NaN.
func Includes[T comparable](as []T, v T, fromIndex ...int) bool {
	from := 0
	if len(fromIndex) > 0 {
		from = fromIndex[0]
		if from < 0 {
			from = max(len(as)+from, 0)
		}
	}
	if from >= len(as) {
		return false
	}
	if isNaN(v) {
		return lo.ContainsBy(as[from:], isNaN[T])
	}
	return lo.Contains(as[from:], v)
}

func isNaN[T any](v T) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}
	return false
}
