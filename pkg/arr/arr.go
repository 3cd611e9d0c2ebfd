package arr

import (
	"cmp"
	"math"
	"reflect"
	"slices"

	"github.com/samber/lo"

	"github.com/ib-77/fnbox/pkg/predicate"
	"github.com/ib-77/fnbox/pkg/when"
)

func Append[T any](as []T, a T) []T {
	return append(slices.Clone(as), a)
}

func Prepend[T any](as []T, a T) []T {
	return append([]T{a}, as...)
}

// PrependAll returns prefix followed by as.
func PrependAll[T any](as, prefix []T) []T {
	return Concat(prefix, as)
}

// Compact drops nil, false, "" and NaN. Numeric zero is kept, and so are
// empty slices, maps and structs.
func Compact[T any](as []T) []T {
	return lo.Filter(as, func(a T, _ int) bool {
		if !predicate.IsFalsy(a) {
			return true
		}
		return isZeroNumber(a)
	})
}

func isZeroNumber(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(rv.Float())
	default:
		return false
	}
}

// Difference returns the elements of as that are not in bs, in the order of
// as.
func Difference[T comparable](as, bs []T) []T {
	return lo.Without(as, bs...)
}

// DifferenceBy is Difference comparing the keys produced by f.
func DifferenceBy[T any, K comparable](as, bs []T, f func(T) K) []T {
	seen := lo.Keyify(Map(bs, f))
	return Filter(as, func(a T) bool {
		_, ok := seen[f(a)]
		return !ok
	})
}

// Intersection returns the elements of as that are also in bs, in the order
// of as.
func Intersection[T comparable](as, bs []T) []T {
	seen := lo.Keyify(bs)
	return Filter(as, func(a T) bool {
		_, ok := seen[a]
		return ok
	})
}

func IntersectionBy[T any, K comparable](as, bs []T, f func(T) K) []T {
	seen := lo.Keyify(Map(bs, f))
	return Filter(as, func(a T) bool {
		_, ok := seen[f(a)]
		return ok
	})
}

// Drop removes the first n elements. A negative n keeps everything.
func Drop[T any](as []T, n int) []T {
	if n < 0 {
		return slices.Clone(as)
	}
	return lo.Drop(as, n)
}

// DropRight removes the last n elements. A negative n keeps everything.
func DropRight[T any](as []T, n int) []T {
	if n < 1 {
		return slices.Clone(as)
	}
	return lo.DropRight(as, n)
}

// Take keeps the first n elements. A negative n keeps everything.
func Take[T any](as []T, n int) []T {
	if n < 0 || n >= len(as) {
		return slices.Clone(as)
	}
	return slices.Clone(lo.Subset(as, 0, uint(n)))
}

// TakeRight keeps the last n elements. A negative n keeps everything.
func TakeRight[T any](as []T, n int) []T {
	if n < 0 || n >= len(as) {
		return slices.Clone(as)
	}
	return slices.Clone(lo.Subset(as, len(as)-n, uint(n)))
}

// Flatten removes one level of nesting.
func Flatten[T any](ass [][]T) []T {
	return lo.Flatten(ass)
}

// NestedMap flattens one level and maps f over the result.
func NestedMap[T, U any](ass [][]T, f func(T) U) []U {
	return Map(lo.Flatten(ass), f)
}

func GroupBy[T any, K comparable](as []T, key func(T) K) map[K][]T {
	return lo.GroupBy(as, key)
}

func Head[T any](as []T) when.Box[T] {
	return LookupAt(as, 0)
}

func Last[T any](as []T) when.Box[T] {
	return LookupAt(as, len(as)-1)
}

// Range returns the integers from start to end, both included. It is empty
// when either bound is negative or end < start.
func Range(start, end int) []int {
	if start < 0 || end < 0 || end < start {
		return []int{}
	}
	return lo.RangeFrom(start, end-start+1)
}

// SortKey is one criterion of SortBy.
type SortKey[T any] struct {
	Compare func(a, b T) int
	Reverse bool
}

// By builds a SortKey comparator from a key extractor.
func By[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// SortBy sorts a copy of as by the given keys, in order of precedence. The
// sort is stable.
func SortBy[T any](as []T, keys ...SortKey[T]) []T {
	out := slices.Clone(as)
	slices.SortStableFunc(out, func(a, b T) int {
		for _, k := range keys {
			c := k.Compare(a, b)
			if c == 0 {
				continue
			}
			if k.Reverse {
				return -c
			}
			return c
		}
		return 0
	})
	return out
}

func Uniq[T comparable](as []T) []T {
	return lo.Uniq(as)
}

// UniqBy keeps the first element for each key produced by key.
func UniqBy[T any, K comparable](as []T, key func(T) K) []T {
	return lo.UniqBy(as, key)
}

// ZipWith combines elements at the same index. Excess elements of the longer
// slice are dropped.
func ZipWith[T, U, R any](ts []T, us []U, f func(T, U) R) []R {
	n := min(len(ts), len(us))
	out := make([]R, n)
	for i := 0; i < n; i++ {
		out[i] = f(ts[i], us[i])
	}
	return out
}
