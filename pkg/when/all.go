package when

import (
	"github.com/samber/lo"

	"github.com/ib-77/fnbox/pkg/predicate"
)

// All returns Present with a copy of values when none of them is nil, and
// Absent as soon as one is. Values are checked left to right. Use T = any for
// heterogeneous tuples:
//
//	when.All[any]("one", 2, 3, "bar") // Some([one 2 3 bar])
//	when.All[any]("one", 2, nil, "bar") // None
func All[T any](values ...T) Box[[]T] {
	for _, v := range values {
		if predicate.IsNil(v) {
			return None[[]T]()
		}
	}

	out := make([]T, len(values))
	copy(out, values)
	return Some(out)
}

// AllOf is All for values that are already boxed.
func AllOf[T any](boxes ...Box[T]) Box[[]T] {
	out := make([]T, 0, len(boxes))
	for _, b := range boxes {
		if !b.ok {
			return None[[]T]()
		}
		out = append(out, b.value)
	}
	return Some(out)
}

// Zip pairs two boxes into a typed tuple.
func Zip[A, B any](a Box[A], b Box[B]) Box[lo.Tuple2[A, B]] {
	if !a.ok || !b.ok {
		return None[lo.Tuple2[A, B]]()
	}
	return Some(lo.T2(a.value, b.value))
}

// Zip3 is Zip for three boxes.
func Zip3[A, B, C any](a Box[A], b Box[B], c Box[C]) Box[lo.Tuple3[A, B, C]] {
	if !a.ok || !b.ok || !c.ok {
		return None[lo.Tuple3[A, B, C]]()
	}
	return Some(lo.T3(a.value, b.value, c.value))
}
