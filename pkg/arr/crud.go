package arr

import (
	"slices"

	"github.com/ib-77/fnbox/pkg/when"
)

func inRange[T any](as []T, index int) bool {
	return index >= 0 && index < len(as)
}

// DeleteAt removes the element at index. An out-of-range index returns an
// unchanged copy.
func DeleteAt[T any](as []T, index int) []T {
	out := slices.Clone(as)
	if !inRange(as, index) {
		return out
	}
	return slices.Delete(out, index, index+1)
}

// InsertAt inserts a before the element currently at index.
func InsertAt[T any](as []T, index int, a T) []T {
	out := slices.Clone(as)
	if !inRange(as, index) {
		return out
	}
	return slices.Insert(out, index, a)
}

func UpdateAt[T any](as []T, index int, a T) []T {
	return ModifyAt(as, index, func(T) T { return a })
}

// ModifyAt replaces the element at index with f applied to it.
func ModifyAt[T any](as []T, index int, f func(T) T) []T {
	out := slices.Clone(as)
	if !inRange(as, index) {
		return out
	}
	out[index] = f(out[index])
	return out
}

func LookupAt[T any](as []T, index int) when.Box[T] {
	if !inRange(as, index) {
		return when.None[T]()
	}
	return when.Some(as[index])
}
