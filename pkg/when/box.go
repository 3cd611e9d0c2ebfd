package when

import (
	"fmt"

	"github.com/ib-77/fnbox/pkg/predicate"
)

// Box wraps a value that may be absent. The zero Box is Absent.
type Box[T any] struct {
	value T
	ok    bool
}

// Some returns a Present box holding v. It does not inspect v, so a nil
// pointer passed here is Present; use Wrap to treat nil as absence.
func Some[T any](v T) Box[T] {
	return Box[T]{value: v, ok: true}
}

// None returns an Absent box.
func None[T any]() Box[T] {
	return Box[T]{}
}

// Wrap returns Absent when v is nil and Present(v) otherwise.
func Wrap[T any](v T) Box[T] {
	if predicate.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr dereferences p into a Present box, or returns Absent for nil.
func FromPtr[T any](p *T) Box[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromPair lifts the comma-ok idiom, e.g. FromPair(m[key]).
func FromPair[T any](v T, ok bool) Box[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Map applies f to the value of a Present box and wraps the result. f is not
// called on an Absent box. A nil result makes the new box Absent.
func Map[T, U any](b Box[T], f func(T) U) Box[U] {
	if !b.ok {
		return None[U]()
	}
	return Wrap(f(b.value))
}

// FlatMap is Map for functions that already return a Box.
func FlatMap[T, U any](b Box[T], f func(T) Box[U]) Box[U] {
	if !b.ok {
		return None[U]()
	}
	return f(b.value)
}

// Fold collapses the box: onAbsent runs when Absent, onPresent otherwise.
func Fold[T, U any](b Box[T], onAbsent func() U, onPresent func(T) U) U {
	if !b.ok {
		return onAbsent()
	}
	return onPresent(b.value)
}

// Map is the same-type form of the package-level Map, for fluent chains.
func (b Box[T]) Map(f func(T) T) Box[T] {
	return Map(b, f)
}

// FlatMap is the same-type form of the package-level FlatMap.
func (b Box[T]) FlatMap(f func(T) Box[T]) Box[T] {
	return FlatMap(b, f)
}

// Filter keeps the value only if pred holds. pred is not called on an
// Absent box.
func (b Box[T]) Filter(pred func(T) bool) Box[T] {
	if b.ok && pred(b.value) {
		return b
	}
	return None[T]()
}

// Fold is the same-type form of the package-level Fold.
func (b Box[T]) Fold(onAbsent func() T, onPresent func(T) T) T {
	return Fold(b, onAbsent, onPresent)
}

// Tee runs f on the value of a Present box and returns the box as is.
func (b Box[T]) Tee(f func(T)) Box[T] {
	if b.ok {
		f(b.value)
	}
	return b
}

// Or returns b when Present, alt otherwise.
func (b Box[T]) Or(alt Box[T]) Box[T] {
	if b.ok {
		return b
	}
	return alt
}

func (b Box[T]) GetOrElse(fallback T) T {
	if !b.ok {
		return fallback
	}
	return b.value
}

// Get returns the value, or the zero value of T when Absent. Prefer Unpack,
// GetOrElse or Fold when the difference matters.
func (b Box[T]) Get() T {
	return b.value
}

func (b Box[T]) Unpack() (T, bool) {
	return b.value, b.ok
}

func (b Box[T]) IsPresent() bool {
	return b.ok
}

func (b Box[T]) IsAbsent() bool {
	return !b.ok
}

func (b Box[T]) String() string {
	if !b.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", b.value)
}
