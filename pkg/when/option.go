package when

import "github.com/samber/mo"

// FromOption converts o. A Some holding nil becomes Absent.
func FromOption[T any](o mo.Option[T]) Box[T] {
	v, ok := o.Get()
	if !ok {
		return None[T]()
	}
	return Wrap(v)
}

func ToOption[T any](b Box[T]) mo.Option[T] {
	if !b.ok {
		return mo.None[T]()
	}
	return mo.Some(b.value)
}
