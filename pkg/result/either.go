package result

import "github.com/samber/mo"

// FromEither maps Left to Err and Right to Ok.
func FromEither[E, S any](e mo.Either[E, S]) Result[E, S] {
	if l, ok := e.Left(); ok {
		return Err[E, S](l)
	}
	return Ok[E](e.MustRight())
}

func ToEither[E, S any](r Result[E, S]) mo.Either[E, S] {
	return Fold(r, mo.Left[E, S], mo.Right[E, S])
}
