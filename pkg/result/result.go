package result

import (
	"fmt"

	"github.com/ib-77/fnbox/pkg/when"
)

type tag uint8

const (
	errTag tag = iota
	okTag
)

// Result holds either an error payload of type E or a success payload of
// type S. The zero Result is an Err carrying the zero E.
type Result[E, S any] struct {
	tag tag
	err E
	ok  S
}

func Ok[E, S any](v S) Result[E, S] {
	return Result[E, S]{tag: okTag, ok: v}
}

func Err[E, S any](e E) Result[E, S] {
	return Result[E, S]{tag: errTag, err: e}
}

// Fold runs onErr for an Err and onOk for an Ok and returns what it returned.
func Fold[E, S, U any](r Result[E, S], onErr func(E) U, onOk func(S) U) U {
	switch r.tag {
	case okTag:
		return onOk(r.ok)
	default:
		return onErr(r.err)
	}
}

// Fold is the method form of Fold for handlers returning S.
func (r Result[E, S]) Fold(onErr func(E) S, onOk func(S) S) S {
	return Fold(r, onErr, onOk)
}

func (r Result[E, S]) IsOk() bool {
	return r.tag == okTag
}

func (r Result[E, S]) IsErr() bool {
	return r.tag != okTag
}

func (r Result[E, S]) String() string {
	if r.tag == okTag {
		return fmt.Sprintf("Ok(%v)", r.ok)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// Try calls f and turns a non-nil error into an Err.
func Try[S any](f func() (S, error)) Result[error, S] {
	v, err := f()
	if err != nil {
		return Err[error, S](err)
	}
	return Ok[error](v)
}

// ToBox keeps the Ok payload and drops the Err one. An Ok holding nil
// becomes Absent.
func ToBox[E, S any](r Result[E, S]) when.Box[S] {
	if r.tag != okTag {
		return when.None[S]()
	}
	return when.Wrap(r.ok)
}

// FromBox turns a Present box into Ok and an Absent one into Err(onAbsent).
func FromBox[E, S any](b when.Box[S], onAbsent E) Result[E, S] {
	return when.Fold(b,
		func() Result[E, S] { return Err[E, S](onAbsent) },
		func(v S) Result[E, S] { return Ok[E](v) },
	)
}
