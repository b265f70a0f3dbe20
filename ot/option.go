package ot

import "fmt"

// Option holds a sub-structure of a table which may be absent. Tables link
// their parts by offsets, and a NULL offset yields an empty Option.
//
// The zero Option is empty.
type Option[T any] struct {
	v       T
	present bool
}

// Some wraps v as a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{v: v, present: true}
}

// None returns an empty Option of type T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome is true for present values.
func (o Option[T]) IsSome() bool { return o.present }

// IsNone is true for absent values.
func (o Option[T]) IsNone() bool { return !o.present }

// Unwrap returns the value, if present, in comma-ok style.
func (o Option[T]) Unwrap() (T, bool) {
	return o.v, o.present
}

// MustUnwrap returns the value and panics for an empty Option.
func (o Option[T]) MustUnwrap() T {
	if !o.present {
		panic(fmt.Sprintf("ot: MustUnwrap of empty Option[%T]", o.v))
	}
	return o.v
}

// Or returns the value, or def if the Option is empty.
func (o Option[T]) Or(def T) T {
	if !o.present {
		return def
	}
	return o.v
}

// String renders an empty Option as "none".
func (o Option[T]) String() string {
	if !o.present {
		return "none"
	}
	return fmt.Sprintf("%v", o.v)
}
