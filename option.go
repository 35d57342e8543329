// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/pkg/errors"
)

// ErrEmpty is the panic value of [Option.Get] on an empty Option.
var ErrEmpty = errors.New("maybe: option is empty")

// Option holds zero or one value of type T.
//
// An empty Option always stores the zero value of T, so for comparable T
// the == operator on two Options coincides with Option equality:
// both empty, or both present with equal values.
type Option[T any] struct {
	ok    bool
	value T
}

// Some creates an Option holding v.
// A nil v yields None, so a present Option never holds nil; Some and
// [OfNullable] differ only in how they read at the call site.
func Some[T any](v T) Option[T] {
	return OfNullable(v)
}

// held creates a present Option even when v is nil.
// Only the hold slot of [TakeWhileCursor] uses it.
func held[T any](v T) Option[T] {
	return Option[T]{ok: true, value: v}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OfNullable creates an Option holding v, or an empty Option when v is nil.
// Nil is recognized for pointers, unsafe pointers, maps, slices, channels,
// functions and interfaces.
func OfNullable[T any](v T) Option[T] {
	if isNil(v) {
		return Option[T]{}
	}
	return Option[T]{ok: true, value: v}
}

// When returns Some(v) if cond holds, None otherwise.
func When[T any](cond bool, v T) Option[T] {
	if cond {
		return Some(v)
	}
	return None[T]()
}

// First returns the first element of s, or None if s is empty.
func First[T any](s []T) Option[T] {
	if len(s) == 0 {
		return None[T]()
	}
	return Some(s[0])
}

// IsPresent reports whether the Option holds a value.
func (o Option[T]) IsPresent() bool {
	return o.ok
}

// IsEmpty reports whether the Option holds nothing.
func (o Option[T]) IsEmpty() bool {
	return !o.ok
}

// Get returns the held value.
// Panics with [ErrEmpty] if the Option is empty.
func (o Option[T]) Get() T {
	if !o.ok {
		panic(ErrEmpty)
	}
	return o.value
}

// TryGet returns (value, true) if present, or (zero, false) if empty.
func (o Option[T]) TryGet() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the held value, or other if empty.
func (o Option[T]) OrElse(other T) T {
	if o.ok {
		return o.value
	}
	return other
}

// OrElseGet returns the held value, or the result of supply if empty.
// supply is not called when a value is present.
func (o Option[T]) OrElseGet(supply func() T) T {
	if o.ok {
		return o.value
	}
	return supply()
}

// Filter returns o if it is present and keep reports true for its value,
// otherwise None.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.ok && keep(o.value) {
		return o
	}
	return Option[T]{}
}

// Is reports whether o is present and its value satisfies pred.
func (o Option[T]) Is(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// IfPresent calls f with the held value, if any.
func (o Option[T]) IfPresent(f func(T)) {
	if o.ok {
		f(o.value)
	}
}

// Peek calls f with the held value, if any, and returns o unchanged.
func (o Option[T]) Peek(f func(T)) Option[T] {
	o.IfPresent(f)
	return o
}

// ToSlice returns a slice of length one holding the value, or nil if empty.
func (o Option[T]) ToSlice() []T {
	if !o.ok {
		return nil
	}
	return []T{o.value}
}

// All returns a sequence yielding the held value once, or nothing.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

// String formats the Option as Some(v) or None.
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies f to the held value and wraps the result with [OfNullable].
// f is never called on an empty Option.
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if !o.ok {
		return Option[R]{}
	}
	return OfNullable(f(o.value))
}

// FlatMap applies f to the held value and returns its Option unchanged.
func FlatMap[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if !o.ok {
		return Option[R]{}
	}
	return f(o.value)
}

// Equal reports whether a and b are both empty, or both present with equal values.
func Equal[T comparable](a, b Option[T]) bool {
	return a == b
}

// EqualFunc is like [Equal] using eq to compare present values.
func EqualFunc[T any](a, b Option[T], eq func(T, T) bool) bool {
	if a.ok != b.ok {
		return false
	}
	return !a.ok || eq(a.value, b.value)
}

// ToResult converts o into an Ok result, or an Err result carrying err when empty.
func ToResult[T, E any](o Option[T], err E) Result[T, E] {
	if o.ok {
		return Ok[T, E](o.value)
	}
	return Err[T](err)
}

// isNil reports whether v is a nil value of a nillable kind.
// The kind is checked on the static type first, so non-nillable types
// never reach reflect.ValueOf.
func isNil[T any](v T) bool {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Interface:
		return any(v) == nil
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return reflect.ValueOf(v).IsNil()
	default:
		return false
	}
}
