// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotOk is the panic value of [Result.Get] on an Err result.
var ErrNotOk = errors.New("maybe: result is not ok")

// Result represents either a success value V (Ok) or a failure E (Err).
type Result[V, E any] struct {
	isOk  bool
	value V
	err   E
}

// Ok creates a successful Result.
func Ok[V, E any](v V) Result[V, E] {
	return Result[V, E]{isOk: true, value: v}
}

// Err creates a failed Result.
func Err[V, E any](e E) Result[V, E] {
	return Result[V, E]{err: e}
}

// IsOk returns true if this is a success.
func (r Result[V, E]) IsOk() bool {
	return r.isOk
}

// IsErr returns true if this is a failure.
func (r Result[V, E]) IsErr() bool {
	return !r.isOk
}

// Get returns the success value.
// Panics with [ErrNotOk] wrapping the failure if r is an Err.
func (r Result[V, E]) Get() V {
	if !r.isOk {
		panic(errors.Wrapf(ErrNotOk, "Err(%v)", r.err))
	}
	return r.value
}

// TryGet returns the success value and true, or zero and false.
func (r Result[V, E]) TryGet() (V, bool) {
	if r.isOk {
		return r.value, true
	}
	var zero V
	return zero, false
}

// TryGetErr returns the failure and true, or zero and false.
func (r Result[V, E]) TryGetErr() (E, bool) {
	if !r.isOk {
		return r.err, true
	}
	var zero E
	return zero, false
}

// OrElse returns the success value, or other on failure.
func (r Result[V, E]) OrElse(other V) V {
	if r.isOk {
		return r.value
	}
	return other
}

// Option drops the failure, keeping the success value if any.
func (r Result[V, E]) Option() Option[V] {
	if r.isOk {
		return Some(r.value)
	}
	return None[V]()
}

// ErrOption keeps the failure if any, dropping the success value.
func (r Result[V, E]) ErrOption() Option[E] {
	if r.isOk {
		return None[E]()
	}
	return Some(r.err)
}

// String formats the Result as Ok(v) or Err(e).
func (r Result[V, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[V, E, T any](r Result[V, E], onOk func(V) T, onErr func(E) T) T {
	if r.isOk {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// MapResult applies f to the success value.
func MapResult[V, E, W any](r Result[V, E], f func(V) W) Result[W, E] {
	if r.isOk {
		return Ok[W, E](f(r.value))
	}
	return Err[W](r.err)
}

// FlatMapResult sequences two Result computations.
func FlatMapResult[V, E, W any](r Result[V, E], f func(V) Result[W, E]) Result[W, E] {
	if r.isOk {
		return f(r.value)
	}
	return Err[W](r.err)
}

// MapErr applies f to the failure.
func MapErr[V, E, F any](r Result[V, E], f func(E) F) Result[V, F] {
	if r.isOk {
		return Ok[V, F](r.value)
	}
	return Err[V](f(r.err))
}
