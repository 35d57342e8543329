// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe

import "iter"

// Traversal protocol.
// A Cursor is a single-pass source of elements, consumed one TryAdvance at a time.
// Cursors are not safe for concurrent use; a cursor is owned by one consumer.

// SizeUnknown is returned by [Cursor.EstimateSize] when the number of
// remaining elements cannot be known in advance.
const SizeUnknown int64 = -1

// Cursor is a single-pass element source.
type Cursor[T any] interface {
	// TryAdvance passes the next element to action and returns true,
	// or returns false without calling action when no element remains.
	// action is called at most once per TryAdvance.
	TryAdvance(action func(T)) bool

	// TrySplit moves a prefix of the remaining elements into a new cursor.
	// Returns (nil, false) if the cursor cannot be split.
	TrySplit() (Cursor[T], bool)

	// EstimateSize returns the number of remaining elements, or SizeUnknown.
	EstimateSize() int64
}

// sliceCursor traverses a slice from index to the end.
type sliceCursor[T any] struct {
	s     []T
	index int
}

// FromSlice creates a splittable, exactly sized cursor over s.
// The slice is not copied.
func FromSlice[T any](s []T) Cursor[T] {
	return &sliceCursor[T]{s: s}
}

func (c *sliceCursor[T]) TryAdvance(action func(T)) bool {
	if c.index >= len(c.s) {
		return false
	}
	e := c.s[c.index]
	c.index++
	action(e)
	return true
}

// TrySplit hands the first half of the remaining elements to the new cursor
// and keeps the second half.
func (c *sliceCursor[T]) TrySplit() (Cursor[T], bool) {
	rest := len(c.s) - c.index
	if rest < 2 {
		return nil, false
	}
	mid := c.index + rest/2
	prefix := &sliceCursor[T]{s: c.s[c.index:mid]}
	c.index = mid
	return prefix, true
}

func (c *sliceCursor[T]) EstimateSize() int64 {
	return int64(len(c.s) - c.index)
}

// PullCursor adapts an [iter.Seq] to the Cursor protocol using [iter.Pull].
// Unsplittable and of unknown size.
type PullCursor[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// FromSeq creates a cursor pulling elements from seq.
// The cursor releases seq when it is exhausted; call Stop to release it earlier.
func FromSeq[T any](seq iter.Seq[T]) *PullCursor[T] {
	next, stop := iter.Pull(seq)
	return &PullCursor[T]{next: next, stop: stop}
}

// TryAdvance pulls the next element and passes it to action.
// Releases the sequence when it is exhausted.
func (c *PullCursor[T]) TryAdvance(action func(T)) bool {
	if c.done {
		return false
	}
	e, ok := c.next()
	if !ok {
		c.Stop()
		return false
	}
	action(e)
	return true
}

// TrySplit always returns (nil, false).
func (c *PullCursor[T]) TrySplit() (Cursor[T], bool) { return nil, false }

// EstimateSize always returns [SizeUnknown].
func (c *PullCursor[T]) EstimateSize() int64 { return SizeUnknown }

// Stop releases the underlying sequence. Later TryAdvance calls return false.
// Stop is idempotent.
func (c *PullCursor[T]) Stop() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}

// Seq adapts c to an [iter.Seq]. Ranging over the result consumes c.
func Seq[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		more := true
		for more && c.TryAdvance(func(e T) { more = yield(e) }) {
		}
	}
}

// Collect drains c into a slice.
func Collect[T any](c Cursor[T]) []T {
	var out []T
	for c.TryAdvance(func(e T) { out = append(out, e) }) {
	}
	return out
}
