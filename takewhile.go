// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe

import "iter"

// TakeWhileCursor forwards elements of a source cursor while a condition
// holds. The first element that fails the condition is not forwarded;
// it is retained and available through [TakeWhileCursor.HoldValue].
//
// Once the condition has failed the cursor is latched: every later
// TryAdvance returns false without reading the source again.
//
// The source is owned by the TakeWhileCursor for its lifetime. Advancing
// the source through any other reference is undefined behavior.
// A latched cursor never exhausts its source, so a [PullCursor] source
// must still be released with Stop.
type TakeWhileCursor[T any] struct {
	source    Cursor[T]
	condition func(T) bool
	holds     bool
	hold      Option[T]
}

// TakeWhile wraps source so that traversal stops at the first element
// failing condition. The source is not advanced until the first TryAdvance.
func TakeWhile[T any](source Cursor[T], condition func(T) bool) *TakeWhileCursor[T] {
	return &TakeWhileCursor[T]{
		source:    source,
		condition: condition,
		holds:     true,
	}
}

// TryAdvance reads the next source element. If it satisfies the condition
// it is passed to action and TryAdvance returns true. Otherwise the element
// is held, the cursor latches, and TryAdvance returns false.
// Returns false when the source is exhausted.
func (c *TakeWhileCursor[T]) TryAdvance(action func(T)) bool {
	if !c.holds {
		return false
	}
	advanced := c.source.TryAdvance(func(e T) {
		if c.condition(e) {
			action(e)
			return
		}
		c.holds = false
		c.hold = held(e)
	})
	return advanced && c.holds
}

// TrySplit always returns (nil, false): the held element and the latch
// cannot be shared between sub-traversals.
func (c *TakeWhileCursor[T]) TrySplit() (Cursor[T], bool) {
	return nil, false
}

// EstimateSize always returns [SizeUnknown]. How many elements will be
// forwarded depends on elements not yet read.
func (c *TakeWhileCursor[T]) EstimateSize() int64 {
	return SizeUnknown
}

// HoldValue returns the first element that failed the condition, or None
// if no element has failed so far. The held element is reported as present
// even when it is a nil pointer or interface; such an Option cannot be
// encoded and fails with [ErrNilValue].
func (c *TakeWhileCursor[T]) HoldValue() Option[T] {
	return c.hold
}

// All returns the forwarded elements as a sequence. Ranging consumes c;
// query HoldValue afterwards for the element that stopped traversal.
func (c *TakeWhileCursor[T]) All() iter.Seq[T] {
	return Seq[T](c)
}
