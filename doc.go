// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package maybe provides functional value containers and a truncating
// traversal primitive in Go.
//
// The core type [Option] holds zero or one value. It is used throughout the
// package wherever a value may be absent, including as the report of where a
// [TakeWhileCursor] stopped.
//
// # Design Philosophy
//
// maybe provides:
//   - Immutable value types: every transformation returns a new value
//   - Explicit presence instead of nil: an empty Option carries the zero value,
//     so == on comparable Options is container equality
//   - Panics only for contract violations ([ErrEmpty], [ErrNotOk]); user
//     function panics propagate unchanged
//
// # Option
//
//   - [Some], [None], [OfNullable], [When], [First]: Constructors
//     ([Some] of nil is None: a present Option never holds nil, except the
//     element held by a [TakeWhileCursor])
//   - [Option.IsPresent], [Option.IsEmpty]: Predicates
//   - [Option.Get]: Accessor (panics with [ErrEmpty] when empty)
//   - [Option.TryGet], [Option.OrElse], [Option.OrElseGet]: Non-panicking accessors
//   - [Option.Filter], [Option.Is], [Option.IfPresent], [Option.Peek]
//   - [Option.ToSlice], [Option.All]: Conversion to collections and sequences
//   - [Map], [FlatMap]: Functor map and monadic bind
//   - [Equal], [EqualFunc]: Container equality
//   - [ToResult]: Conversion to [Result]
//
// Options encode as JSON and YAML, with None as null. A present Option
// holding nil cannot be encoded and fails with [ErrNilValue].
//
// # Result
//
// [Result] represents success (Ok) or failure (Err):
//
//   - [Ok], [Err]: Constructors
//   - [Result.IsOk], [Result.IsErr]: Predicates
//   - [Result.TryGet], [Result.TryGetErr]: Accessors
//   - [Result.Option], [Result.ErrOption]: Conversion to [Option]
//   - [MatchResult], [MapResult], [FlatMapResult], [MapErr]
//
// # Tuples
//
//   - [Pair], [Triple], [Quad] with [PairOf], [TripleOf], [QuadOf]
//   - [AddPair], [AddTriple]: Append a value, growing to the next tuple size
//
// # Decision Tables
//
// [Case] pairs a condition with a mapping. [Match] evaluates a list of
// cases in order and returns the result of the first match as an [Option].
//
// # Traversal
//
// [Cursor] is a single-pass source in the style of a spliterator: elements
// are pushed to a callback one [Cursor.TryAdvance] at a time, with optional
// splitting and size estimation.
//
//   - [FromSlice]: Splittable, exactly sized cursor over a slice
//   - [FromSeq]: Cursor pulling from an [iter.Seq]; call Stop when done
//   - [Seq], [Collect]: Consume a cursor
//   - [TakeWhile]: Forward elements while a condition holds
//
// [TakeWhileCursor] stops at the first element failing its condition and keeps
// that element instead of dropping it. It never splits and reports
// [SizeUnknown].
//
// # Example
//
//	tw := maybe.TakeWhile(maybe.FromSlice([]int{1, 2, 3, 4, 5}), func(x int) bool {
//		return x < 4
//	})
//	prefix := maybe.Collect[int](tw) // [1 2 3]
//	held := tw.HoldValue()           // Some(4)
//
// Package [code.hybscloud.com/maybe/optiontest] provides test assertions for Options.
package maybe
