// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe

// Case pairs a condition with the mapping to apply when the condition holds.
// A slice of Cases forms an ordered, match-first decision table; see [Match].
type Case[T, R any] struct {
	condition func(T) bool
	mapping   func(T) R
}

// NewCase creates a Case. Panics if condition or mapping is nil.
func NewCase[T, R any](condition func(T) bool, mapping func(T) R) Case[T, R] {
	if condition == nil || mapping == nil {
		panic("maybe: case requires both condition and mapping")
	}
	return Case[T, R]{condition: condition, mapping: mapping}
}

// Condition returns the stored condition.
func (c Case[T, R]) Condition() func(T) bool { return c.condition }

// Mapping returns the stored mapping.
func (c Case[T, R]) Mapping() func(T) R { return c.mapping }

// Match scans cases in order and applies the mapping of the first case
// whose condition holds for v. Returns None if no case matches.
// Conditions after the first match are not evaluated.
func Match[T, R any](v T, cases ...Case[T, R]) Option[R] {
	for _, c := range cases {
		if c.condition(v) {
			return Some(c.mapping(v))
		}
	}
	return None[R]()
}
