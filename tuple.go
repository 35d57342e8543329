// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package maybe

import "fmt"

// Pair holds two values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf creates a Pair.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("['%v', '%v']", p.First, p.Second)
}

// Triple holds three values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// TripleOf creates a Triple.
func TripleOf[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

func (t Triple[A, B, C]) String() string {
	return fmt.Sprintf("['%v', '%v', '%v']", t.First, t.Second, t.Third)
}

// Quad holds four values.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// QuadOf creates a Quad.
func QuadOf[A, B, C, D any](a A, b B, c C, d D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}
}

func (q Quad[A, B, C, D]) String() string {
	return fmt.Sprintf("['%v', '%v', '%v', '%v']", q.First, q.Second, q.Third, q.Fourth)
}

// AddPair appends c to p, producing a Triple.
func AddPair[A, B, C any](p Pair[A, B], c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: p.First, Second: p.Second, Third: c}
}

// AddTriple appends d to t, producing a Quad.
func AddTriple[A, B, C, D any](t Triple[A, B, C], d D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{First: t.First, Second: t.Second, Third: t.Third, Fourth: d}
}
