// seehuhn.de/go/solid - rendering of implicit-function solids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package tree implements scalar expression trees over the coordinates
// x, y and z, with point, interval and gradient evaluation.  Trees
// satisfy the solid.Field contract, so they can be rendered directly.
//
// Solids are modelled as the region where the expression is negative.
// Set operations follow the usual min/max encoding: the union of two
// solids is the minimum of their expressions, the intersection the
// maximum.
package tree

import "seehuhn.de/go/solid"

type opcode uint8

const (
	opX opcode = iota
	opY
	opZ
	opConst

	opNeg
	opSquare
	opSqrt
	opAbs
	opSin
	opCos
	opExp
	opLog

	opAdd
	opSub
	opMul
	opDiv
	opMin
	opMax
)

// Tree is a node of an expression tree.  Trees are immutable once
// built; sub-trees may be shared between expressions and evaluation is
// safe for concurrent use.
type Tree struct {
	op   opcode
	a, b *Tree
	val  float64
}

var _ solid.Field = (*Tree)(nil)

// X returns the coordinate expression x.
func X() *Tree { return &Tree{op: opX} }

// Y returns the coordinate expression y.
func Y() *Tree { return &Tree{op: opY} }

// Z returns the coordinate expression z.
func Z() *Tree { return &Tree{op: opZ} }

// Const returns the constant expression v.
func Const(v float64) *Tree { return &Tree{op: opConst, val: v} }

// Neg returns -a.
func Neg(a *Tree) *Tree { return &Tree{op: opNeg, a: a} }

// Square returns a².
func Square(a *Tree) *Tree { return &Tree{op: opSquare, a: a} }

// Sqrt returns the square root of a.
func Sqrt(a *Tree) *Tree { return &Tree{op: opSqrt, a: a} }

// Abs returns |a|.
func Abs(a *Tree) *Tree { return &Tree{op: opAbs, a: a} }

// Sin returns the sine of a.
func Sin(a *Tree) *Tree { return &Tree{op: opSin, a: a} }

// Cos returns the cosine of a.
func Cos(a *Tree) *Tree { return &Tree{op: opCos, a: a} }

// Exp returns e**a.
func Exp(a *Tree) *Tree { return &Tree{op: opExp, a: a} }

// Log returns the natural logarithm of a.
func Log(a *Tree) *Tree { return &Tree{op: opLog, a: a} }

// Add returns a + b.
func Add(a, b *Tree) *Tree { return &Tree{op: opAdd, a: a, b: b} }

// Sub returns a - b.
func Sub(a, b *Tree) *Tree { return &Tree{op: opSub, a: a, b: b} }

// Mul returns a * b.
func Mul(a, b *Tree) *Tree { return &Tree{op: opMul, a: a, b: b} }

// Div returns a / b.
func Div(a, b *Tree) *Tree { return &Tree{op: opDiv, a: a, b: b} }

// Min returns the pointwise minimum of a and b.
func Min(a, b *Tree) *Tree { return &Tree{op: opMin, a: a, b: b} }

// Max returns the pointwise maximum of a and b.
func Max(a, b *Tree) *Tree { return &Tree{op: opMax, a: a, b: b} }

// Union returns the solid containing the points of any argument.
func Union(a *Tree, more ...*Tree) *Tree {
	for _, t := range more {
		a = Min(a, t)
	}
	return a
}

// Intersect returns the solid containing the points common to all
// arguments.
func Intersect(a *Tree, more ...*Tree) *Tree {
	for _, t := range more {
		a = Max(a, t)
	}
	return a
}

// Difference returns the solid a with b removed.
func Difference(a, b *Tree) *Tree {
	return Max(a, Neg(b))
}
