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

package tree

import (
	"math"

	"seehuhn.de/go/solid"
)

// Eval returns the value of the expression at a point.
func (t *Tree) Eval(x, y, z float64) float64 {
	switch t.op {
	case opX:
		return x
	case opY:
		return y
	case opZ:
		return z
	case opConst:
		return t.val

	case opNeg:
		return -t.a.Eval(x, y, z)
	case opSquare:
		v := t.a.Eval(x, y, z)
		return v * v
	case opSqrt:
		return math.Sqrt(t.a.Eval(x, y, z))
	case opAbs:
		return math.Abs(t.a.Eval(x, y, z))
	case opSin:
		return math.Sin(t.a.Eval(x, y, z))
	case opCos:
		return math.Cos(t.a.Eval(x, y, z))
	case opExp:
		return math.Exp(t.a.Eval(x, y, z))
	case opLog:
		return math.Log(t.a.Eval(x, y, z))

	case opAdd:
		return t.a.Eval(x, y, z) + t.b.Eval(x, y, z)
	case opSub:
		return t.a.Eval(x, y, z) - t.b.Eval(x, y, z)
	case opMul:
		return t.a.Eval(x, y, z) * t.b.Eval(x, y, z)
	case opDiv:
		return t.a.Eval(x, y, z) / t.b.Eval(x, y, z)
	case opMin:
		return math.Min(t.a.Eval(x, y, z), t.b.Eval(x, y, z))
	case opMax:
		return math.Max(t.a.Eval(x, y, z), t.b.Eval(x, y, z))
	}
	panic("tree: invalid opcode")
}

// EvalInterval bounds the expression over an axis-aligned box.
func (t *Tree) EvalInterval(x, y, z solid.Interval) solid.Interval {
	switch t.op {
	case opX:
		return x
	case opY:
		return y
	case opZ:
		return z
	case opConst:
		return solid.IntervalOf(t.val)

	case opNeg:
		return t.a.EvalInterval(x, y, z).Neg()
	case opSquare:
		return t.a.EvalInterval(x, y, z).Square()
	case opSqrt:
		return t.a.EvalInterval(x, y, z).Sqrt()
	case opAbs:
		return t.a.EvalInterval(x, y, z).Abs()
	case opSin:
		return t.a.EvalInterval(x, y, z).Sin()
	case opCos:
		return t.a.EvalInterval(x, y, z).Cos()
	case opExp:
		return t.a.EvalInterval(x, y, z).Exp()
	case opLog:
		return t.a.EvalInterval(x, y, z).Log()

	case opAdd:
		return t.a.EvalInterval(x, y, z).Add(t.b.EvalInterval(x, y, z))
	case opSub:
		return t.a.EvalInterval(x, y, z).Sub(t.b.EvalInterval(x, y, z))
	case opMul:
		return t.a.EvalInterval(x, y, z).Mul(t.b.EvalInterval(x, y, z))
	case opDiv:
		return t.a.EvalInterval(x, y, z).Div(t.b.EvalInterval(x, y, z))
	case opMin:
		return t.a.EvalInterval(x, y, z).Min(t.b.EvalInterval(x, y, z))
	case opMax:
		return t.a.EvalInterval(x, y, z).Max(t.b.EvalInterval(x, y, z))
	}
	panic("tree: invalid opcode")
}

// Grad returns the gradient of the expression at a point, computed by
// forward-mode differentiation.
func (t *Tree) Grad(x, y, z float64) (float64, float64, float64) {
	d := t.deriv(x, y, z)
	return d.dx, d.dy, d.dz
}

// deriv4 carries a value and its three partial derivatives.
type deriv4 struct {
	v, dx, dy, dz float64
}

func (t *Tree) deriv(x, y, z float64) deriv4 {
	switch t.op {
	case opX:
		return deriv4{v: x, dx: 1}
	case opY:
		return deriv4{v: y, dy: 1}
	case opZ:
		return deriv4{v: z, dz: 1}
	case opConst:
		return deriv4{v: t.val}
	}

	a := t.a.deriv(x, y, z)
	switch t.op {
	case opNeg:
		return deriv4{-a.v, -a.dx, -a.dy, -a.dz}
	case opSquare:
		return deriv4{a.v * a.v, 2 * a.v * a.dx, 2 * a.v * a.dy, 2 * a.v * a.dz}
	case opSqrt:
		s := math.Sqrt(a.v)
		k := 1 / (2 * s)
		return deriv4{s, k * a.dx, k * a.dy, k * a.dz}
	case opAbs:
		sign := math.Copysign(1, a.v)
		return deriv4{math.Abs(a.v), sign * a.dx, sign * a.dy, sign * a.dz}
	case opSin:
		c := math.Cos(a.v)
		return deriv4{math.Sin(a.v), c * a.dx, c * a.dy, c * a.dz}
	case opCos:
		s := -math.Sin(a.v)
		return deriv4{math.Cos(a.v), s * a.dx, s * a.dy, s * a.dz}
	case opExp:
		e := math.Exp(a.v)
		return deriv4{e, e * a.dx, e * a.dy, e * a.dz}
	case opLog:
		k := 1 / a.v
		return deriv4{math.Log(a.v), k * a.dx, k * a.dy, k * a.dz}
	}

	b := t.b.deriv(x, y, z)
	switch t.op {
	case opAdd:
		return deriv4{a.v + b.v, a.dx + b.dx, a.dy + b.dy, a.dz + b.dz}
	case opSub:
		return deriv4{a.v - b.v, a.dx - b.dx, a.dy - b.dy, a.dz - b.dz}
	case opMul:
		return deriv4{
			a.v * b.v,
			a.dx*b.v + a.v*b.dx,
			a.dy*b.v + a.v*b.dy,
			a.dz*b.v + a.v*b.dz,
		}
	case opDiv:
		k := 1 / (b.v * b.v)
		return deriv4{
			a.v / b.v,
			(a.dx*b.v - a.v*b.dx) * k,
			(a.dy*b.v - a.v*b.dy) * k,
			(a.dz*b.v - a.v*b.dz) * k,
		}
	case opMin:
		// At ties the left branch wins, matching Eval's math.Min for
		// the value but fixing one sub-gradient.
		if a.v <= b.v {
			return a
		}
		return b
	case opMax:
		if a.v >= b.v {
			return a
		}
		return b
	}
	panic("tree: invalid opcode")
}
