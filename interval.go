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

package solid

import "math"

// Interval is a closed range [Lo, Hi] of real numbers.
//
// Every operation is sound: the result contains f(a, b) for all a in the
// first operand and b in the second.  Tightness is best-effort.  All
// operations are total; inputs outside a function's domain produce NaN
// bounds, which the sampler treats as inconclusive.
type Interval struct {
	Lo, Hi float64
}

// IntervalOf returns the degenerate interval [v, v].
func IntervalOf(v float64) Interval {
	return Interval{v, v}
}

// Contains reports whether v lies within the interval.
func (x Interval) Contains(v float64) bool {
	return v >= x.Lo && v <= x.Hi
}

// Add returns x + y.
func (x Interval) Add(y Interval) Interval {
	return Interval{x.Lo + y.Lo, x.Hi + y.Hi}
}

// Sub returns x - y.
func (x Interval) Sub(y Interval) Interval {
	return Interval{x.Lo - y.Hi, x.Hi - y.Lo}
}

// Neg returns -x.
func (x Interval) Neg() Interval {
	return Interval{-x.Hi, -x.Lo}
}

// Mul returns x * y.
func (x Interval) Mul(y Interval) Interval {
	a := x.Lo * y.Lo
	b := x.Lo * y.Hi
	c := x.Hi * y.Lo
	d := x.Hi * y.Hi
	return Interval{
		math.Min(math.Min(a, b), math.Min(c, d)),
		math.Max(math.Max(a, b), math.Max(c, d)),
	}
}

// MulScalar returns x scaled by the constant s.
func (x Interval) MulScalar(s float64) Interval {
	if s >= 0 {
		return Interval{x.Lo * s, x.Hi * s}
	}
	return Interval{x.Hi * s, x.Lo * s}
}

// AddScalar returns x shifted by the constant s.
func (x Interval) AddScalar(s float64) Interval {
	return Interval{x.Lo + s, x.Hi + s}
}

// Div returns x / y.  If y contains zero the result is the whole real
// line, which is the tightest closed interval covering the quotient set.
func (x Interval) Div(y Interval) Interval {
	if y.Lo <= 0 && y.Hi >= 0 {
		return Interval{math.Inf(-1), math.Inf(1)}
	}
	return x.Mul(Interval{1 / y.Hi, 1 / y.Lo})
}

// Min returns the elementwise minimum min(x, y).
func (x Interval) Min(y Interval) Interval {
	return Interval{math.Min(x.Lo, y.Lo), math.Min(x.Hi, y.Hi)}
}

// Max returns the elementwise maximum max(x, y).
func (x Interval) Max(y Interval) Interval {
	return Interval{math.Max(x.Lo, y.Lo), math.Max(x.Hi, y.Hi)}
}

// Square returns x², which is tighter than x.Mul(x) when x straddles
// zero.
func (x Interval) Square() Interval {
	a := x.Lo * x.Lo
	b := x.Hi * x.Hi
	if x.Lo <= 0 && x.Hi >= 0 {
		return Interval{0, math.Max(a, b)}
	}
	return Interval{math.Min(a, b), math.Max(a, b)}
}

// Abs returns |x|.
func (x Interval) Abs() Interval {
	if x.Lo >= 0 {
		return x
	}
	if x.Hi <= 0 {
		return Interval{-x.Hi, -x.Lo}
	}
	return Interval{0, math.Max(-x.Lo, x.Hi)}
}

// Sqrt returns the square root of x, restricted to the non-negative part
// of the input.  If x is entirely negative the result has NaN bounds.
func (x Interval) Sqrt() Interval {
	if x.Hi < 0 {
		return Interval{math.NaN(), math.NaN()}
	}
	lo := math.Max(x.Lo, 0)
	return Interval{math.Sqrt(lo), math.Sqrt(x.Hi)}
}

// Exp returns e**x.
func (x Interval) Exp() Interval {
	return Interval{math.Exp(x.Lo), math.Exp(x.Hi)}
}

// Log returns the natural logarithm of x, restricted to the positive
// part of the input.  If x is entirely non-positive the result has NaN
// bounds.
func (x Interval) Log() Interval {
	if x.Hi <= 0 {
		return Interval{math.NaN(), math.NaN()}
	}
	if x.Lo <= 0 {
		return Interval{math.Inf(-1), math.Log(x.Hi)}
	}
	return Interval{math.Log(x.Lo), math.Log(x.Hi)}
}

// Cos returns the cosine of x.
func (x Interval) Cos() Interval {
	if math.IsNaN(x.Lo) || math.IsNaN(x.Hi) || x.Hi-x.Lo >= 2*math.Pi {
		return Interval{-1, 1}
	}

	lo := math.Cos(x.Lo)
	hi := math.Cos(x.Hi)
	if lo > hi {
		lo, hi = hi, lo
	}

	// Cosine attains ±1 at multiples of π; widen the endpoint range for
	// every such extremum inside the interval.
	k0 := math.Ceil(x.Lo / math.Pi)
	k1 := math.Floor(x.Hi / math.Pi)
	for k := k0; k <= k1; k++ {
		if math.Mod(k, 2) == 0 {
			hi = 1
		} else {
			lo = -1
		}
	}
	return Interval{lo, hi}
}

// Sin returns the sine of x.
func (x Interval) Sin() Interval {
	// sin(t) = cos(t - π/2)
	return Interval{x.Lo - math.Pi/2, x.Hi - math.Pi/2}.Cos()
}
