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

import (
	"math"
	"math/rand"
	"testing"
)

// TestIntervalSoundness checks the containment guarantee: for random
// interval pairs and random concrete values drawn from them, the
// concrete result of every operation lies within the interval result.
func TestIntervalSoundness(t *testing.T) {
	binary := []struct {
		name     string
		interval func(x, y Interval) Interval
		point    func(a, b float64) float64
	}{
		{"add", Interval.Add, func(a, b float64) float64 { return a + b }},
		{"sub", Interval.Sub, func(a, b float64) float64 { return a - b }},
		{"mul", Interval.Mul, func(a, b float64) float64 { return a * b }},
		{"div", Interval.Div, func(a, b float64) float64 { return a / b }},
		{"min", Interval.Min, math.Min},
		{"max", Interval.Max, math.Max},
	}
	unary := []struct {
		name     string
		interval func(x Interval) Interval
		point    func(a float64) float64
	}{
		{"neg", Interval.Neg, func(a float64) float64 { return -a }},
		{"square", Interval.Square, func(a float64) float64 { return a * a }},
		{"sqrt", Interval.Sqrt, math.Sqrt},
		{"abs", Interval.Abs, math.Abs},
		{"sin", Interval.Sin, math.Sin},
		{"cos", Interval.Cos, math.Cos},
		{"exp", Interval.Exp, math.Exp},
		{"log", Interval.Log, math.Log},
	}

	rng := rand.New(rand.NewSource(1))
	randInterval := func() Interval {
		a := (rng.Float64() - 0.5) * 20
		b := (rng.Float64() - 0.5) * 20
		if a > b {
			a, b = b, a
		}
		return Interval{a, b}
	}
	sample := func(x Interval) float64 {
		return x.Lo + rng.Float64()*(x.Hi-x.Lo)
	}

	const eps = 1e-9
	for range 1000 {
		x := randInterval()
		y := randInterval()

		for _, op := range binary {
			got := op.interval(x, y)
			if math.IsNaN(got.Lo) || math.IsNaN(got.Hi) {
				continue // inconclusive result, trivially sound
			}
			for range 8 {
				a, b := sample(x), sample(y)
				v := op.point(a, b)
				if math.IsNaN(v) {
					continue
				}
				if v < got.Lo-eps || v > got.Hi+eps {
					t.Fatalf("%s(%v, %v): value %g at (%g, %g) outside [%g, %g]",
						op.name, x, y, v, a, b, got.Lo, got.Hi)
				}
			}
		}

		for _, op := range unary {
			got := op.interval(x)
			if math.IsNaN(got.Lo) || math.IsNaN(got.Hi) {
				continue
			}
			for range 8 {
				a := sample(x)
				v := op.point(a)
				if math.IsNaN(v) {
					continue
				}
				if v < got.Lo-eps || v > got.Hi+eps {
					t.Fatalf("%s(%v): value %g at %g outside [%g, %g]",
						op.name, x, v, a, got.Lo, got.Hi)
				}
			}
		}
	}
}

func TestIntervalCos(t *testing.T) {
	const eps = 1e-12
	cases := []struct {
		in   Interval
		want Interval
	}{
		{Interval{0, math.Pi}, Interval{-1, 1}},
		{Interval{-math.Pi / 4, math.Pi / 4}, Interval{math.Cos(math.Pi / 4), 1}},
		{Interval{math.Pi / 4, math.Pi / 2}, Interval{0, math.Cos(math.Pi / 4)}},
		{Interval{0, 100}, Interval{-1, 1}},
		{Interval{3 * math.Pi / 4, 5 * math.Pi / 4}, Interval{-1, math.Cos(3 * math.Pi / 4)}},
	}
	for _, c := range cases {
		got := c.in.Cos()
		if math.Abs(got.Lo-c.want.Lo) > eps || math.Abs(got.Hi-c.want.Hi) > eps {
			t.Errorf("Cos(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestIntervalDivByZero(t *testing.T) {
	got := Interval{1, 2}.Div(Interval{-1, 1})
	if !math.IsInf(got.Lo, -1) || !math.IsInf(got.Hi, 1) {
		t.Errorf("division by interval containing zero: got %v, want whole line", got)
	}
}

func TestIntervalSquareStraddle(t *testing.T) {
	got := Interval{-2, 3}.Square()
	if got.Lo != 0 || got.Hi != 9 {
		t.Errorf("Square([-2, 3]) = %v, want [0, 9]", got)
	}
}

func TestIntervalDomainViolations(t *testing.T) {
	if got := (Interval{-2, -1}).Sqrt(); !math.IsNaN(got.Lo) {
		t.Errorf("Sqrt of negative interval: got %v, want NaN bounds", got)
	}
	if got := (Interval{-2, -1}).Log(); !math.IsNaN(got.Lo) {
		t.Errorf("Log of non-positive interval: got %v, want NaN bounds", got)
	}
	if got := (Interval{-1, 4}).Sqrt(); got.Lo != 0 || got.Hi != 2 {
		t.Errorf("Sqrt([-1, 4]) = %v, want [0, 2]", got)
	}
}
