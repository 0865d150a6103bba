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

// Field is the scalar field describing a solid: negative inside,
// positive outside, zero on the surface.  The sampler only uses this
// interface and never inspects the field's structure.
//
// Implementations must be safe for concurrent calls: the sampler
// evaluates disjoint sub-regions in parallel.
type Field interface {
	// Eval returns the field value at a point.
	Eval(x, y, z float64) float64

	// EvalInterval returns a sound bound on the field over the box
	// given by one interval per axis: the result must contain
	// Eval(px, py, pz) for every point of the box.
	EvalInterval(x, y, z Interval) Interval

	// Grad returns the gradient of the field at a point.
	Grad(x, y, z float64) (gx, gy, gz float64)
}

// FieldFunc adapts plain functions to the Field interface.  The
// IntervalFunc and GradFunc members may be nil, in which case
// EvalInterval returns the whole real line (sound but useless) and Grad
// returns a zero gradient.
type FieldFunc struct {
	EvalFunc     func(x, y, z float64) float64
	IntervalFunc func(x, y, z Interval) Interval
	GradFunc     func(x, y, z float64) (float64, float64, float64)
}

// Eval implements the Field interface.
func (f FieldFunc) Eval(x, y, z float64) float64 {
	return f.EvalFunc(x, y, z)
}

// EvalInterval implements the Field interface.
func (f FieldFunc) EvalInterval(x, y, z Interval) Interval {
	if f.IntervalFunc == nil {
		return Interval{math.Inf(-1), math.Inf(1)}
	}
	return f.IntervalFunc(x, y, z)
}

// Grad implements the Field interface.
func (f FieldFunc) Grad(x, y, z float64) (float64, float64, float64) {
	if f.GradFunc == nil {
		return 0, 0, 0
	}
	return f.GradFunc(x, y, z)
}

// View binds a field to a view transform for the duration of one
// sampling pass.  It is an immutable value: each render task constructs
// its own View, so no shared evaluation state is mutated while a pass
// is in flight.
//
// Mat maps device space (the sampled region) back to the field's model
// space, i.e. it is the inverse of the view matrix.
type View struct {
	Field Field
	Mat   Mat4
}

// NewView returns a View for the given view matrix, which maps model
// space to device space.  It returns ErrSingularMatrix if the matrix
// cannot be inverted.
func NewView(field Field, view Mat4) (View, error) {
	inv, err := view.Invert()
	if err != nil {
		return View{}, err
	}
	return View{Field: field, Mat: inv}, nil
}

// Eval returns the field value at a device-space point.
func (v View) Eval(x, y, z float64) float64 {
	mx, my, mz := v.Mat.Apply(x, y, z)
	return v.Field.Eval(mx, my, mz)
}

// EvalInterval bounds the field over a device-space box.
func (v View) EvalInterval(x, y, z Interval) Interval {
	mx, my, mz := v.Mat.ApplyInterval(x, y, z)
	return v.Field.EvalInterval(mx, my, mz)
}

// Normal returns the unit surface normal at a device-space point,
// pulled back through the view transform.  If the gradient vanishes the
// normal defaults to +z; if it is NaN, ok is false.
func (v View) Normal(x, y, z float64) (nx, ny, nz float64, ok bool) {
	mx, my, mz := v.Mat.Apply(x, y, z)
	gx, gy, gz := v.Field.Grad(mx, my, mz)
	nx, ny, nz = v.Mat.ApplyTransposeLinear(gx, gy, gz)

	n := math.Sqrt(nx*nx + ny*ny + nz*nz)
	if math.IsNaN(n) {
		return 0, 0, 0, false
	}
	if n == 0 {
		return 0, 0, 1, true
	}
	return nx / n, ny / n, nz / n, true
}
