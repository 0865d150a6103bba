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

// Mat4 is a 4×4 transform matrix in row-major order.  The bottom row
// must be (0, 0, 0, 1): only affine transforms are supported.
type Mat4 struct {
	M [4][4]float64
}

// Identity is the identity transform.
var Identity = Mat4{M: [4][4]float64{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) Mat4 {
	m := Identity
	m.M[0][3] = x
	m.M[1][3] = y
	m.M[2][3] = z
	return m
}

// Scale returns a scaling by (x, y, z) about the origin.
func Scale(x, y, z float64) Mat4 {
	m := Identity
	m.M[0][0] = x
	m.M[1][1] = y
	m.M[2][2] = z
	return m
}

// RotateX returns a rotation by angle radians about the x axis.
func RotateX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity
	m.M[1][1], m.M[1][2] = c, -s
	m.M[2][1], m.M[2][2] = s, c
	return m
}

// RotateY returns a rotation by angle radians about the y axis.
func RotateY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity
	m.M[0][0], m.M[0][2] = c, s
	m.M[2][0], m.M[2][2] = -s, c
	return m
}

// RotateZ returns a rotation by angle radians about the z axis.
func RotateZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	m := Identity
	m.M[0][0], m.M[0][1] = c, -s
	m.M[1][0], m.M[1][1] = s, c
	return m
}

// Mul returns the matrix product a × b, so that the combined transform
// applies b first and then a.
func (a Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := range 4 {
		for j := range 4 {
			var sum float64
			for k := range 4 {
				sum += a.M[i][k] * b.M[k][j]
			}
			r.M[i][j] = sum
		}
	}
	return r
}

// Apply transforms the point (x, y, z).
func (a Mat4) Apply(x, y, z float64) (float64, float64, float64) {
	return a.M[0][0]*x + a.M[0][1]*y + a.M[0][2]*z + a.M[0][3],
		a.M[1][0]*x + a.M[1][1]*y + a.M[1][2]*z + a.M[1][3],
		a.M[2][0]*x + a.M[2][1]*y + a.M[2][2]*z + a.M[2][3]
}

// ApplyInterval transforms an axis-aligned box, given as one interval
// per axis, into intervals bounding the transformed box.
func (a Mat4) ApplyInterval(x, y, z Interval) (Interval, Interval, Interval) {
	xx := x.MulScalar(a.M[0][0]).Add(y.MulScalar(a.M[0][1])).Add(z.MulScalar(a.M[0][2])).AddScalar(a.M[0][3])
	yy := x.MulScalar(a.M[1][0]).Add(y.MulScalar(a.M[1][1])).Add(z.MulScalar(a.M[1][2])).AddScalar(a.M[1][3])
	zz := x.MulScalar(a.M[2][0]).Add(y.MulScalar(a.M[2][1])).Add(z.MulScalar(a.M[2][2])).AddScalar(a.M[2][3])
	return xx, yy, zz
}

// ApplyTransposeLinear applies the transpose of the linear 3×3 part to
// the vector (x, y, z).  This is the transform for gradients: if a maps
// device space to model space, a gradient evaluated in model space pulls
// back to device space through the transposed linear part.
func (a Mat4) ApplyTransposeLinear(x, y, z float64) (float64, float64, float64) {
	return a.M[0][0]*x + a.M[1][0]*y + a.M[2][0]*z,
		a.M[0][1]*x + a.M[1][1]*y + a.M[2][1]*z,
		a.M[0][2]*x + a.M[1][2]*y + a.M[2][2]*z
}

// Invert returns the inverse transform.  It returns ErrSingularMatrix if
// the linear part is singular.
func (a Mat4) Invert() (Mat4, error) {
	m := &a.M

	// Cofactor inverse of the linear 3×3 part.
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]

	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	if math.Abs(det) < minMatrixDet || math.IsNaN(det) {
		return Mat4{}, ErrSingularMatrix
	}
	inv := 1 / det

	var r Mat4
	r.M[0][0] = c00 * inv
	r.M[1][0] = c01 * inv
	r.M[2][0] = c02 * inv
	r.M[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv
	r.M[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv
	r.M[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv
	r.M[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv
	r.M[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv
	r.M[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv

	// Inverse translation: -A⁻¹·t
	tx, ty, tz := m[0][3], m[1][3], m[2][3]
	r.M[0][3] = -(r.M[0][0]*tx + r.M[0][1]*ty + r.M[0][2]*tz)
	r.M[1][3] = -(r.M[1][0]*tx + r.M[1][1]*ty + r.M[1][2]*tz)
	r.M[2][3] = -(r.M[2][0]*tx + r.M[2][1]*ty + r.M[2][2]*tz)

	r.M[3][3] = 1
	return r, nil
}

// minMatrixDet is the smallest determinant magnitude accepted by Invert.
// Smaller values are treated as singular.
const minMatrixDet = 1e-12
