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

// Package testshapes provides named example solids for tests,
// benchmarks and the export/genpdf tools.  All shapes fit inside the
// unit cube sampled by render tasks.
package testshapes

import (
	"seehuhn.de/go/solid"
	"seehuhn.de/go/solid/tree"
)

// TestShape defines a single renderable solid.
type TestShape struct {
	Name  string       // lowercase a-z and _ only
	Field solid.Field  // the solid, negative inside
	View  *solid.Mat4  // view matrix (nil means identity)
	N     int          // suggested resolution per axis
}

// ViewMatrix returns the shape's view matrix, defaulting to identity.
func (tc TestShape) ViewMatrix() solid.Mat4 {
	if tc.View == nil {
		return solid.Identity
	}
	return *tc.View
}

// sphereAt returns a sphere of radius r centred at (cx, cy, cz).
func sphereAt(cx, cy, cz, r float64) *tree.Tree {
	return tree.Sub(
		tree.Add(
			tree.Add(
				tree.Square(tree.Sub(tree.X(), tree.Const(cx))),
				tree.Square(tree.Sub(tree.Y(), tree.Const(cy)))),
			tree.Square(tree.Sub(tree.Z(), tree.Const(cz)))),
		tree.Const(r*r))
}

// box returns an axis-aligned box with half-extents (a, b, c).
func box(a, b, c float64) *tree.Tree {
	return tree.Intersect(
		tree.Sub(tree.Abs(tree.X()), tree.Const(a)),
		tree.Sub(tree.Abs(tree.Y()), tree.Const(b)),
		tree.Sub(tree.Abs(tree.Z()), tree.Const(c)))
}
