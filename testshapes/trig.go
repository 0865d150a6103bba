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

package testshapes

import "seehuhn.de/go/solid/tree"

// gyroid returns the triply periodic gyroid surface at frequency k,
// thickened into a shell of the given half-width.
func gyroid(k, width float64) *tree.Tree {
	kx := tree.Mul(tree.Const(k), tree.X())
	ky := tree.Mul(tree.Const(k), tree.Y())
	kz := tree.Mul(tree.Const(k), tree.Z())
	g := tree.Add(
		tree.Add(
			tree.Mul(tree.Sin(kx), tree.Cos(ky)),
			tree.Mul(tree.Sin(ky), tree.Cos(kz))),
		tree.Mul(tree.Sin(kz), tree.Cos(kx)))
	return tree.Sub(tree.Abs(g), tree.Const(width))
}

var trigShapes = []TestShape{
	{
		Name:  "gyroid_ball",
		Field: tree.Intersect(sphereAt(0, 0, 0, 0.8), gyroid(7, 0.3)),
		N:     128,
	},
	{
		Name: "ripple",
		// A height field z = 0.3·cos(4·r²) turned into a solid.
		Field: tree.Sub(
			tree.Z(),
			tree.Mul(
				tree.Const(0.3),
				tree.Cos(tree.Mul(
					tree.Const(4),
					tree.Add(tree.Square(tree.X()), tree.Square(tree.Y())))))),
		N: 128,
	},
}
