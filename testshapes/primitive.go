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

import (
	"seehuhn.de/go/solid"
	"seehuhn.de/go/solid/tree"
)

var rotatedView = rotXY()

func rotXY() *solid.Mat4 {
	m := solid.RotateX(0.4).Mul(solid.RotateY(0.6))
	return &m
}

var primitiveShapes = []TestShape{
	{
		Name:  "sphere",
		Field: sphereAt(0, 0, 0, 0.6),
		N:     128,
	},
	{
		Name:  "half_space",
		Field: tree.Z(),
		N:     64,
	},
	{
		Name:  "box",
		Field: box(0.5, 0.4, 0.3),
		N:     128,
	},
	{
		Name:  "box_rotated",
		Field: box(0.5, 0.4, 0.3),
		View:  rotatedView,
		N:     128,
	},
	{
		Name: "cylinder",
		Field: tree.Intersect(
			tree.Sub(
				tree.Add(tree.Square(tree.X()), tree.Square(tree.Y())),
				tree.Const(0.25)),
			tree.Sub(tree.Abs(tree.Z()), tree.Const(0.6))),
		N: 128,
	},
	{
		Name: "torus",
		Field: tree.Sub(
			tree.Add(
				tree.Square(tree.Sub(
					tree.Sqrt(tree.Add(tree.Square(tree.X()), tree.Square(tree.Y()))),
					tree.Const(0.5))),
				tree.Square(tree.Z())),
			tree.Const(0.04)),
		View: rotatedView,
		N:    128,
	},
}
