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

var csgShapes = []TestShape{
	{
		Name:  "box_minus_sphere",
		Field: tree.Difference(box(0.5, 0.5, 0.5), sphereAt(0, 0, 0, 0.66)),
		View:  rotatedView,
		N:     128,
	},
	{
		Name: "two_spheres",
		Field: tree.Union(
			sphereAt(-0.35, 0, 0, 0.4),
			sphereAt(0.35, 0, 0, 0.4)),
		N: 128,
	},
	{
		Name: "lens",
		Field: tree.Intersect(
			sphereAt(0, 0, -0.25, 0.5),
			sphereAt(0, 0, 0.25, 0.5)),
		N: 128,
	},
	{
		Name: "pierced_box",
		Field: tree.Difference(
			box(0.5, 0.5, 0.5),
			tree.Sub(
				tree.Add(tree.Square(tree.X()), tree.Square(tree.Y())),
				tree.Const(0.09))),
		View: rotatedView,
		N:    128,
	},
}
