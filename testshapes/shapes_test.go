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
	"math"
	"regexp"
	"testing"

	"seehuhn.de/go/solid"
)

var nameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

func TestShapeNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, shapes := range All {
		if !nameRe.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		for _, tc := range shapes {
			if !nameRe.MatchString(tc.Name) {
				t.Errorf("invalid shape name %q", tc.Name)
			}
			full := category + "_" + tc.Name
			if seen[full] {
				t.Errorf("duplicate shape %q", full)
			}
			seen[full] = true
			if tc.Field == nil {
				t.Errorf("%s: no field", full)
			}
			if tc.N < 8 {
				t.Errorf("%s: resolution %d too small", full, tc.N)
			}
		}
	}
}

// TestShapesRender renders every shape at reduced resolution and checks
// that the pipeline completes and produces a visible surface with
// consistent depth and shading images.
func TestShapesRender(t *testing.T) {
	const n = 48
	for category, shapes := range All {
		for _, tc := range shapes {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				r, err := solid.NewRegion(-1, 1, -1, 1, -1, 1, n, n, n)
				if err != nil {
					t.Fatal(err)
				}
				v, err := solid.NewView(tc.Field, tc.ViewMatrix())
				if err != nil {
					t.Fatal(err)
				}

				depth, err := solid.Render(v, r)
				if err != nil {
					t.Fatal(err)
				}
				shaded, err := solid.Shade(v, r, depth)
				if err != nil {
					t.Fatal(err)
				}

				finite := 0
				for j := range n {
					for i := range n {
						d := depth.At(i, j)
						alpha := shaded.Pix[4*(j*n+i)+3]
						if math.IsInf(d, 1) {
							if alpha != 0 {
								t.Fatalf("background pixel (%d, %d) has alpha %d", i, j, alpha)
							}
							continue
						}
						finite++
						if d < 0 || d > 2 {
							t.Fatalf("pixel (%d, %d): depth %g outside the task region", i, j, d)
						}
						if alpha != 255 {
							t.Fatalf("surface pixel (%d, %d) has alpha %d", i, j, alpha)
						}
					}
				}
				if finite == 0 {
					t.Error("no surface visible")
				}
			})
		}
	}
}
