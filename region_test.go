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
	"errors"
	"math"
	"testing"
)

func TestNewRegionDegenerate(t *testing.T) {
	cases := []struct {
		name       string
		x0, x1     float64
		ni, nj, nk int
	}{
		{"flat_x", 1, 1, 4, 4, 4},
		{"inverted_x", 1, -1, 4, 4, 4},
		{"zero_count", -1, 1, 0, 4, 4},
		{"negative_count", -1, 1, 4, -2, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewRegion(c.x0, c.x1, -1, 1, -1, 1, c.ni, c.nj, c.nk)
			if !errors.Is(err, ErrDegenerateRegion) {
				t.Errorf("got %v, want ErrDegenerateRegion", err)
			}
		})
	}
}

// TestRegionOctants checks that subdivision covers the parent exactly:
// cell count is preserved, the image footprint of each z half
// partitions the parent footprint, and child sample lattices coincide
// with the parent's.
func TestRegionOctants(t *testing.T) {
	r, err := NewRegion(-1, 1, -0.5, 1.5, -2, 0, 8, 6, 4)
	if err != nil {
		t.Fatal(err)
	}

	kids := r.Octants()
	if len(kids) != 8 {
		t.Fatalf("got %d children, want 8", len(kids))
	}

	cells := 0
	seen := make(map[[2]int]int) // footprint cell -> multiplicity
	for _, c := range kids {
		if err := c.Check(); err != nil {
			t.Fatalf("invalid child %+v: %v", c, err)
		}
		cells += c.NI * c.NJ * c.NK
		for j := range c.NJ {
			for i := range c.NI {
				seen[[2]int{c.I0 + i, c.J0 + j}]++
			}
		}
	}
	if want := r.NI * r.NJ * r.NK; cells != want {
		t.Errorf("children hold %d cells, want %d", cells, want)
	}

	// Each column appears once per z half.
	for j := range r.NJ {
		for i := range r.NI {
			if n := seen[[2]int{i, j}]; n != 2 {
				t.Errorf("column (%d, %d) covered %d times, want 2", i, j, n)
			}
		}
	}

	// Children are ordered near-to-far: the first four must touch the
	// near plane.
	for _, c := range kids[:4] {
		if c.Z1 != r.Z1 {
			t.Errorf("near child has Z1 = %g, want %g", c.Z1, r.Z1)
		}
	}
	for _, c := range kids[4:] {
		if c.Z1 == r.Z1 {
			t.Errorf("far child touches the near plane")
		}
	}

	// Sample lattice alignment.
	const eps = 1e-12
	for _, c := range kids {
		for i := range c.NI {
			if got, want := c.X(i), r.X(c.I0+i); math.Abs(got-want) > eps {
				t.Errorf("child X(%d) = %g, parent X(%d) = %g", i, got, c.I0+i, want)
			}
		}
		for j := range c.NJ {
			if got, want := c.Y(j), r.Y(c.J0+j); math.Abs(got-want) > eps {
				t.Errorf("child Y(%d) = %g, parent Y(%d) = %g", j, got, c.J0+j, want)
			}
		}
	}
}

func TestRegionOctantsOddCounts(t *testing.T) {
	r, err := NewRegion(-1, 1, -1, 1, -1, 1, 5, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	kids := r.Octants()
	if len(kids) != 4 {
		t.Fatalf("got %d children, want 4 (z not splittable)", len(kids))
	}
	ni := 0
	for _, c := range kids {
		if c.J0 == 0 && c.NJ != 1 {
			t.Errorf("low y half has %d rows, want 1", c.NJ)
		}
		if c.J0 == 0 {
			ni += c.NI
		}
	}
	if ni != 5 {
		t.Errorf("low y half spans %d columns, want 5", ni)
	}
}

func TestRegionOctantsUnit(t *testing.T) {
	r, err := NewRegion(-1, 1, -1, 1, -1, 1, 1, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	kids := r.Octants()
	if len(kids) != 1 || kids[0] != r {
		t.Errorf("unit region must not subdivide, got %v", kids)
	}
}
