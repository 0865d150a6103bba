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

// Region is an axis-aligned box in device space together with the
// number of samples along each axis.  The x and y axes map to image
// columns and rows; the z axis is the viewing direction, with z = Z1
// the near plane.
//
// Regions are value types: subdivision produces fresh child regions and
// the parent is unchanged.  A region is owned by the sampling pass it
// was created for and must not be shared across concurrent passes.
type Region struct {
	// Bounds of the box.  Must satisfy X0 < X1, Y0 < Y1, Z0 < Z1.
	X0, X1 float64
	Y0, Y1 float64
	Z0, Z1 float64

	// Sample counts along each axis.  Must be at least 1.
	NI, NJ, NK int

	// I0 and J0 are the indices of this region's first column and row
	// in the output image.  Subdivision adjusts them so that every
	// child writes to its own disjoint cells.
	I0, J0 int
}

// NewRegion returns a region covering the given box with the given
// sample counts.  It returns ErrDegenerateRegion if the box is empty
// along any axis or any count is less than one.
func NewRegion(x0, x1, y0, y1, z0, z1 float64, ni, nj, nk int) (Region, error) {
	r := Region{
		X0: x0, X1: x1,
		Y0: y0, Y1: y1,
		Z0: z0, Z1: z1,
		NI: ni, NJ: nj, NK: nk,
	}
	if err := r.Check(); err != nil {
		return Region{}, err
	}
	return r, nil
}

// Check reports whether the region satisfies its invariants.
func (r Region) Check() error {
	if !(r.X0 < r.X1) || !(r.Y0 < r.Y1) || !(r.Z0 < r.Z1) {
		return ErrDegenerateRegion
	}
	if r.NI < 1 || r.NJ < 1 || r.NK < 1 {
		return ErrDegenerateRegion
	}
	return nil
}

// X returns the x coordinate of the sample center in local column i,
// with 0 <= i < NI.
func (r Region) X(i int) float64 {
	return r.X0 + (r.X1-r.X0)*(float64(i)+0.5)/float64(r.NI)
}

// Y returns the y coordinate of the sample center in local row j,
// with 0 <= j < NJ.
func (r Region) Y(j int) float64 {
	return r.Y0 + (r.Y1-r.Y0)*(float64(j)+0.5)/float64(r.NJ)
}

// Octants subdivides the region into up to eight children covering
// disjoint sub-boxes whose union is the parent.  Axes with a single
// sample are not split, so the result has 2^s children where s is the
// number of splittable axes.
//
// Children are ordered near-to-far: all children touching the near
// (high-z) half come before those in the far half.  Within each half
// the four xy quadrants keep a fixed order.  Cut planes are placed at
// sample boundaries, so child sample lattices coincide with the
// parent's.
func (r Region) Octants() []Region {
	xs := r.splitAxis(r.X0, r.X1, r.NI)
	ys := r.splitAxis(r.Y0, r.Y1, r.NJ)
	zs := r.splitAxis(r.Z0, r.Z1, r.NK)

	out := make([]Region, 0, 8)
	// Near half first: the z slices are ordered low-to-high by
	// splitAxis, so iterate them in reverse.
	for zi := len(zs) - 1; zi >= 0; zi-- {
		for ji, ySeg := range ys {
			for ii, xSeg := range xs {
				c := r
				c.X0, c.X1, c.NI = xSeg.lo, xSeg.hi, xSeg.n
				c.Y0, c.Y1, c.NJ = ySeg.lo, ySeg.hi, ySeg.n
				c.Z0, c.Z1, c.NK = zs[zi].lo, zs[zi].hi, zs[zi].n
				if ii > 0 {
					c.I0 += xs[0].n
				}
				if ji > 0 {
					c.J0 += ys[0].n
				}
				out = append(out, c)
			}
		}
	}
	return out
}

// axisSeg is one segment of a split axis.
type axisSeg struct {
	lo, hi float64
	n      int
}

// splitAxis cuts [lo, hi] with n samples into two segments at a sample
// boundary, or returns the axis unchanged if n == 1.
func (r Region) splitAxis(lo, hi float64, n int) []axisSeg {
	if n <= 1 {
		return []axisSeg{{lo, hi, n}}
	}
	nLow := n / 2
	cut := lo + (hi-lo)*float64(nLow)/float64(n)
	return []axisSeg{
		{lo, cut, nLow},
		{cut, hi, n - nLow},
	}
}
