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
	"fmt"
	"testing"
)

// BenchmarkRenderSphere measures the adaptive sampler on a sphere that
// fills most of the region, so pruning and per-column search both
// contribute.
func BenchmarkRenderSphere(b *testing.B) {
	sizes := []int{32, 64, 128}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%dx%d", size, size, size), func(b *testing.B) {
			r, err := NewRegion(-1, 1, -1, 1, -1, 1, size, size, size)
			if err != nil {
				b.Fatal(err)
			}
			v := View{Field: sphereField(0.6), Mat: Identity}

			b.ReportAllocs()
			for b.Loop() {
				if _, err := Render(v, r); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRenderEmpty measures the pruning fast path: the whole region
// is proven empty by a single interval evaluation.
func BenchmarkRenderEmpty(b *testing.B) {
	r, err := NewRegion(-1, 1, -1, 1, -1, 1, 128, 128, 128)
	if err != nil {
		b.Fatal(err)
	}
	f := FieldFunc{
		EvalFunc:     func(x, y, z float64) float64 { return 1 },
		IntervalFunc: func(x, y, z Interval) Interval { return Interval{0.5, 1.5} },
	}
	v := View{Field: f, Mat: Identity}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Render(v, r); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShadeSphere measures normal shading of a completed depth
// image.
func BenchmarkShadeSphere(b *testing.B) {
	const size = 128
	r, err := NewRegion(-1, 1, -1, 1, -1, 1, size, size, size)
	if err != nil {
		b.Fatal(err)
	}
	v := View{Field: sphereField(0.6), Mat: Identity}
	depth, err := Render(v, r)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := Shade(v, r, depth); err != nil {
			b.Fatal(err)
		}
	}
}
