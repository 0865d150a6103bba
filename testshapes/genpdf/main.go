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

// Command genpdf renders all test shapes into a single contact-sheet
// PDF, one depth image per shape, for quick visual review.
package main

import (
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/solid"
	"seehuhn.de/go/solid/testshapes"
)

const (
	outPath = "testdata/shapes.pdf"

	// imgSize is the sample resolution of each contact-sheet tile.
	imgSize = 96

	// cellSize is the tile pitch in points, leaving a margin around
	// each rendered image.
	cellSize = 112

	// grayLevels quantizes depths so that adjacent pixels merge into
	// run-length rectangles.
	grayLevels = 32

	columns = 4
)

// run is one horizontal strip of constant gray, in contact-sheet
// coordinates (y grows downward).
type run struct {
	x, y, w float64
	gray    float64
}

func main() {
	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}

	var shapes []testshapes.TestShape
	for _, category := range slices.Sorted(maps.Keys(testshapes.All)) {
		shapes = append(shapes, testshapes.All[category]...)
	}

	rows := (len(shapes) + columns - 1) / columns
	paper := &pdf.Rectangle{
		URx: float64(columns * cellSize),
		URy: float64(rows * cellSize),
	}

	page, err := document.CreateSinglePage(outPath, paper, pdf.V1_7, nil)
	if err != nil {
		panic(err)
	}

	// PDF origin is bottom-left; lay out tiles top-to-bottom instead.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, paper.URy})

	for idx, tc := range shapes {
		x0 := float64((idx%columns)*cellSize + (cellSize-imgSize)/2)
		y0 := float64((idx/columns)*cellSize + (cellSize-imgSize)/2)

		runs, err := renderRuns(tc, x0, y0)
		if err != nil {
			panic(fmt.Errorf("%s: %w", tc.Name, err))
		}
		for _, rn := range runs {
			page.SetFillColor(color.DeviceGray(rn.gray))
			page.Rectangle(rn.x, rn.y, rn.w, 1)
			page.Fill()
		}
	}

	if err := page.Close(); err != nil {
		panic(err)
	}
}

// renderRuns renders one shape's depth image and converts it to
// run-length strips of quantized gray, with the closest surface white.
// Background pixels produce no strips and stay unpainted.
func renderRuns(tc testshapes.TestShape, x0, y0 float64) ([]run, error) {
	r, err := solid.NewRegion(-1, 1, -1, 1, -1, 1, imgSize, imgSize, imgSize)
	if err != nil {
		return nil, err
	}
	v, err := solid.NewView(tc.Field, tc.ViewMatrix())
	if err != nil {
		return nil, err
	}
	depth, err := solid.Render(v, r)
	if err != nil {
		return nil, err
	}

	lo, hi := depthRange(depth)
	if lo > hi {
		return nil, nil // shape not visible, leave the tile empty
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var runs []run
	for j := range depth.NJ {
		i := 0
		for i < depth.NI {
			level, ok := quantize(depth.At(i, j), lo, span)
			if !ok {
				i++
				continue
			}

			// Extend the run while the quantized level is unchanged.
			end := i + 1
			for end < depth.NI {
				l2, ok2 := quantize(depth.At(end, j), lo, span)
				if !ok2 || l2 != level {
					break
				}
				end++
			}

			runs = append(runs, run{
				x:    x0 + float64(i),
				y:    y0 + float64(j),
				w:    float64(end - i),
				gray: float64(level) / float64(grayLevels-1),
			})
			i = end
		}
	}
	return runs, nil
}

// quantize maps a depth to a gray level, closest surface brightest.
// ok is false for the +Inf background sentinel.
func quantize(d, lo, span float64) (int, bool) {
	if math.IsInf(d, 1) {
		return 0, false
	}
	level := int((1 - (d-lo)/span) * float64(grayLevels-1))
	if level < 0 {
		level = 0
	} else if level > grayLevels-1 {
		level = grayLevels - 1
	}
	return level, true
}

// depthRange returns the finite depth range of the image.  If no cell
// is finite, lo > hi.
func depthRange(d *solid.DepthImage) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, v := range d.Pix {
		if math.IsInf(v, 1) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
