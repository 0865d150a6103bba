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
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DepthImage holds one depth value per pixel: the distance from the
// region's near plane to the closest surface point along the pixel's
// viewing ray, or +Inf where the ray hits no surface.  Smaller values
// are closer to the viewer.
//
// Pix is in row-major order with row length NI.
type DepthImage struct {
	Pix    []float64
	NI, NJ int
}

// NewDepthImage returns a depth image with every cell set to the +Inf
// "no surface" sentinel.
func NewDepthImage(ni, nj int) *DepthImage {
	pix := make([]float64, ni*nj)
	inf := math.Inf(1)
	for i := range pix {
		pix[i] = inf
	}
	return &DepthImage{Pix: pix, NI: ni, NJ: nj}
}

// At returns the depth at column i, row j.
func (d *DepthImage) At(i, j int) float64 {
	return d.Pix[j*d.NI+i]
}

// Set stores the depth at column i, row j.
func (d *DepthImage) Set(i, j int, v float64) {
	d.Pix[j*d.NI+i] = v
}

// Gray16 converts the depth image to a 16-bit grayscale image for
// inspection.  Finite depths are mapped linearly onto [0, 65535] with
// the closest surface white; cells without a surface are black.
func (d *DepthImage) Gray16() *image.Gray16 {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, v := range d.Pix {
		if math.IsInf(v, 1) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	img := image.NewGray16(image.Rect(0, 0, d.NI, d.NJ))
	if lo > hi {
		return img // no surface anywhere
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for j := range d.NJ {
		for i := range d.NI {
			v := d.At(i, j)
			if math.IsInf(v, 1) {
				continue
			}
			g := uint16((hi - v) / span * 65535)
			off := img.PixOffset(i, j)
			img.Pix[off] = uint8(g >> 8)
			img.Pix[off+1] = uint8(g)
		}
	}
	return img
}

// ShadedImage holds one packed RGBA pixel per depth cell.  The color
// channels encode the surface normal as n/2 + 1/2, and the alpha
// channel is 255 where a surface exists.  Background cells keep the
// zero pixel and must be treated as transparent by consumers.
//
// Pix is in row-major order, four bytes per pixel, row length 4*NI.
type ShadedImage struct {
	Pix    []uint8
	NI, NJ int
}

// NewShadedImage returns a fully transparent shaded image.
func NewShadedImage(ni, nj int) *ShadedImage {
	return &ShadedImage{Pix: make([]uint8, 4*ni*nj), NI: ni, NJ: nj}
}

// SetRGBA stores a pixel at column i, row j.
func (s *ShadedImage) SetRGBA(i, j int, r, g, b, a uint8) {
	off := 4 * (j*s.NI + i)
	s.Pix[off] = r
	s.Pix[off+1] = g
	s.Pix[off+2] = b
	s.Pix[off+3] = a
}

// RGBA returns the image as an image.RGBA sharing the pixel buffer.
func (s *ShadedImage) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    s.Pix,
		Stride: 4 * s.NI,
		Rect:   image.Rect(0, 0, s.NI, s.NJ),
	}
}

// Upscale resizes the shaded image to ni×nj pixels using nearest-
// neighbour interpolation.  Progressive refinement renders coarse
// levels at reduced resolution; displays use Upscale to show them at
// the requested size until a finer pass lands.
func (s *ShadedImage) Upscale(ni, nj int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, ni, nj))
	draw.NearestNeighbor.Scale(dst, dst.Rect, s.RGBA(), s.RGBA().Rect, draw.Src, nil)
	return dst
}
