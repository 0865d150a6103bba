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
	"image/color"
	"math"
	"testing"
)

func TestDepthImageSentinel(t *testing.T) {
	d := NewDepthImage(4, 3)
	for _, v := range d.Pix {
		if !math.IsInf(v, 1) {
			t.Fatalf("fresh image holds %g, want +Inf", v)
		}
	}
	d.Set(2, 1, 0.5)
	if got := d.At(2, 1); got != 0.5 {
		t.Errorf("At(2, 1) = %g, want 0.5", got)
	}
	if got := d.At(1, 2); !math.IsInf(got, 1) {
		t.Errorf("At(1, 2) = %g, want +Inf", got)
	}
}

func TestDepthImageGray16(t *testing.T) {
	d := NewDepthImage(3, 1)
	d.Set(0, 0, 0.2) // closest
	d.Set(1, 0, 0.8) // farthest
	// (2, 0) stays background.

	img := d.Gray16()
	if got := img.Gray16At(0, 0).Y; got != 65535 {
		t.Errorf("closest pixel has gray %d, want 65535", got)
	}
	if got := img.Gray16At(1, 0).Y; got != 0 {
		t.Errorf("farthest pixel has gray %d, want 0", got)
	}
	if got := img.Gray16At(2, 0).Y; got != 0 {
		t.Errorf("background pixel has gray %d, want 0", got)
	}
}

func TestShadedImageRGBA(t *testing.T) {
	s := NewShadedImage(2, 2)
	s.SetRGBA(1, 0, 10, 20, 30, 255)

	img := s.RGBA()
	if got := img.RGBAAt(1, 0); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("RGBAAt(1, 0) = %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{}) {
		t.Errorf("background pixel = %v, want transparent", got)
	}

	// The buffer is shared, not copied.
	s.SetRGBA(0, 0, 1, 2, 3, 255)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("RGBA does not share the pixel buffer")
	}
}

func TestShadedImageUpscale(t *testing.T) {
	s := NewShadedImage(2, 2)
	s.SetRGBA(0, 0, 100, 100, 100, 255)

	img := s.Upscale(8, 8)
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("upscaled image is %v", b)
	}
	// Nearest neighbour replicates the source pixel across its block.
	if got := img.RGBAAt(1, 1); got != (color.RGBA{100, 100, 100, 255}) {
		t.Errorf("upscaled pixel = %v", got)
	}
	if got := img.RGBAAt(7, 7); got != (color.RGBA{}) {
		t.Errorf("upscaled background = %v, want transparent", got)
	}
}
