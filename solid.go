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

// Package solid renders implicit-function solids into depth and shaded
// normal images.
//
// A solid is described by a scalar field: points where the field is
// negative are inside, points where it is positive are outside, and the
// zero level set is the surface.  Rendering uses interval arithmetic to
// prune regions of space that provably contain no surface, so the cost
// is bounded by the geometric complexity of the surface rather than by
// the total number of voxels.
//
// The two sampling passes are [Render], which produces a per-pixel depth
// array, and [Shade], which turns depths into packed surface-normal
// pixels.  [Frame] drives both passes asynchronously with progressive
// level-of-detail refinement, so an interactive viewer gets a coarse
// image quickly and sharper images on subsequent idle cycles.
package solid

// Warnf, if non-nil, receives quality warnings from the sampler, such as
// a column search that finds no surface inside a box which interval
// arithmetic proved to contain solid material.  These warnings indicate
// numerical edge cases, not errors; rendering continues with the empty
// sentinel.  The default is to discard warnings.
var Warnf func(format string, args ...any)

func warnf(format string, args ...any) {
	if Warnf != nil {
		Warnf(format, args...)
	}
}
