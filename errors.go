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

import "errors"

// ErrDegenerateRegion indicates a region with non-positive extent or a
// sample count less than one.  Such regions are rejected before any
// sampling work is dispatched.
var ErrDegenerateRegion = errors.New("solid: degenerate region")

// ErrSingularMatrix indicates a view matrix that cannot be inverted.
var ErrSingularMatrix = errors.New("solid: singular view matrix")

// ErrEvaluation indicates that the scalar field produced a NaN during
// point or gradient evaluation.  The failed render pass is abandoned;
// the caller may issue a fresh render request.
var ErrEvaluation = errors.New("solid: field evaluation failed")

// ErrImageSize indicates that a depth image does not match the region it
// is shaded against.
var ErrImageSize = errors.New("solid: image size mismatch")
