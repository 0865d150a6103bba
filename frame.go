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

// Frame schedules asynchronous render tasks for one field and drives
// progressive level-of-detail refinement.
//
// At most one computation is in flight at any time.  New requests never
// preempt a running computation; they replace what runs next, and an
// overwritten queued request is silently dropped.  When a full cycle
// completes and no new request is queued, the frame automatically
// re-renders the current view with the level of detail halved, until
// full resolution (level 1) is reached.
//
// A Frame is not safe for concurrent use: a single owner issues
// requests and polls for completion.  Poll never blocks.
type Frame struct {
	field Field

	// Task slots: current is the last completed task, pending is in
	// flight, next is queued.  A valid pending task always has a
	// matching in-flight computation (future != nil).
	current, pending, next task

	// future receives the in-flight computation's single result.
	// nil while no computation is in flight.
	future chan result
}

// task describes one render request.
type task struct {
	inv        Mat4 // inverse of the view matrix
	ni, nj, nk int  // target resolution
	level      int  // level of detail; 1 is finest
	valid      bool
}

// result is the outcome of one computation: either an image pair or an
// error, never both.
type result struct {
	depth  *DepthImage
	shaded *ShadedImage
	err    error
}

// Update is the product of a completed render cycle, handed to the
// caller by Poll.  Ownership of the images transfers to the caller.
type Update struct {
	Depth  *DepthImage
	Shaded *ShadedImage

	// Level is the level of detail of this cycle; the images are
	// sampled at resolution NI/Level × NJ/Level.  Consumers can use
	// ShadedImage.Upscale to display coarse levels at full size.
	Level int

	// NI, NJ is the full target resolution of the request.
	NI, NJ int
}

// NewFrame returns a Frame rendering the given field.  Render tasks
// sample the unit cube [-1, 1]³ in device space; the view matrix passed
// to RequestRender maps the field's model space onto this cube.
func NewFrame(field Field) *Frame {
	return &Frame{field: field}
}

// RequestRender queues a render of the field under the given view
// matrix at the given resolution.  If a request is already queued but
// not started, it is replaced: the last request wins.  If no
// computation is in flight, the new request starts immediately.
//
// Invalid input is rejected before dispatch and leaves the frame
// unchanged: ErrDegenerateRegion for non-positive resolutions,
// ErrSingularMatrix for a non-invertible view matrix.
func (f *Frame) RequestRender(view Mat4, ni, nj, nk int) error {
	if ni < 1 || nj < 1 || nk < 1 {
		return ErrDegenerateRegion
	}
	inv, err := view.Invert()
	if err != nil {
		return err
	}

	f.next = task{
		inv:   inv,
		ni:    ni,
		nj:    nj,
		nk:    nk,
		level: initialLevel,
		valid: true,
	}
	if f.future == nil {
		f.startRender()
	}
	return nil
}

// Poll checks the in-flight computation without blocking.  It returns
// (nil, nil) if no computation is in flight or the computation has not
// finished.  On completion it promotes the pending task to current,
// immediately starts the next computation, and returns the finished
// image pair.
//
// If the computation failed, Poll surfaces the error exactly once.  The
// failed task is discarded rather than promoted, and no automatic
// refinement is dispatched in its place: retrying is the caller's
// decision.  A request queued while the failed computation was running
// still starts.
func (f *Frame) Poll() (*Update, error) {
	if f.future == nil {
		return nil, nil
	}

	select {
	case res := <-f.future:
		f.future = nil
		if res.err != nil {
			f.pending = task{}
			if f.next.valid {
				f.startRender()
			}
			return nil, res.err
		}

		t := f.pending
		f.current = t
		f.pending = task{}
		f.startRender()

		return &Update{
			Depth:  res.depth,
			Shaded: res.shaded,
			Level:  t.level,
			NI:     t.ni,
			NJ:     t.nj,
		}, nil

	default:
		return nil, nil
	}
}

// startRender dispatches the next computation, if any.  If a request is
// queued it becomes pending and starts; otherwise, if the current task
// has not yet reached full detail, a refinement of it is synthesized
// and dispatched.
//
// The worker goroutine takes the evaluation context and the region by
// value and owns them, together with its output buffers, until the
// result is handed over through the future channel.
func (f *Frame) startRender() {
	if !f.next.valid {
		if f.current.valid && f.current.level > 1 {
			f.next = f.current
			f.next.level /= 2
			f.next.valid = true
			f.startRender()
		}
		return
	}

	t := f.next
	f.next = task{}
	f.pending = t

	r, err := NewRegion(-1, 1, -1, 1, -1, 1,
		levelCount(t.ni, t.level),
		levelCount(t.nj, t.level),
		levelCount(t.nk, t.level))
	if err != nil {
		// Cannot happen: counts are clamped to at least 1.
		f.pending = task{}
		return
	}

	v := View{Field: f.field, Mat: t.inv}
	ch := make(chan result, 1)
	f.future = ch

	go func(v View, r Region) {
		depth, err := Render(v, r)
		if err != nil {
			ch <- result{err: err}
			return
		}
		shaded, err := Shade(v, r, depth)
		if err != nil {
			ch <- result{err: err}
			return
		}
		ch <- result{depth: depth, shaded: shaded}
	}(v, r)
}

// levelCount reduces a sample count for a level of detail.
func levelCount(n, level int) int {
	n /= level
	if n < 1 {
		n = 1
	}
	return n
}

// initialLevel is the level of detail of the first pass after a new
// render request.  Successive idle cycles halve the level until it
// reaches 1 (full resolution).
const initialLevel = 8
