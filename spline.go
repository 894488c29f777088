package bezexport

import (
	"iter"
	"slices"
)

// ControlPoint is an on-curve anchor together with the two handles that
// control the curvature into and out of it.
type ControlPoint struct {
	Anchor      Point3
	LeftHandle  Point3
	RightHandle Point3
}

// Spline is a piecewise cubic Bézier curve, described by its control points.
//
// A spline is treated as cyclic: the segment following the last control point
// ends at the first one. This holds for open splines too; consumers that don't
// loop simply ignore the final segment.
type Spline []ControlPoint

// Segment describes the Bézier curve between two adjacent control points as
// its four points: start anchor, start handle, end handle, end anchor.
type Segment [4]Point3

// SegmentOf returns the segment running from current to next.
func SegmentOf(current, next ControlPoint) Segment {
	return Segment{
		current.Anchor,
		current.RightHandle,
		next.LeftHandle,
		next.Anchor,
	}
}

// Remap returns the segment with every point remapped. See [Remap].
func (seg Segment) Remap() Segment {
	return Segment{
		Remap(seg[0]),
		Remap(seg[1]),
		Remap(seg[2]),
		Remap(seg[3]),
	}
}

// Segments returns the spline's segments, one per control point. The segment
// of the last control point wraps around to the first, so a spline with a
// single control point has one segment starting and ending at that point.
//
// An empty spline has no segments.
func (sp Spline) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		n := len(sp)
		for i, cur := range sp {
			if !yield(SegmentOf(cur, sp[(i+1)%n])) {
				return
			}
		}
	}
}

// Curve is one curve object of the host scene.
type Curve struct {
	// Name is the host's name for the curve. It is only used in diagnostics.
	Name    string
	Splines []Spline
}

// Scene is the read-only view of a host scene graph that the exporter
// consumes. Curves must be produced in the order the host presents them.
type Scene interface {
	Curves() iter.Seq[Curve]
}

// CurveSet is an in-memory [Scene].
type CurveSet []Curve

var _ Scene = CurveSet(nil)

func (cs CurveSet) Curves() iter.Seq[Curve] {
	return slices.Values(cs)
}
