package bezexport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// cp builds a control point from its anchor, left handle, and right handle.
func cp(anchor, left, right Point3) ControlPoint {
	return ControlPoint{Anchor: anchor, LeftHandle: left, RightHandle: right}
}

// twoPoints is a spline with two control points stacked along the Z axis.
var twoPoints = Spline{
	cp(Pt3(0, 0, 0), Pt3(-1, 0, 0), Pt3(1, 0, 0)),
	cp(Pt3(0, 0, 5), Pt3(0, -1, 5), Pt3(0, 1, 5)),
}
