package bezexport

import (
	"fmt"
	"slices"
)

// EmptySplineError is returned when a spline without control points is passed
// to the exporter. Splines must have at least one control point; the error
// signals a broken precondition of the caller and no output is written.
type EmptySplineError struct {
	// Curve is the index of the curve in traversal order.
	Curve int
	// CurveName is the host's name of the curve, which may be empty.
	CurveName string
	// Spline is the index of the empty spline within its curve.
	Spline int
}

func (err *EmptySplineError) Error() string {
	if err.CurveName != "" {
		return fmt.Sprintf("bezexport: spline %d of curve %d (%q) has no control points", err.Spline, err.Curve, err.CurveName)
	}
	return fmt.Sprintf("bezexport: spline %d of curve %d has no control points", err.Spline, err.Curve)
}

// Validate reports the first empty spline in the scene as an
// [*EmptySplineError], or nil if the scene can be exported.
func Validate(sc Scene) error {
	return validate(slices.Collect(sc.Curves()))
}

func validate(curves []Curve) error {
	for ci, c := range curves {
		for si, sp := range c.Splines {
			if len(sp) == 0 {
				return &EmptySplineError{Curve: ci, CurveName: c.Name, Spline: si}
			}
		}
	}
	return nil
}
