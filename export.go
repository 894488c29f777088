package bezexport

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Text exports the scene and returns the text. See [Write] for the format.
func Text(sc Scene) (string, error) {
	sb := &strings.Builder{}
	if err := Write(sb, sc); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write exports every spline of every curve in the scene to w, in the order
// the scene produces them.
//
// Each spline is written as a bracketed list of its segments, and each
// segment as a bracketed list of its four points, remapped to the consumer's
// Y-up space (see [Remap]) and printed with six fractional digits:
//
//	[
//	    [
//	        [ 0.000000, 0.000000, -0.000000 ],
//	        [ 1.000000, 0.000000, -0.000000 ],
//	        [ 0.000000, 5.000000, 1.000000 ],
//	        [ 0.000000, 5.000000, -0.000000 ]
//	    ],
//	    ...
//	]
//
// Splines are checked before anything is written. If any spline is empty,
// Write returns an [*EmptySplineError] and w is left untouched. Errors
// returned by w are passed through; the output written up to that point is
// incomplete and shouldn't be used.
func Write(w io.Writer, sc Scene) error {
	curves := slices.Collect(sc.Curves())
	if err := validate(curves); err != nil {
		return err
	}
	for _, c := range curves {
		for _, sp := range c.Splines {
			if err := writeSpline(w, sp); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSpline writes a single spline block, as done by [Write] for every
// spline of a scene. An empty spline yields an [*EmptySplineError] with zero
// curve and spline indices and writes nothing.
func WriteSpline(w io.Writer, sp Spline) error {
	if len(sp) == 0 {
		return &EmptySplineError{}
	}
	return writeSpline(w, sp)
}

func writeSpline(w io.Writer, sp Spline) error {
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	last := len(sp) - 1
	i := 0
	for seg := range sp.Segments() {
		if err := WriteSegment(w, seg, i == last); err != nil {
			return err
		}
		i++
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

// WriteSegment writes one segment block. The segment's points are remapped
// while writing, so seg must be in the authoring tool's space. The closing
// bracket is followed by a comma unless last is set.
func WriteSegment(w io.Writer, seg Segment, last bool) error {
	var err error
	write := func(s string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, s)
	}
	writePoint := func(pt Point3, end string) {
		if err != nil {
			return
		}
		pt = Remap(pt)
		_, err = fmt.Fprintf(w, "        [ %f, %f, %f ]%s\n", pt.X, pt.Y, pt.Z, end)
	}

	write("    [\n")
	for i, pt := range seg {
		if i == len(seg)-1 {
			writePoint(pt, "")
		} else {
			writePoint(pt, ",")
		}
	}
	if last {
		write("    ]\n")
	} else {
		write("    ],\n")
	}
	return err
}
