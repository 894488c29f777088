package bezexport

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
)

const twoPointsText = `[
    [
        [ 0.000000, 0.000000, -0.000000 ],
        [ 1.000000, 0.000000, -0.000000 ],
        [ 0.000000, 5.000000, 1.000000 ],
        [ 0.000000, 5.000000, -0.000000 ]
    ],
    [
        [ 0.000000, 5.000000, -0.000000 ],
        [ 0.000000, 5.000000, -1.000000 ],
        [ -1.000000, 0.000000, -0.000000 ],
        [ 0.000000, 0.000000, -0.000000 ]
    ]
]
`

func TestWriteTwoPoints(t *testing.T) {
	got, err := Text(CurveSet{{Splines: []Spline{twoPoints}}})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, twoPointsText, got)
}

func TestWriteSinglePoint(t *testing.T) {
	sp := Spline{cp(Pt3(1.5, -2, 3), Pt3(1, -2, 3), Pt3(2, -2, 3))}
	want := `[
    [
        [ 1.500000, 3.000000, 2.000000 ],
        [ 2.000000, 3.000000, 2.000000 ],
        [ 1.000000, 3.000000, 2.000000 ],
        [ 1.500000, 3.000000, 2.000000 ]
    ]
]
`
	var buf bytes.Buffer
	if err := WriteSpline(&buf, sp); err != nil {
		t.Fatal(err)
	}
	diff(t, want, buf.String())
}

func TestWriteFixedPoint(t *testing.T) {
	var buf bytes.Buffer
	seg := Segment{Pt3(1e7, 0, -1e-7), Pt3(0.1234564, 2, 0), Pt3(1, 1, 1), Pt3(-0.5, 0.5, 123.456789)}
	if err := WriteSegment(&buf, seg, true); err != nil {
		t.Fatal(err)
	}
	want := `    [
        [ 10000000.000000, -0.000000, -0.000000 ],
        [ 0.123456, 0.000000, -2.000000 ],
        [ 1.000000, 1.000000, -1.000000 ],
        [ -0.500000, 123.456789, -0.500000 ]
    ]
`
	diff(t, want, buf.String())
}

func TestWriteNonFinite(t *testing.T) {
	// Coordinates are never validated; non-finite values print as fmt does.
	var buf bytes.Buffer
	pt := Pt3(math.NaN(), math.Inf(1), 0)
	if err := WriteSegment(&buf, Segment{pt, pt, pt, pt}, true); err != nil {
		t.Fatal(err)
	}
	want := `    [
        [ NaN, 0.000000, -Inf ],
        [ NaN, 0.000000, -Inf ],
        [ NaN, 0.000000, -Inf ],
        [ NaN, 0.000000, -Inf ]
    ]
`
	diff(t, want, buf.String())
}

func TestWriteCommaPlacement(t *testing.T) {
	for n := 1; n <= 5; n++ {
		sp := make(Spline, n)
		for i := range sp {
			f := float64(i)
			sp[i] = cp(Pt3(f, 0, 0), Pt3(f, -1, 0), Pt3(f, 1, 0))
		}
		var buf bytes.Buffer
		if err := WriteSpline(&buf, sp); err != nil {
			t.Fatal(err)
		}
		var closed, closedComma, points, pointsComma int
		for _, line := range strings.Split(buf.String(), "\n") {
			switch {
			case line == "    ]":
				closed++
			case line == "    ],":
				closedComma++
			case strings.HasPrefix(line, "        [ "):
				points++
				if strings.HasSuffix(line, ",") {
					pointsComma++
				}
			}
		}
		if closed != 1 || closedComma != n-1 {
			t.Errorf("n=%d: got %d segments without and %d with comma, want 1 and %d", n, closed, closedComma, n-1)
		}
		if points != 4*n || pointsComma != 3*n {
			t.Errorf("n=%d: got %d points, %d with comma, want %d and %d", n, points, pointsComma, 4*n, 3*n)
		}
	}
}

func TestWriteOrder(t *testing.T) {
	mk := func(x float64) Spline {
		return Spline{cp(Pt3(x, 0, 0), Pt3(x, 0, 0), Pt3(x, 0, 0))}
	}
	a := Curve{Name: "a", Splines: []Spline{mk(1), mk(2)}}
	b := Curve{Name: "b", Splines: []Spline{mk(3)}}

	var want strings.Builder
	for _, sp := range []Spline{mk(1), mk(2), mk(3)} {
		if err := WriteSpline(&want, sp); err != nil {
			t.Fatal(err)
		}
	}
	got, err := Text(CurveSet{a, b})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want.String(), got)

	want.Reset()
	for _, sp := range []Spline{mk(3), mk(1), mk(2)} {
		if err := WriteSpline(&want, sp); err != nil {
			t.Fatal(err)
		}
	}
	got, err = Text(CurveSet{b, a})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want.String(), got)
}

func TestWriteEmptyScene(t *testing.T) {
	got, err := Text(CurveSet{{Name: "no splines"}})
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got %q, want empty output", got)
	}
}

func TestWriteEmptySpline(t *testing.T) {
	cs := CurveSet{
		{Name: "ok", Splines: []Spline{twoPoints}},
		{Name: "broken", Splines: []Spline{twoPoints, {}}},
	}
	var buf bytes.Buffer
	err := Write(&buf, cs)
	var serr *EmptySplineError
	if !errors.As(err, &serr) {
		t.Fatalf("got error %v, want *EmptySplineError", err)
	}
	diff(t, &EmptySplineError{Curve: 1, CurveName: "broken", Spline: 1}, serr)
	if buf.Len() != 0 {
		t.Errorf("got %d bytes of output, want none", buf.Len())
	}
	if err := Validate(cs); !errors.As(err, &serr) {
		t.Errorf("Validate returned %v, want *EmptySplineError", err)
	}
	if err := Validate(cs[:1]); err != nil {
		t.Errorf("Validate returned %v for valid scene", err)
	}

	buf.Reset()
	if err := WriteSpline(&buf, nil); !errors.As(err, &serr) {
		t.Errorf("WriteSpline returned %v, want *EmptySplineError", err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %d bytes of output, want none", buf.Len())
	}
}

func TestEmptySplineErrorMessage(t *testing.T) {
	err := &EmptySplineError{Curve: 2, CurveName: "Path", Spline: 0}
	diff(t, `bezexport: spline 0 of curve 2 ("Path") has no control points`, err.Error())
	err.CurveName = ""
	diff(t, "bezexport: spline 0 of curve 2 has no control points", err.Error())
}

type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, w.err
	}
	w.n--
	return len(b), nil
}

func TestWriteSinkError(t *testing.T) {
	sentinel := errors.New("disk full")
	for n := range 8 {
		w := &failingWriter{n: n, err: sentinel}
		if err := Write(w, CurveSet{{Splines: []Spline{twoPoints}}}); !errors.Is(err, sentinel) {
			t.Errorf("after %d writes: got error %v, want %v", n, err, sentinel)
		}
	}
}
