// Package bezexport serializes the cubic Bézier curves of a 3D scene into the
// nested-array text format read by our Y-up renderer.
//
// # Data model
//
// A [Scene] produces [Curve] values in order. Each curve holds a list of
// [Spline] values, and each spline a list of [ControlPoint] values: an anchor
// on the curve plus a left (incoming) and right (outgoing) handle. Points are
// [Point3] values in the authoring tool's Z-up, right-handed space.
//
// [CurveSet] is the in-memory scene. Host integrations implement [Scene]
// themselves; the scene subpackage provides one backed by YAML, JSON, or TOML
// documents.
//
// # Segments
//
// A spline with n control points has n segments. Segment i runs from control
// point i to control point (i+1) mod n and is described by four points, see
// [SegmentOf]. The last segment always wraps around to the first control
// point, whether or not the spline is closed.
//
// # Output
//
// [Write] emits one bracketed block per spline, each containing one bracketed
// block per segment, each containing the segment's four points. Points are
// converted to the consumer's space with [Remap] and printed with six
// fractional digits. Output order matches scene order exactly, as consumers
// parse the data positionally.
//
// Every spline must have at least one control point. Write checks this before
// producing any output and reports violations as [*EmptySplineError].
//
// This package doesn't evaluate curves. [ControlBounds] is the only
// geometric query, and it only looks at control points.
package bezexport
