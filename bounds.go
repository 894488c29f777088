package bezexport

import "github.com/ungerik/go3d/float64/vec3"

// ControlBounds returns the axis-aligned bounding box of all anchors and
// handles in the scene, in the consumer's Y-up space. It reports false if the
// scene has no control points.
//
// The box encloses the control polygon and thus the curves themselves, but
// isn't necessarily tight.
func ControlBounds(sc Scene) (vec3.Box, bool) {
	var box vec3.Box
	found := false
	add := func(pt Point3) {
		v := Remap(pt).Vec3()
		if !found {
			box.Min, box.Max = v, v
			found = true
			return
		}
		box.Min = vec3.Min(&box.Min, &v)
		box.Max = vec3.Max(&box.Max, &v)
	}
	for c := range sc.Curves() {
		for _, sp := range c.Splines {
			for _, cp := range sp {
				add(cp.Anchor)
				add(cp.LeftHandle)
				add(cp.RightHandle)
			}
		}
	}
	return box, found
}
