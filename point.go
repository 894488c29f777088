package bezexport

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// Point3 is a point in the authoring tool's Z-up, right-handed space.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Remap converts the point to the consumer's Y-up space. See [Remap].
func (pt Point3) Remap() Point3 {
	return Remap(pt)
}

// Vec3 returns the point as a go3d vector.
func (pt Point3) Vec3() vec3.T {
	return vec3.T{pt.X, pt.Y, pt.Z}
}

// FromVec3 returns the point with the coordinates of v.
func FromVec3(v vec3.T) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}

// Remap converts p from the authoring tool's Z-up, right-handed convention to
// the consumer's Y-up convention, returning (x, z, -y).
//
// The axes are swizzled rather than multiplied by a basis matrix, so a zero Y
// becomes a negative zero Z, exactly as the exporter has always printed it.
func Remap(p Point3) Point3 {
	return Point3{
		X: p.X,
		Y: p.Z,
		Z: -p.Y,
	}
}
