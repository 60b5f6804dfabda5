// Package overlap measures intersection volumes between tetrahedral
// finite-element cells and convex sampling regions. A region is a set
// of bounding half-spaces; the overlap volume is obtained by clipping a
// cell's boundary representation by every region plane and integrating
// what is left.
package overlap

import (
	"math"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
)

// Region is a convex sampling region described by its bounding planes.
// A point belongs to the region when it lies behind every plane.
type Region interface {
	Planes() []geometry.Plane
}

// Box is an axis-aligned box region
type Box struct {
	Min, Max geometry.Vector3
}

// Planes returns the six bounding half-spaces of the box
func (b Box) Planes() []geometry.Plane {
	return []geometry.Plane{
		geometry.NewPlane(b.Max, geometry.NewVector3(1, 0, 0)),
		geometry.NewPlane(b.Max, geometry.NewVector3(0, 1, 0)),
		geometry.NewPlane(b.Max, geometry.NewVector3(0, 0, 1)),
		geometry.NewPlane(b.Min, geometry.NewVector3(-1, 0, 0)),
		geometry.NewPlane(b.Min, geometry.NewVector3(0, -1, 0)),
		geometry.NewPlane(b.Min, geometry.NewVector3(0, 0, -1)),
	}
}

// Cylinder is a z-axis-aligned cylindrical probe region, approximated
// by a circumscribed regular prism of Segments tangent planes. The
// approximation encloses the true cylinder, so overlap volumes are
// biased slightly high; the relative error falls off as 1/Segments^2.
type Cylinder struct {
	Center   geometry.Vector3 // center of the cylinder axis
	Radius   float64
	Height   float64
	Segments int // tangent plane count; 0 means 64
}

// Planes returns the two cap planes and the tangent side planes
func (c Cylinder) Planes() []geometry.Plane {
	n := c.Segments
	if n < 3 {
		n = 64
	}

	half := geometry.NewVector3(0, 0, c.Height/2)
	planes := make([]geometry.Plane, 0, n+2)
	planes = append(planes,
		geometry.NewPlane(c.Center.Add(half), geometry.NewVector3(0, 0, 1)),
		geometry.NewPlane(c.Center.Sub(half), geometry.NewVector3(0, 0, -1)),
	)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		dir := geometry.NewVector3(math.Cos(theta), math.Sin(theta), 0)
		planes = append(planes, geometry.NewPlane(c.Center.Add(dir.Mul(c.Radius)), dir))
	}
	return planes
}

// Halfspaces is an explicit list of bounding planes, for regions not
// covered by the built-in shapes.
type Halfspaces []geometry.Plane

// Planes returns the plane list itself
func (h Halfspaces) Planes() []geometry.Plane {
	return h
}
