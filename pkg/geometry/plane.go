package geometry

// Plane represents an oriented plane in 3D space, defined by a point on
// the plane and a normal vector. The normal points towards the "front"
// half-space; clipping keeps the region behind the plane.
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// NewPlane creates a plane through point with the given normal
func NewPlane(point, normal Vector3) Plane {
	return Plane{Point: point, Normal: normal}
}

// SignedDistance returns the normal component of v relative to the
// plane. Positive values are in front of the plane, negative behind.
// The result is scaled by the normal's length; callers that need true
// distances must pass a unit normal.
func (p Plane) SignedDistance(v Vector3) float64 {
	return v.Sub(p.Point).Dot(p.Normal)
}

// InFront reports whether v lies in front of the plane, using the
// Epsilon band: points within (-Epsilon, Epsilon] of the plane count
// as in front.
func (p Plane) InFront(v Vector3) bool {
	return p.SignedDistance(v) > -Epsilon
}
