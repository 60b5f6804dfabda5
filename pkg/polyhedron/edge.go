package polyhedron

import (
	"github.com/sigvaldm/GirafFE/pkg/geometry"
)

// Edge is an ordered pair of points. Endpoints are stored by value, so
// every Edge owns its own coordinate storage; trimming one edge can
// never corrupt another that happens to share a corner geometrically.
// An Edge belongs to exactly one face slot at a time.
type Edge struct {
	V1, V2 geometry.Vector3
}

// NewEdge creates an edge between two points
func NewEdge(v1, v2 geometry.Vector3) *Edge {
	return &Edge{V1: v1, V2: v2}
}

// Length returns the distance between the endpoints
func (e *Edge) Length() float64 {
	return e.V1.Distance(e.V2)
}

// HasVertex reports whether v coincides with either endpoint within
// tolerance
func (e *Edge) HasVertex(v geometry.Vector3) bool {
	return e.V1.ApproxEqual(v) || e.V2.ApproxEqual(v)
}

// OtherVertex returns the endpoint opposite to v. v must coincide with
// one of the endpoints.
func (e *Edge) OtherVertex(v geometry.Vector3) geometry.Vector3 {
	if e.V1.ApproxEqual(v) {
		return e.V2
	}
	return e.V1
}

// clipEdge classifies and trims a single edge against a cutting plane,
// keeping the part behind it. It reports whether the edge survives and,
// when the cut produced or touched a vertex on the plane, returns that
// vertex as a candidate corner of the cap polygon.
func clipEdge(e *Edge, plane geometry.Plane) (keep bool, capVertex *geometry.Vector3, err error) {
	d1 := plane.SignedDistance(e.V1)
	d2 := plane.SignedDistance(e.V2)

	// Entirely in front: cut away. The on-plane band counts as "in
	// front" here so a coplanar edge is dropped instead of being
	// trimmed to zero length.
	if d1 > -geometry.Epsilon && d2 > -geometry.Epsilon {
		return false, nil, nil
	}

	// Entirely behind: untouched.
	if d1 <= -geometry.Epsilon && d2 <= -geometry.Epsilon {
		return true, nil, nil
	}

	// One endpoint sits on the plane, the other behind: the edge is
	// kept as-is and the on-plane endpoint seeds the cap polygon.
	if d1 > -geometry.Epsilon && d1 <= geometry.Epsilon {
		v := e.V1
		return true, &v, nil
	}
	if d2 > -geometry.Epsilon && d2 <= geometry.Epsilon {
		v := e.V2
		return true, &v, nil
	}

	// Straddling: trim the front endpoint back to the intersection.
	alpha := -d1 / e.V2.Sub(e.V1).Dot(plane.Normal)
	vNew := e.V1.Add(e.V2.Sub(e.V1).Mul(alpha))
	if d1 > geometry.Epsilon {
		e.V1 = vNew
	} else {
		e.V2 = vNew
	}

	if e.Length() <= geometry.Epsilon {
		return false, nil, geometryErrorf("clip",
			"trimmed edge collapsed below tolerance (length %g)", e.Length())
	}
	return true, &vNew, nil
}
