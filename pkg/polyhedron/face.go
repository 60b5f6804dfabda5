package polyhedron

import (
	"github.com/sigvaldm/GirafFE/pkg/geometry"
)

// Face is an unordered collection of edges. A well-formed face's edges
// form exactly one simple cycle: every vertex of the face is an
// endpoint of exactly two of its edges.
type Face struct {
	Edges []*Edge
}

// NewFace creates a face from the given edges
func NewFace(edges ...*Edge) *Face {
	return &Face{Edges: edges}
}

// clip applies the cutting plane to every edge of the face, rebuilding
// the edge set in a single filter pass so the result does not depend on
// visitation order. If the plane cuts through the interior of the face,
// the cut is closed locally with a new edge and an independent copy of
// it is returned for the polyhedron's cap face.
func (f *Face) clip(plane geometry.Plane) (*Edge, error) {
	kept := make([]*Edge, 0, len(f.Edges))
	var capVertices []geometry.Vector3

	for _, e := range f.Edges {
		keep, v, err := clipEdge(e, plane)
		if err != nil {
			return nil, err
		}
		if keep {
			kept = append(kept, e)
		}
		if v != nil {
			capVertices = append(capVertices, *v)
		}
	}
	f.Edges = kept

	// A convex polygon crosses the plane boundary either 0 or exactly
	// 2 times. Anything else means the face was already broken.
	switch len(capVertices) {
	case 0:
		return nil, nil
	case 2:
		if capVertices[0].Distance(capVertices[1]) <= geometry.Epsilon {
			// The plane grazed a single corner. No cut to close.
			return nil, nil
		}
		f.Edges = append(f.Edges, NewEdge(capVertices[0], capVertices[1]))
		return NewEdge(capVertices[0], capVertices[1]), nil
	default:
		return nil, geometryErrorf("clip",
			"face crossed the cutting plane %d times, expected 0 or 2", len(capVertices))
	}
}

// Loop reconstructs the face boundary as an ordered cyclic vertex
// sequence from the unordered edge set: starting at an arbitrary edge
// it repeatedly hops to the other edge incident to the current vertex.
// The face must form a single closed cycle; use Validate to check.
func (f *Face) Loop() []geometry.Vector3 {
	if len(f.Edges) == 0 {
		return nil
	}

	loop := make([]geometry.Vector3, 0, len(f.Edges))
	edge := f.Edges[0]
	vertex := edge.V1

	// A simple cycle over n edges visits exactly n vertices, so the
	// walk is bounded even on malformed input.
	for range f.Edges {
		loop = append(loop, vertex)
		edge = f.otherEdge(edge, vertex)
		if edge == nil {
			break
		}
		vertex = edge.OtherVertex(vertex)
	}
	return loop
}

// otherEdge returns the edge other than e that has v as an endpoint, or
// nil if there is none
func (f *Face) otherEdge(e *Edge, v geometry.Vector3) *Edge {
	for _, other := range f.Edges {
		if other != e && other.HasVertex(v) {
			return other
		}
	}
	return nil
}

// validate checks the single-cycle invariant: at least 3 edges, every
// vertex an endpoint of exactly two edges, and one closed walk covering
// all of them.
func (f *Face) validate() error {
	if len(f.Edges) < 3 {
		return geometryErrorf("validate", "face has %d edges, need at least 3", len(f.Edges))
	}

	for _, e := range f.Edges {
		for _, v := range []geometry.Vector3{e.V1, e.V2} {
			degree := 0
			for _, other := range f.Edges {
				if other.HasVertex(v) {
					degree++
				}
			}
			if degree != 2 {
				return geometryErrorf("validate",
					"vertex (%g, %g, %g) belongs to %d edges, expected 2", v.X, v.Y, v.Z, degree)
			}
		}
	}

	// Walk the cycle; it must return to the start in exactly one pass
	// over all edges.
	edge := f.Edges[0]
	vertex := edge.V1
	first := vertex
	for steps := 1; ; steps++ {
		edge = f.otherEdge(edge, vertex)
		if edge == nil {
			return geometryErrorf("validate", "open edge chain in face")
		}
		vertex = edge.OtherVertex(vertex)
		if vertex.ApproxEqual(first) {
			if steps != len(f.Edges) {
				return geometryErrorf("validate",
					"edge cycle closes after %d of %d edges", steps, len(f.Edges))
			}
			return nil
		}
		if steps >= len(f.Edges) {
			return geometryErrorf("validate", "edge cycle does not close")
		}
	}
}
