// Package polyhedron implements an incremental boundary-representation
// clipping engine for convex solids. A Polyhedron starts as a
// tetrahedron, is intersected in place with a sequence of half-spaces,
// and is read back out as a volume. It is the core used to estimate
// overlap volumes between finite-element cells and sampling regions.
package polyhedron

import (
	"math"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
)

// Polyhedron is a closed convex solid represented by its boundary
// faces. It is not safe for concurrent use; Clip mutates in place.
type Polyhedron struct {
	Faces []*Face
}

// tetraFaceEdges groups the 6 pairwise edges of the 4 construction
// vertices into 4 triangular faces. Edges are indexed by the canonical
// enumeration of the unordered vertex pairs:
// 0:(0,1) 1:(0,2) 2:(0,3) 3:(1,2) 4:(1,3) 5:(2,3).
var tetraFaceEdges = [4][3]int{
	{3, 4, 5},
	{1, 2, 5},
	{0, 2, 4},
	{0, 1, 3},
}

// NewTetrahedron builds the boundary of the tetrahedron spanned by
// four points. The points must be affinely independent; a degenerate
// (flat) tetrahedron yields a solid with zero volume whose clipping
// behavior is undefined.
func NewTetrahedron(p0, p1, p2, p3 geometry.Vector3) *Polyhedron {
	vertices := [4]geometry.Vector3{p0, p1, p2, p3}

	var pairs [6][2]int
	k := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			pairs[k] = [2]int{i, j}
			k++
		}
	}

	poly := &Polyhedron{Faces: make([]*Face, 0, 4)}
	for _, edgeIndices := range tetraFaceEdges {
		face := &Face{Edges: make([]*Edge, 0, 3)}
		for _, ei := range edgeIndices {
			// Every face slot gets its own allocation, even for
			// geometrically shared edges.
			pair := pairs[ei]
			face.Edges = append(face.Edges, NewEdge(vertices[pair[0]], vertices[pair[1]]))
		}
		poly.Faces = append(poly.Faces, face)
	}
	return poly
}

// Clip intersects the solid in place with the half-space behind the
// plane through point with the given normal, {x : (x-point)·normal < 0}.
// A plane missing the solid is a no-op; a plane in front of the whole
// solid empties it. A non-nil error reports a violated geometric
// invariant and leaves the polyhedron in an unusable state; it must
// then be discarded.
func (p *Polyhedron) Clip(point, normal geometry.Vector3) error {
	return p.ClipPlane(geometry.NewPlane(point, normal))
}

// ClipPlane is Clip for a prebuilt plane
func (p *Polyhedron) ClipPlane(plane geometry.Plane) error {
	var capEdges []*Edge
	kept := make([]*Face, 0, len(p.Faces))

	for _, face := range p.Faces {
		capEdge, err := face.clip(plane)
		if err != nil {
			return err
		}
		if capEdge != nil {
			capEdges = append(capEdges, capEdge)
		}
		if len(face.Edges) > 0 {
			kept = append(kept, face)
		}
	}
	p.Faces = kept

	// Fewer than three cap edges means the plane at most grazed an
	// edge or vertex; no new face then.
	if len(capEdges) >= 3 {
		p.Faces = append(p.Faces, &Face{Edges: capEdges})
	}

	return p.checkEdgeOwnership()
}

// Volume computes the enclosed volume by decomposing the boundary into
// signed tetrahedra from a reference vertex of the solid itself and
// summing their scalar triple products. Faces containing the reference
// vertex contribute only degenerate tetrahedra and are skipped.
func (p *Polyhedron) Volume() float64 {
	if len(p.Faces) == 0 {
		return 0
	}

	a := p.Faces[0].Edges[0].V1
	total := 0.0
	for _, face := range p.Faces {
		loop := face.Loop()
		if loopContains(loop, a) {
			continue
		}
		b := loop[0]
		for i := 1; i < len(loop)-1; i++ {
			c := loop[i]
			d := loop[i+1]
			total += math.Abs(a.Sub(d).Dot(b.Sub(d).Cross(c.Sub(d))))
		}
	}
	return total / 6.0
}

// FaceCount returns the number of boundary faces
func (p *Polyhedron) FaceCount() int {
	return len(p.Faces)
}

// EdgeCount returns the number of edge slots over all faces. Each
// geometric edge of the solid is counted once per face that borders it.
func (p *Polyhedron) EdgeCount() int {
	n := 0
	for _, face := range p.Faces {
		n += len(face.Edges)
	}
	return n
}

// BoundingBox returns the axis-aligned bounds of the solid
func (p *Polyhedron) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, face := range p.Faces {
		for _, e := range face.Edges {
			bbox.Extend(e.V1)
			bbox.Extend(e.V2)
		}
	}
	return bbox
}

func loopContains(loop []geometry.Vector3, v geometry.Vector3) bool {
	for _, lv := range loop {
		if lv.ApproxEqual(v) {
			return true
		}
	}
	return false
}
