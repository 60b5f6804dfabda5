package polyhedron

import "fmt"

// Validate checks the structural invariants of the boundary: every
// face forms a single closed edge cycle of at least three edges, and no
// edge storage is shared between two face slots. It returns the first
// violation found, or nil. Clip re-checks the ownership invariant
// itself; Validate is for tests and for callers that mutate faces
// directly.
func (p *Polyhedron) Validate() error {
	if err := p.checkEdgeOwnership(); err != nil {
		return err
	}
	for i, face := range p.Faces {
		if err := face.validate(); err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
	}
	return nil
}

// checkEdgeOwnership verifies that every edge is referenced by exactly
// one face slot. Endpoints live by value inside their Edge, so unique
// edge pointers imply unique coordinate storage: trimming one edge
// cannot alias into another.
func (p *Polyhedron) checkEdgeOwnership() error {
	seen := make(map[*Edge]struct{}, p.EdgeCount())
	for _, face := range p.Faces {
		for _, e := range face.Edges {
			if _, dup := seen[e]; dup {
				return geometryErrorf("validate", "edge storage shared between face slots")
			}
			seen[e] = struct{}{}
		}
	}
	return nil
}
