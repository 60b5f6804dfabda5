package polyhedron

import (
	"math"
	"testing"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
)

func unitXPlane(x float64) geometry.Plane {
	return geometry.NewPlane(geometry.NewVector3(x, 0, 0), geometry.NewVector3(1, 0, 0))
}

func TestClipEdgeFullyBehind(t *testing.T) {
	e := NewEdge(geometry.NewVector3(-1, 0, 0), geometry.NewVector3(-2, 1, 0))
	keep, capVertex, err := clipEdge(e, unitXPlane(0))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !keep {
		t.Error("edge fully behind the plane must be kept")
	}
	if capVertex != nil {
		t.Errorf("expected no cap vertex, got %v", *capVertex)
	}
	if e.V1 != geometry.NewVector3(-1, 0, 0) || e.V2 != geometry.NewVector3(-2, 1, 0) {
		t.Error("edge fully behind the plane must not be modified")
	}
}

func TestClipEdgeFullyInFront(t *testing.T) {
	e := NewEdge(geometry.NewVector3(1, 0, 0), geometry.NewVector3(2, 1, 0))
	keep, capVertex, err := clipEdge(e, unitXPlane(0))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keep {
		t.Error("edge fully in front of the plane must be discarded")
	}
	if capVertex != nil {
		t.Errorf("expected no cap vertex, got %v", *capVertex)
	}
}

func TestClipEdgeStraddling(t *testing.T) {
	e := NewEdge(geometry.NewVector3(-1, 0, 0), geometry.NewVector3(1, 0, 0))
	keep, capVertex, err := clipEdge(e, unitXPlane(0))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !keep {
		t.Error("straddling edge must be kept")
	}
	if capVertex == nil {
		t.Fatal("straddling edge must produce a cap vertex")
	}

	expected := geometry.NewVector3(0, 0, 0)
	if capVertex.Distance(expected) > 1e-10 {
		t.Errorf("cap vertex: expected %v, got %v", expected, *capVertex)
	}
	if e.V2.Distance(expected) > 1e-10 {
		t.Errorf("front endpoint not trimmed to the plane: %v", e.V2)
	}
	if e.V1 != geometry.NewVector3(-1, 0, 0) {
		t.Errorf("behind endpoint must stay put, got %v", e.V1)
	}
}

func TestClipEdgeTrimsFrontEndpointOnly(t *testing.T) {
	// Same edge, reversed orientation: now V1 is the front endpoint.
	e := NewEdge(geometry.NewVector3(1, 0, 0), geometry.NewVector3(-1, 0, 0))
	keep, capVertex, err := clipEdge(e, unitXPlane(0))

	if err != nil || !keep || capVertex == nil {
		t.Fatalf("keep=%v capVertex=%v err=%v", keep, capVertex, err)
	}
	if e.V1.Distance(geometry.NewVector3(0, 0, 0)) > 1e-10 {
		t.Errorf("V1 not trimmed to the plane: %v", e.V1)
	}
	if e.V2 != geometry.NewVector3(-1, 0, 0) {
		t.Errorf("V2 must stay put, got %v", e.V2)
	}
}

func TestClipEdgeOnPlaneEndpoint(t *testing.T) {
	// V1 exactly on the plane, V2 behind: kept unchanged, V1 seeds the
	// cap polygon.
	e := NewEdge(geometry.NewVector3(0, 2, 0), geometry.NewVector3(-1, 0, 0))
	keep, capVertex, err := clipEdge(e, unitXPlane(0))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !keep {
		t.Error("edge with an on-plane endpoint must be kept")
	}
	if capVertex == nil {
		t.Fatal("on-plane endpoint must be reported as a cap vertex")
	}
	if *capVertex != geometry.NewVector3(0, 2, 0) {
		t.Errorf("cap vertex: expected the on-plane endpoint, got %v", *capVertex)
	}
	if e.Length() != math.Sqrt(5) {
		t.Error("edge with an on-plane endpoint must not be trimmed")
	}
}

func TestClipEdgeOnPlaneEndpointWithFrontOpposite(t *testing.T) {
	// V1 on the plane, V2 in front: both count as "in front", so the
	// whole edge goes. This is what keeps the per-face cap vertex count
	// at 0 or 2 when the plane passes through an existing vertex.
	e := NewEdge(geometry.NewVector3(0, 2, 0), geometry.NewVector3(1, 0, 0))
	keep, capVertex, err := clipEdge(e, unitXPlane(0))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keep || capVertex != nil {
		t.Errorf("edge between plane and front side must be discarded, keep=%v capVertex=%v", keep, capVertex)
	}
}

func TestEdgeOtherVertex(t *testing.T) {
	v1 := geometry.NewVector3(0, 0, 0)
	v2 := geometry.NewVector3(1, 2, 3)
	e := NewEdge(v1, v2)

	if e.OtherVertex(v1) != v2 {
		t.Error("OtherVertex(v1) should be v2")
	}
	if e.OtherVertex(v2) != v1 {
		t.Error("OtherVertex(v2) should be v1")
	}
}
