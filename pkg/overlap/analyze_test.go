package overlap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
	"github.com/sigvaldm/GirafFE/pkg/overlap"
	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
)

func unitCell() [4]geometry.Vector3 {
	return [4]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
		geometry.NewVector3(0, 0, 1),
	}
}

func TestBoxOverlapCorner(t *testing.T) {
	// Clipping the unit corner tetrahedron to x,y,z <= 0.5 leaves
	// 5/48, the reference triple half-space result.
	box := overlap.Box{
		Min: geometry.NewVector3(-10, -10, -10),
		Max: geometry.NewVector3(0.5, 0.5, 0.5),
	}

	v, err := overlap.Volume(unitCell(), box)
	require.NoError(t, err)
	require.InDelta(t, 5.0/48.0, v, 1e-6)
}

func TestBoxContainsCell(t *testing.T) {
	box := overlap.Box{
		Min: geometry.NewVector3(-1, -1, -1),
		Max: geometry.NewVector3(2, 2, 2),
	}

	v, err := overlap.Volume(unitCell(), box)
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, v, 1e-9)
}

func TestBoxDisjointFromCell(t *testing.T) {
	box := overlap.Box{
		Min: geometry.NewVector3(5, 5, 5),
		Max: geometry.NewVector3(6, 6, 6),
	}

	v, err := overlap.Volume(unitCell(), box)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestCylinderOverlap(t *testing.T) {
	// A cell large enough to contain the whole probe: the overlap is
	// the prism volume, slightly above pi*r^2*h and converging to it.
	cell := [4]geometry.Vector3{
		geometry.NewVector3(-2, -2, -2),
		geometry.NewVector3(10, -2, -2),
		geometry.NewVector3(-2, 10, -2),
		geometry.NewVector3(-2, -2, 10),
	}
	cylinder := overlap.Cylinder{
		Center:   geometry.NewVector3(0, 0, 0.5),
		Radius:   0.5,
		Height:   1,
		Segments: 90,
	}

	v, err := overlap.Volume(cell, cylinder)
	require.NoError(t, err)

	exact := math.Pi * 0.5 * 0.5 * 1
	require.GreaterOrEqual(t, v, exact)
	require.InDelta(t, exact, v, 0.002)
}

func TestCylinderDefaultSegments(t *testing.T) {
	c := overlap.Cylinder{Radius: 1, Height: 1}
	require.Len(t, c.Planes(), 66) // 64 tangent planes + 2 caps
}

func TestHalfspacesRegion(t *testing.T) {
	// A single half-space keeping x <= 0.5 halves nothing but cuts the
	// corner exactly like one reference clip: 1/6 - (1/6)(1/2)^3 ... the
	// remaining slab volume is 1/6 - 1/48 = 7/48.
	region := overlap.Halfspaces{
		geometry.NewPlane(geometry.NewVector3(0.5, 0, 0), geometry.NewVector3(1, 0, 0)),
	}

	v, err := overlap.Volume(unitCell(), region)
	require.NoError(t, err)
	require.InDelta(t, 7.0/48.0, v, 1e-9)
}

func TestAnalyzeMesh(t *testing.T) {
	mesh := tetmesh.NewMesh("two cells")
	v0 := mesh.AddVertex(geometry.NewVector3(0, 0, 0))
	v1 := mesh.AddVertex(geometry.NewVector3(1, 0, 0))
	v2 := mesh.AddVertex(geometry.NewVector3(0, 1, 0))
	v3 := mesh.AddVertex(geometry.NewVector3(0, 0, 1))
	v4 := mesh.AddVertex(geometry.NewVector3(10, 10, 10))
	v5 := mesh.AddVertex(geometry.NewVector3(11, 10, 10))
	v6 := mesh.AddVertex(geometry.NewVector3(10, 11, 10))
	v7 := mesh.AddVertex(geometry.NewVector3(10, 10, 11))
	mesh.AddCell(v0, v1, v2, v3)
	mesh.AddCell(v4, v5, v6, v7)

	// Covers the first cell entirely, misses the second.
	box := overlap.Box{
		Min: geometry.NewVector3(-1, -1, -1),
		Max: geometry.NewVector3(2, 2, 2),
	}

	result, err := overlap.AnalyzeMesh(mesh, box)
	require.NoError(t, err)

	require.Equal(t, 2, result.CellCount)
	require.Len(t, result.Cells, 2)
	require.InDelta(t, 1.0, result.Cells[0].Fraction, 1e-9)
	require.Zero(t, result.Cells[1].Overlap)
	require.InDelta(t, 2.0/6.0, result.MeshVolume, 1e-9)
	require.InDelta(t, 1.0/6.0, result.OverlapVolume, 1e-9)
	require.InDelta(t, 0.5, result.AvgFraction, 1e-9)
	require.Zero(t, result.MinFraction)
	require.InDelta(t, 1.0, result.MaxFraction, 1e-9)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	result, err := overlap.AnalyzeMesh(tetmesh.NewMesh("empty"), overlap.Box{})
	require.NoError(t, err)
	require.Zero(t, result.CellCount)
	require.Zero(t, result.OverlapVolume)
}
