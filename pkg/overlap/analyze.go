package overlap

import (
	"fmt"
	"math"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
	"github.com/sigvaldm/GirafFE/pkg/polyhedron"
	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
)

// CellOverlap describes one cell's intersection with a region
type CellOverlap struct {
	Cell     int     // cell index in the mesh
	Volume   float64 // full cell volume
	Overlap  float64 // intersection volume
	Fraction float64 // Overlap / Volume, 0 for degenerate cells
}

// Result contains the overlap analysis of a whole mesh against a region
type Result struct {
	CellCount     int
	MeshVolume    float64
	OverlapVolume float64
	Cells         []CellOverlap
	MinFraction   float64
	MaxFraction   float64
	AvgFraction   float64
}

// Volume returns the volume of the intersection between the
// tetrahedron spanned by the four cell corners and the region.
func Volume(cell [4]geometry.Vector3, region Region) (float64, error) {
	poly := polyhedron.NewTetrahedron(cell[0], cell[1], cell[2], cell[3])
	for _, plane := range region.Planes() {
		if err := poly.ClipPlane(plane); err != nil {
			return 0, fmt.Errorf("clipping cell by region plane: %w", err)
		}
		if poly.FaceCount() == 0 {
			return 0, nil
		}
	}
	return poly.Volume(), nil
}

// AnalyzeMesh computes per-cell overlap volumes and fractions for every
// cell of the mesh against the region
func AnalyzeMesh(mesh *tetmesh.Mesh, region Region) (*Result, error) {
	result := &Result{
		CellCount: mesh.CellCount(),
		Cells:     make([]CellOverlap, 0, mesh.CellCount()),
	}

	minFraction := math.MaxFloat64
	maxFraction := 0.0
	totalFraction := 0.0

	for i := 0; i < mesh.CellCount(); i++ {
		cellVolume := mesh.CellVolume(i)
		overlapVolume, err := Volume(mesh.CellPoints(i), region)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}

		fraction := 0.0
		if cellVolume > 0 {
			fraction = overlapVolume / cellVolume
		}

		result.Cells = append(result.Cells, CellOverlap{
			Cell:     i,
			Volume:   cellVolume,
			Overlap:  overlapVolume,
			Fraction: fraction,
		})
		result.MeshVolume += cellVolume
		result.OverlapVolume += overlapVolume

		totalFraction += fraction
		if fraction < minFraction {
			minFraction = fraction
		}
		if fraction > maxFraction {
			maxFraction = fraction
		}
	}

	if result.CellCount > 0 {
		result.MinFraction = minFraction
		result.MaxFraction = maxFraction
		result.AvgFraction = totalFraction / float64(result.CellCount)
	}
	return result, nil
}
