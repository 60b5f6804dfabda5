// Package tetmesh reads and writes tetrahedral cell meshes in a small
// line-oriented ASCII format. A mesh is the collection of
// finite-element cells whose overlap volumes the clipping engine
// measures.
package tetmesh

import (
	"github.com/sigvaldm/GirafFE/pkg/geometry"
	"github.com/sigvaldm/GirafFE/pkg/polyhedron"
)

// Mesh represents a tetrahedral mesh: shared vertices plus cells
// indexing four of them each.
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Cells    [][4]int
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddCell appends a cell over four previously added vertices
func (m *Mesh) AddCell(i0, i1, i2, i3 int) {
	m.Cells = append(m.Cells, [4]int{i0, i1, i2, i3})
}

// VertexCount returns the number of vertices
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// CellCount returns the number of cells
func (m *Mesh) CellCount() int {
	return len(m.Cells)
}

// CellPoints returns the four corner points of cell i
func (m *Mesh) CellPoints(i int) [4]geometry.Vector3 {
	cell := m.Cells[i]
	return [4]geometry.Vector3{
		m.Vertices[cell[0]],
		m.Vertices[cell[1]],
		m.Vertices[cell[2]],
		m.Vertices[cell[3]],
	}
}

// CellPolyhedron builds the clippable boundary representation of cell i
func (m *Mesh) CellPolyhedron(i int) *polyhedron.Polyhedron {
	p := m.CellPoints(i)
	return polyhedron.NewTetrahedron(p[0], p[1], p[2], p[3])
}

// CellVolume returns the volume of cell i
func (m *Mesh) CellVolume(i int) float64 {
	return m.CellPolyhedron(i).Volume()
}

// TotalVolume returns the summed volume of all cells
func (m *Mesh) TotalVolume() float64 {
	total := 0.0
	for i := range m.Cells {
		total += m.CellVolume(i)
	}
	return total
}

// BoundingBox calculates the bounding box of the entire mesh
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, v := range m.Vertices {
		bbox.Extend(v)
	}
	return bbox
}
