package tetmesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sigvaldm/GirafFE/pkg/geometry"
)

// Parse reads a tetmesh file
func Parse(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseReader(file)
}

// ParseReader reads the ASCII tetmesh format:
//
//	tetmesh <name>
//	vertex <x> <y> <z>
//	cell <i0> <i1> <i2> <i3>
//	end
//
// Vertices are indexed from 0 in order of appearance; cells reference
// them by index. Unknown keywords are skipped.
func ParseReader(reader io.Reader) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := NewMesh("")

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "tetmesh":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var coords [3]float64
			for i := 0; i < 3; i++ {
				c, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad coordinate %q: %w", lineNo, fields[i+1], err)
				}
				coords[i] = c
			}
			mesh.Vertices = append(mesh.Vertices, geometry.NewVector3(coords[0], coords[1], coords[2]))

		case "cell":
			if len(fields) < 5 {
				return nil, fmt.Errorf("line %d: cell needs 4 vertex indices", lineNo)
			}
			var cell [4]int
			for i := 0; i < 4; i++ {
				idx, err := strconv.Atoi(fields[i+1])
				if err != nil {
					return nil, fmt.Errorf("line %d: bad vertex index %q: %w", lineNo, fields[i+1], err)
				}
				if idx < 0 || idx >= len(mesh.Vertices) {
					return nil, fmt.Errorf("line %d: vertex index %d out of range (have %d vertices)",
						lineNo, idx, len(mesh.Vertices))
				}
				cell[i] = idx
			}
			mesh.Cells = append(mesh.Cells, cell)

		case "end":
			return mesh, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading tetmesh: %w", err)
	}
	return mesh, nil
}

// Write emits the mesh in the ASCII tetmesh format read by ParseReader
func (m *Mesh) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "tetmesh %s\n", m.Name)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "vertex %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, c := range m.Cells {
		fmt.Fprintf(bw, "cell %d %d %d %d\n", c[0], c[1], c[2], c[3])
	}
	fmt.Fprintln(bw, "end")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing tetmesh: %w", err)
	}
	return nil
}

// WriteFile writes the mesh to a file
func (m *Mesh) WriteFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return m.Write(file)
}
