package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about a tetmesh file",
	Long:  "Show mesh statistics including vertex and cell counts, bounding box, and cell volumes.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := tetmesh.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing tetmesh file: %v\n", err)
		os.Exit(1)
	}

	minVolume := math.MaxFloat64
	maxVolume := 0.0
	totalVolume := 0.0
	for i := 0; i < mesh.CellCount(); i++ {
		v := mesh.CellVolume(i)
		totalVolume += v
		if v < minVolume {
			minVolume = v
		}
		if v > maxVolume {
			maxVolume = v
		}
	}

	fmt.Println("Tetmesh File Information")
	fmt.Println("========================")
	if mesh.Name != "" {
		fmt.Printf("Name: %s\n", mesh.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", mesh.VertexCount())
	fmt.Printf("  Cells: %d\n", mesh.CellCount())
	fmt.Printf("  Total Volume: %.6f cubic units\n\n", totalVolume)

	bbox := mesh.BoundingBox()
	size := bbox.Size()
	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", formatVector(bbox.Min))
	fmt.Printf("  Max: %s\n", formatVector(bbox.Max))
	fmt.Printf("  Center: %s\n\n", formatVector(bbox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", size.X)
	fmt.Printf("  Depth (Y): %.6f units\n", size.Y)
	fmt.Printf("  Height (Z): %.6f units\n", size.Z)
	fmt.Printf("  Diagonal: %.6f units\n\n", bbox.Diagonal())

	if mesh.CellCount() > 0 {
		fmt.Println("Cell Volumes:")
		fmt.Printf("  Minimum: %.6f cubic units\n", minVolume)
		fmt.Printf("  Maximum: %.6f cubic units\n", maxVolume)
		fmt.Printf("  Average: %.6f cubic units\n", totalVolume/float64(mesh.CellCount()))
	}
}
