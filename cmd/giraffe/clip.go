package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
)

var (
	clipPlanes []string
	clipCell   int
)

var clipCmd = &cobra.Command{
	Use:   "clip [file]",
	Short: "Clip mesh cells by half-spaces and report remaining volumes",
	Long: `Intersect every cell (or a single cell selected with --cell) with the
given cutting planes and report the volume left behind each plane set.
Planes are given as point:normal, e.g. --plane 0.5,0,0:1,0,0 which cuts
away everything with x > 0.5.`,
	Args: cobra.ExactArgs(1),
	Run:  runClip,
}

func init() {
	rootCmd.AddCommand(clipCmd)

	clipCmd.Flags().StringArrayVarP(&clipPlanes, "plane", "p", nil, "Cutting plane as px,py,pz:nx,ny,nz (repeatable)")
	clipCmd.Flags().IntVarP(&clipCell, "cell", "c", -1, "Only this cell index (default: all cells)")
	clipCmd.MarkFlagRequired("plane")
}

func runClip(cmd *cobra.Command, args []string) {
	filename := args[0]

	planes, err := parsePlanes(clipPlanes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mesh, err := tetmesh.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing tetmesh file: %v\n", err)
		os.Exit(1)
	}

	cells := make([]int, 0, mesh.CellCount())
	if clipCell >= 0 {
		if clipCell >= mesh.CellCount() {
			fmt.Fprintf(os.Stderr, "Error: cell %d out of range (mesh has %d cells)\n",
				clipCell, mesh.CellCount())
			os.Exit(1)
		}
		cells = append(cells, clipCell)
	} else {
		for i := 0; i < mesh.CellCount(); i++ {
			cells = append(cells, i)
		}
	}

	fmt.Println("Clipped Cell Volumes")
	fmt.Println("====================")
	fmt.Printf("Cutting planes: %d\n\n", len(planes))
	fmt.Printf("%-8s %-18s %-18s %-10s\n", "Cell", "Volume", "Clipped", "Faces")

	totalBefore := 0.0
	totalAfter := 0.0
	for _, i := range cells {
		poly := mesh.CellPolyhedron(i)
		before := poly.Volume()

		for _, plane := range planes {
			if err := poly.ClipPlane(plane); err != nil {
				fmt.Fprintf(os.Stderr, "Error clipping cell %d: %v\n", i, err)
				os.Exit(1)
			}
		}
		after := poly.Volume()

		fmt.Printf("%-8d %-18.9f %-18.9f %-10d\n", i, before, after, poly.FaceCount())
		totalBefore += before
		totalAfter += after
	}

	fmt.Printf("\nTotal: %.9f of %.9f cubic units remain\n", totalAfter, totalBefore)
}
