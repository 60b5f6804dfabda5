package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigvaldm/GirafFE/pkg/polyhedron"
	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
	"github.com/sigvaldm/GirafFE/pkg/viewer"
)

var (
	renderOutput    string
	renderWidth     int
	renderHeight    int
	renderPlanes    []string
	renderWireframe bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render mesh cells to a PNG image",
	Long: `Render the mesh cells, optionally clipped by cutting planes, into a
PNG image using the software rasterizer.`,
	Args: cobra.ExactArgs(1),
	Run:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "out.png", "Output PNG file")
	renderCmd.Flags().IntVar(&renderWidth, "width", 1024, "Image width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 768, "Image height in pixels")
	renderCmd.Flags().StringArrayVarP(&renderPlanes, "plane", "p", nil, "Cutting plane as px,py,pz:nx,ny,nz (repeatable)")
	renderCmd.Flags().BoolVar(&renderWireframe, "wireframe", false, "Wireframe only, no filled faces")
}

func runRender(cmd *cobra.Command, args []string) {
	filename := args[0]

	planes, err := parsePlanes(renderPlanes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	mesh, err := tetmesh.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing tetmesh file: %v\n", err)
		os.Exit(1)
	}

	solids := make([]*polyhedron.Polyhedron, 0, mesh.CellCount())
	for i := 0; i < mesh.CellCount(); i++ {
		poly := mesh.CellPolyhedron(i)
		for _, plane := range planes {
			if err := poly.ClipPlane(plane); err != nil {
				fmt.Fprintf(os.Stderr, "Error clipping cell %d: %v\n", i, err)
				os.Exit(1)
			}
		}
		if poly.FaceCount() > 0 {
			solids = append(solids, poly)
		}
	}
	if len(solids) == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing left to render after clipping")
		os.Exit(1)
	}

	scene := viewer.NewScene(solids...)
	camera := viewer.NewCamera(scene.BoundingBox())

	opts := viewer.DefaultOptions()
	if renderWireframe {
		opts.Filled = false
	}

	img := scene.Render(camera, renderWidth, renderHeight, opts)

	file, err := os.Create(renderOutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %d solids to %s (%dx%d)\n", len(solids), renderOutput, renderWidth, renderHeight)
}
