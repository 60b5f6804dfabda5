package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigvaldm/GirafFE/pkg/tetmesh"
)

var volumeCell int

var volumeCmd = &cobra.Command{
	Use:   "volume [file]",
	Short: "Compute cell volumes of a tetmesh file",
	Long:  "Compute the volume of every cell in the mesh, or of a single cell selected with --cell.",
	Args:  cobra.ExactArgs(1),
	Run:   runVolume,
}

func init() {
	rootCmd.AddCommand(volumeCmd)

	volumeCmd.Flags().IntVarP(&volumeCell, "cell", "c", -1, "Only this cell index (default: all cells)")
}

func runVolume(cmd *cobra.Command, args []string) {
	filename := args[0]

	mesh, err := tetmesh.Parse(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing tetmesh file: %v\n", err)
		os.Exit(1)
	}

	if volumeCell >= 0 {
		if volumeCell >= mesh.CellCount() {
			fmt.Fprintf(os.Stderr, "Error: cell %d out of range (mesh has %d cells)\n",
				volumeCell, mesh.CellCount())
			os.Exit(1)
		}
		fmt.Printf("Cell %d volume: %.9f cubic units\n", volumeCell, mesh.CellVolume(volumeCell))
		return
	}

	fmt.Println("Cell Volumes")
	fmt.Println("============")
	fmt.Printf("%-8s %-18s\n", "Cell", "Volume")
	for i := 0; i < mesh.CellCount(); i++ {
		fmt.Printf("%-8d %-18.9f\n", i, mesh.CellVolume(i))
	}
	fmt.Printf("\nTotal: %.9f cubic units over %d cells\n", mesh.TotalVolume(), mesh.CellCount())
}
