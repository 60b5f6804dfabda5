package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sigvaldm/GirafFE/version"
)

var rootCmd = &cobra.Command{
	Use:   "giraffe",
	Short: "Volumes of clipped tetrahedral finite-element cells",
	Long: `GirafFE computes volumes of convex solids obtained by intersecting
tetrahedral finite-element cells with sequences of half-spaces. It is used
to estimate overlap volumes between mesh cells and sampling regions such
as boxes and cylindrical probes.`,
	Version: version.GetVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
