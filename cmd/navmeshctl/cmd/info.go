package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	navmesh "github.com/arl/navmesh2d"
)

var infoScale float32

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info MESH.bin",
	Short: "show info about a navmesh file",
	Long:  `Decode a navmesh binary file and print its vertex, triangle, and edge counts.`,
	Args:  cobra.ExactArgs(1),
	Run:   doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().Float32Var(&infoScale, "scale", 1, "world-to-disk scale used when the mesh was written")
}

func doInfo(cmd *cobra.Command, args []string) {
	mesh, err := navmesh.ReadFile(args[0], infoScale)
	check(err)

	nEdges := 0
	for _, es := range mesh.Edges {
		nEdges += len(es)
	}

	fmt.Printf("vertices:  %d\n", len(mesh.Vertices))
	fmt.Printf("triangles: %d\n", len(mesh.Triangles))
	fmt.Printf("portals:   %d\n", nEdges)
}
