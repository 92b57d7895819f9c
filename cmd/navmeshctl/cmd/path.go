package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	navmesh "github.com/arl/navmesh2d"
)

var (
	pathScale    float32
	pathFromFlag string
	pathToFlag   string
)

// pathCmd represents the path command.
var pathCmd = &cobra.Command{
	Use:   "path MESH.bin",
	Short: "pathfind between two points on a navmesh",
	Long:  `Decode a navmesh binary file and run Pathfind between --from and --to, printing the resulting path.`,
	Args:  cobra.ExactArgs(1),
	Run:   doPath,
}

func init() {
	RootCmd.AddCommand(pathCmd)
	pathCmd.Flags().Float32Var(&pathScale, "scale", 1, "world-to-disk scale used when the mesh was written")
	pathCmd.Flags().StringVar(&pathFromFlag, "from", "", "start point, as X,Y (required)")
	pathCmd.Flags().StringVar(&pathToFlag, "to", "", "end point, as X,Y (required)")
	pathCmd.MarkFlagRequired("from")
	pathCmd.MarkFlagRequired("to")
}

func doPath(cmd *cobra.Command, args []string) {
	mesh, err := navmesh.ReadFile(args[0], pathScale)
	check(err)

	from, err := parseVec2(pathFromFlag)
	check(err)
	to, err := parseVec2(pathToFlag)
	check(err)

	path := mesh.Pathfind(from, to)
	if path == nil {
		logger.Fatalf("no path found from %v to %v", from, to)
	}

	for i, p := range path {
		fmt.Printf("%d: %.3f,%.3f\n", i, p.X, p.Y)
	}
}
