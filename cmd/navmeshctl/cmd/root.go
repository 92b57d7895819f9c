package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "navmeshctl",
	Short: "inspect and drive 2D navigation meshes",
	Long: `navmeshctl is the command-line companion to navmesh2d:
	- show info about a binary navmesh file,
	- run a single pathfind and print the resulting path,
	- step an agent through a scripted simulation (YAML config).`,
}

// Execute adds all child commands to RootCmd and runs it. Called once by
// main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
