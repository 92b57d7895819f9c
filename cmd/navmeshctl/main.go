// Command navmeshctl is a thin demonstrator over the navmesh and
// navmesh/agent packages: decode a mesh, run a pathfind, or step an agent
// through a scripted simulation.
package main

import "github.com/arl/navmesh2d/cmd/navmeshctl/cmd"

func main() {
	cmd.Execute()
}
