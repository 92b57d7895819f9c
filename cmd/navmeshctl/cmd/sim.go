package cmd

import (
	"github.com/spf13/cobra"

	navmesh "github.com/arl/navmesh2d"
	"github.com/arl/navmesh2d/agent"
)

var (
	simScale      float32
	simConfigPath string
)

// point is the YAML shape for a 2D coordinate in an agent.yml config file.
type point struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// simConfig is the YAML shape of the file passed to `navmeshctl sim
// --config`: a flat, hand-editable description of a scripted run.
type simConfig struct {
	Start   point   `yaml:"start"`
	Speed   float32 `yaml:"speed"`
	Targets []point `yaml:"targets"`
	DT      float32 `yaml:"dt"`
	Ticks   int     `yaml:"ticks"`
}

// simCmd represents the sim command.
var simCmd = &cobra.Command{
	Use:   "sim MESH.bin",
	Short: "step an agent through a scripted simulation",
	Long: `Decode a navmesh binary file, load an agent simulation from --config
(a start position, a speed, and a sequence of target positions), then step
the agent's Update loop, logging its position every tick.`,
	Args: cobra.ExactArgs(1),
	Run:  doSim,
}

func init() {
	RootCmd.AddCommand(simCmd)
	simCmd.Flags().Float32Var(&simScale, "scale", 1, "world-to-disk scale used when the mesh was written")
	simCmd.Flags().StringVar(&simConfigPath, "config", "agent.yml", "agent simulation config")
}

func doSim(cmd *cobra.Command, args []string) {
	mesh, err := navmesh.ReadFile(args[0], simScale)
	check(err)

	var cfg simConfig
	check(unmarshalYAMLFile(simConfigPath, &cfg))

	if cfg.Ticks <= 0 {
		cfg.Ticks = 1
	}

	a := agent.New(mesh)
	a.SetSpeed(cfg.Speed)
	if !a.SetPosition(navmesh.Vec2f{X: cfg.Start.X, Y: cfg.Start.Y}) {
		logger.Fatalf("start position %v is off the mesh", cfg.Start)
	}

	for ti, target := range cfg.Targets {
		goal := navmesh.Vec2f{X: target.X, Y: target.Y}
		if !a.SetTargetPosition(goal) {
			logger.Fatalf("target %d: no path from %v to %v", ti, a.Position(), goal)
		}

		for tick := 0; tick < cfg.Ticks && a.IsMoving(); tick++ {
			a.Update(cfg.DT)
			logger.Printf("target %d tick %d: pos=%.3f,%.3f", ti, tick, a.Position().X, a.Position().Y)
		}
	}
}
