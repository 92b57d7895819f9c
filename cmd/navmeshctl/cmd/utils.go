package cmd

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v2"

	navmesh "github.com/arl/navmesh2d"
)

// check logs a fatal error and exits.
func check(err error) {
	if err != nil {
		logger.Fatalf("error: %v", err)
	}
}

// parseVec2 parses a "X,Y" flag value into a Vec2f.
func parseVec2(s string) (navmesh.Vec2f, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return navmesh.Vec2f{}, fmt.Errorf("expected X,Y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 32)
	if err != nil {
		return navmesh.Vec2f{}, fmt.Errorf("parsing X: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 32)
	if err != nil {
		return navmesh.Vec2f{}, fmt.Errorf("parsing Y: %w", err)
	}
	return navmesh.Vec2f{X: float32(x), Y: float32(y)}, nil
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}
