// Package agent implements the point-mass traveller that consumes paths
// produced by the navmesh package: it owns a position, a speed, and an
// active path, advancing along that path one tick at a time.
//
// This plays a role similar to a crowd simulation's per-agent state
// (CrowdAgent) but without any neighbour avoidance and topology-optimization
// machinery — multi-agent coordination is an explicit non-goal here, so an
// Agent only ever deals with its own NavMesh and its own path.
package agent

import (
	"errors"

	navmesh "github.com/arl/navmesh2d"
)

// ErrClampPathRadialBroken is returned by ClampPathRadial: the algorithm it
// is meant to implement (the radial dual of TrimPathRadial, anchored at the
// path's front instead of its back) is flagged as broken in the source this
// package is ported from. Rather than silently miscomputing a path, the
// method refuses to run and leaves the Agent's path untouched.
var ErrClampPathRadialBroken = errors.New("agent: ClampPathRadial is broken upstream; refusing to execute")

// Agent is a point-mass traveller on a NavMesh. It holds a non-owning
// reference to the mesh: the caller must ensure the mesh outlives every
// Agent built on top of it.
type Agent struct {
	mesh *navmesh.NavMesh

	position navmesh.Vec2f
	speed    float32

	path         navmesh.Path
	pathIndex    int
	pathProgress float32

	overrideStop bool
}

// New returns an Agent positioned at the mesh's origin with speed 1 and no
// active path. Callers will typically call SetPosition immediately after.
func New(mesh *navmesh.NavMesh) *Agent {
	return &Agent{mesh: mesh, speed: 1}
}

// SetSpeed sets the agent's speed, in mesh units per 60Hz reference frame
// (see Update).
func (a *Agent) SetSpeed(speed float32) { a.speed = speed }

// Speed returns the agent's current speed.
func (a *Agent) Speed() float32 { return a.speed }

// SetPosition teleports the agent to pos and clears its active path. It
// fails and leaves the agent untouched if pos does not lie on the mesh
// (within a 5% dilation tolerance, matching Pathfind's start-point
// tolerance).
func (a *Agent) SetPosition(pos navmesh.Vec2f) bool {
	if _, ok := a.mesh.GetTriangle(pos, 0.05); !ok {
		return false
	}
	a.position = pos
	a.path = nil
	a.pathIndex = 0
	a.pathProgress = 0
	return true
}

// Position returns the agent's current position.
func (a *Agent) Position() navmesh.Vec2f { return a.position }

// SetTargetPosition pathfinds from the agent's current position to goal and,
// on success, replaces the active path. It fails and leaves the agent's path
// untouched if no path exists.
func (a *Agent) SetTargetPosition(goal navmesh.Vec2f) bool {
	path := a.mesh.Pathfind(a.position, goal)
	if len(path) == 0 {
		return false
	}
	a.path = path
	a.pathIndex = 0
	a.pathProgress = 0
	return true
}

// TargetPosition returns the destination of the active path, or the agent's
// current position if it has none.
func (a *Agent) TargetPosition() navmesh.Vec2f {
	if len(a.path) == 0 {
		return a.position
	}
	return a.path[len(a.path)-1]
}

// ActivePath returns the agent's current path.
func (a *Agent) ActivePath() navmesh.Path { return a.path }

// ActivePathLength returns the sum of the active path's segment lengths.
func (a *Agent) ActivePathLength() float32 {
	var total float32
	for i := 0; i < len(a.path)-1; i++ {
		total += a.path[i+1].Sub(a.path[i]).Length()
	}
	return total
}

// CurrentIndex returns the index of the path segment the agent is currently
// traversing.
func (a *Agent) CurrentIndex() int { return a.pathIndex }

// InverseIndex returns the number of segments left to walk, counting the
// current one: len(path)-1-CurrentIndex, which is 0 at the final vertex.
func (a *Agent) InverseIndex() int { return len(a.path) - 1 - a.pathIndex }

// IsMoving reports whether Update will advance the agent: it must have a
// path, not already be at the final vertex, and not be paused.
func (a *Agent) IsMoving() bool {
	return !(len(a.path) == 0 || a.pathIndex == len(a.path)-1 || a.overrideStop)
}

// Pause halts Update without discarding the active path.
func (a *Agent) Pause() { a.overrideStop = true }

// Start resumes Update after Pause.
func (a *Agent) Start() { a.overrideStop = false }

// Stop halts Update and discards the active path.
func (a *Agent) Stop() {
	a.overrideStop = true
	a.path = nil
	a.pathIndex = 0
	a.pathProgress = 0
}

// Update advances the agent one simulation tick of size dt. speed is in
// units per 60Hz frame, not per second: the step taken this tick is
// speed*dt*60. This ties Update's behaviour to a 60Hz reference frame
// regardless of the caller's actual tick rate, and callers must not rescale
// speed to "units per second" without accounting for it.
//
// A tick that would overshoot the current waypoint does not stall there: the
// agent moves onto the waypoint, advances the path index, and spends the
// remaining distance continuing in the direction of the segment it just
// finished. The remainder is not redirected along the next segment, and at
// most one waypoint is passed per call.
func (a *Agent) Update(dt float32) {
	if !a.IsMoving() {
		return
	}

	if a.path[a.pathIndex+1].Equal(a.position) {
		a.pathIndex++
		if a.pathIndex == len(a.path)-1 {
			return
		}
	}

	diff := a.path[a.pathIndex+1].Sub(a.position)
	dist := diff.Length()
	step := a.speed * dt * 60

	if dist < step {
		a.pathIndex++
		a.position = a.path[a.pathIndex]
		dir := diff.Scale(1 / dist)
		a.position = a.position.Add(dir.Scale(step - dist))
	} else {
		dir := diff.Scale(1 / dist)
		a.position = a.position.Add(dir.Scale(step))
	}
}
