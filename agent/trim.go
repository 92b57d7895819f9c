package agent

import (
	"github.com/arl/gogeo/f32"

	navmesh "github.com/arl/navmesh2d"
)

// TrimPathRadial shrinks the active path from its destination end: vertices
// that lie within dist of the original destination are dropped, and the
// final remaining segment is shortened to land exactly dist from the
// destination. A no-op if dist is zero or the path is empty.
//
// Ported from the source's Agent::trim_path_radial. The loop runs while at
// least two vertices remain, which keeps the path[i-1] access in range; if
// every vertex lies within dist, the path is left with its first vertex only.
func (a *Agent) TrimPathRadial(dist float32) {
	if dist == 0 || len(a.path) == 0 {
		return
	}
	last := a.path[len(a.path)-1]

	for len(a.path) > 1 {
		i := len(a.path) - 1
		d1 := a.path[i].Sub(last).LengthSquared()
		if d1 > dist*dist {
			return
		}
		d2 := a.path[i-1].Sub(last).LengthSquared()
		if d2 <= dist*dist {
			a.path = a.path[:i]
			continue
		}
		pos := a.path[i-1]
		seg := a.path[i].Sub(pos)
		segLen := seg.Length()
		dir := seg.Normalized()
		circle := navmesh.FloatCircle{Pos: last, Radius: dist}
		t, ok := navmesh.RayCircleIntersectNearest(pos, dir, circle)
		if ok {
			// t comes from a quadratic solve and can drift a hair outside the
			// segment right at the tangent case; clamp it back onto pos..path[i].
			t = f32.Clamp(t, 0, segLen)
			a.path[i] = pos.Add(dir.Scale(t))
		}
		return
	}
}

// TrimPathWalked shrinks the active path from its destination end by arc
// length: it walks the path backwards accumulating segment lengths and pops
// vertices while the accumulated length is strictly less than dist. Unlike
// TrimPathRadial it does not adjust the final segment's endpoint, so the
// result stops at the last whole vertex past the threshold.
func (a *Agent) TrimPathWalked(dist float32) {
	if dist == 0 || len(a.path) == 0 {
		return
	}
	var total float32
	for i := len(a.path) - 2; i >= 0; i-- {
		total += a.path[i].Sub(a.path[i+1]).Length()
		if total < dist {
			a.path = a.path[:len(a.path)-1]
		} else {
			break
		}
	}
}

// ClampPathWalked truncates the active path so its total length from
// path[0] does not exceed dist: it walks forward accumulating segment
// lengths and, once the threshold is crossed, replaces the final vertex with
// the point exactly dist along the path. A no-op if the path's total length
// is already within dist. If dist falls inside the first segment, that
// segment is shortened the same way; the path is not cleared.
func (a *Agent) ClampPathWalked(dist float32) {
	if len(a.path) == 0 {
		return
	}

	var total float32
	count := 1
	var step float32
	for i := 0; i < len(a.path)-1 && total < dist; i++ {
		step = a.path[i+1].Sub(a.path[i]).Length()
		total += step
		count++
	}

	if total <= dist {
		return
	}
	if count < 2 {
		a.path = nil
		return
	}

	a.path = a.path[:count]
	pos := a.path[len(a.path)-2]
	dir := a.path[len(a.path)-1].Sub(pos).Normalized()
	a.path[len(a.path)-1] = pos.Add(dir.Scale(f32.Clamp(step-(total-dist), 0, step)))
}

// ClampPathRadial is the intended radial dual of TrimPathRadial, anchored at
// the path's front instead of its back. The source this package is ported
// from flags its implementation as broken; this method refuses to execute
// it and returns ErrClampPathRadialBroken instead of risking a corrupted
// path.
func (a *Agent) ClampPathRadial(dist float32) error {
	return ErrClampPathRadialBroken
}
