package navmesh

import "github.com/arl/math32"

// RayCircleIntersectNearest returns the smallest non-negative t such that
// p+t*d lies on circle c, and whether such a t exists.
//
// Solves |p + t*d - c.Pos|^2 = c.Radius^2 as a quadratic in t. A near-zero
// discriminant (tangent ray) is treated specially to avoid the two roots
// diverging under float error; see DESIGN.md for why 1e-4 was kept as-is
// from the source this is ported from.
func RayCircleIntersectNearest(p, d Vec2f, c FloatCircle) (t float32, ok bool) {
	x := c.Pos.Dot(c.Pos) + p.Dot(p) - 2*c.Pos.Dot(p) - c.Radius*c.Radius
	y := 2 * d.Dot(c.Pos.Sub(p))
	z := d.Dot(d)

	disc := y*y - 4*x*z
	if disc < 0 {
		return 0, false
	}

	root := math32.Sqrt(disc)
	t1 := (y + root) / (2 * z)

	if math32.Abs(disc) < 1e-4 {
		if t1 < 0 {
			return 0, false
		}
		return t1, true
	}

	t2 := (y - root) / (2 * z)
	switch {
	case t1 < 0 && t2 < 0:
		return 0, false
	case t1 < 0:
		return t2, true
	case t2 < 0:
		return t1, true
	case t1 < t2:
		return t1, true
	default:
		return t2, true
	}
}
