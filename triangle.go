package navmesh

import (
	"fmt"

	"github.com/arl/assertgo"
	"github.com/arl/math32"
)

// degenerateTriDenom guards an optional invariant: a median/
// perpendicular-bisector intersection with a denominator this small means the
// triangle is degenerate. Inputs are assumed non-degenerate; Centroid and
// Circumcenter panic on such a denominator in every build instead of
// propagating NaN, and in debug builds an assertion fires first (see
// github.com/arl/assertgo, a no-op without the 'debug' build tag).
const degenerateTriDenom = 1e-5

// Triangle is three indices into a companion vertex slice. Winding order is
// not required to be consistent; every predicate below is sign-agnostic.
type Triangle struct {
	A, B, C int
}

// sign is twice the signed area of triangle (p, a, b).
func sign(p, a, b Vec2f) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// Contains reports whether p lies inside or on the boundary of the triangle.
//
// Points exactly on an edge count as inside: this is what lets two triangles
// sharing an edge both claim a point that lies on it, leaving the tie-break
// to the caller of point location (see NavMesh.GetTriangle). If withCorners
// is false, p exactly equal to one of the three vertices is reported as
// outside.
func (t Triangle) Contains(verts []Vec2f, p Vec2f, withCorners bool) bool {
	a, b, c := verts[t.A], verts[t.B], verts[t.C]

	if !withCorners && (p.Equal(a) || p.Equal(b) || p.Equal(c)) {
		return false
	}

	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// ContainsWithError is Contains against the triangle dilated about its
// centroid by a factor of (1+error). It is the fallback point-location uses
// when a point misses every triangle by floating-point drift, e.g. an agent
// standing exactly on a portal shared by two triangles.
func (t Triangle) ContainsWithError(verts []Vec2f, p Vec2f, errorFactor float32) bool {
	center := t.Centroid(verts)

	a := center.Add(verts[t.A].Sub(center).Scale(1 + errorFactor))
	b := center.Add(verts[t.B].Sub(center).Scale(1 + errorFactor))
	c := center.Add(verts[t.C].Sub(center).Scale(1 + errorFactor))

	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// Centroid returns the intersection of two medians of the triangle.
func (t Triangle) Centroid(verts []Vec2f) Vec2f {
	a, b, c := verts[t.A], verts[t.B], verts[t.C]

	m1 := a.Add(b.Sub(a).Scale(0.5))
	m2 := b.Add(c.Sub(b).Scale(0.5))
	v1 := c.Sub(m1)
	v2 := a.Sub(m2)

	den := v1.X*-v2.Y - v1.Y*-v2.X
	assert.True(math32.Abs(den) >= degenerateTriDenom, "degenerate triangle: %+v", t)
	if math32.Abs(den) < degenerateTriDenom {
		panic(fmt.Sprintf("navmesh: degenerate triangle %+v has no centroid", t))
	}

	k := m2.X - m1.X
	l := m2.Y - m1.Y
	l1 := (v2.X*l - v2.Y*k) / den

	return m1.Add(v1.Scale(l1))
}

// Circumcenter returns the intersection of two perpendicular bisectors of the
// triangle's sides.
func (t Triangle) Circumcenter(verts []Vec2f) Vec2f {
	a, b, c := verts[t.A], verts[t.B], verts[t.C]

	m1 := a.Add(b.Sub(a).Scale(0.5))
	m2 := b.Add(c.Sub(b).Scale(0.5))
	v1 := b.Sub(a).PerpCCW()
	v2 := c.Sub(b).PerpCCW()

	den := v1.X*-v2.Y - v1.Y*-v2.X
	assert.True(math32.Abs(den) >= degenerateTriDenom, "degenerate triangle: %+v", t)
	if math32.Abs(den) < degenerateTriDenom {
		panic(fmt.Sprintf("navmesh: degenerate triangle %+v has no circumcenter", t))
	}

	k := m2.X - m1.X
	l := m2.Y - m1.Y
	l1 := (v2.X*l - v2.Y*k) / den

	return m1.Add(v1.Scale(l1))
}
