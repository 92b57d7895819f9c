package navmesh

import "testing"

func unitSquareVerts() []Vec2f {
	return []Vec2f{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestTriangleContains(t *testing.T) {
	verts := unitSquareVerts()
	tri := Triangle{0, 1, 2} // (0,0) (1,0) (1,1)

	tests := []struct {
		name string
		p    Vec2f
		want bool
	}{
		{"inside", Vec2f{0.8, 0.1}, true},
		{"on edge", Vec2f{0.5, 0}, true},
		{"on vertex", Vec2f{0, 0}, true},
		{"outside", Vec2f{0, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tri.Contains(verts, tt.p, true); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleContainsWithoutCorners(t *testing.T) {
	verts := unitSquareVerts()
	tri := Triangle{0, 1, 2}
	if tri.Contains(verts, Vec2f{0, 0}, false) {
		t.Error("corner should be excluded when withCorners is false")
	}
}

func TestTriangleContainsWithError(t *testing.T) {
	verts := unitSquareVerts()
	tri := Triangle{0, 1, 2}

	// Slightly outside the triangle but within a 10% dilation about its
	// centroid.
	p := Vec2f{1.02, 1.02}
	if tri.Contains(verts, p, true) {
		t.Fatal("point should be outside the undilated triangle")
	}
	if !tri.ContainsWithError(verts, p, 0.1) {
		t.Error("point should be inside the dilated triangle")
	}
	if tri.ContainsWithError(verts, p, 0.001) {
		t.Error("point should still be outside a barely-dilated triangle")
	}
}

func TestTriangleCentroid(t *testing.T) {
	verts := []Vec2f{{0, 0}, {3, 0}, {0, 3}}
	tri := Triangle{0, 1, 2}
	got := tri.Centroid(verts)
	want := Vec2f{1, 1}
	if absf(got.X-want.X) > 1e-3 || absf(got.Y-want.Y) > 1e-3 {
		t.Errorf("Centroid = %+v, want %+v", got, want)
	}
}

func TestTriangleCircumcenter(t *testing.T) {
	// Right triangle: circumcenter sits at the midpoint of the hypotenuse.
	verts := []Vec2f{{0, 0}, {4, 0}, {0, 4}}
	tri := Triangle{0, 1, 2}
	got := tri.Circumcenter(verts)
	want := Vec2f{2, 2}
	if absf(got.X-want.X) > 1e-3 || absf(got.Y-want.Y) > 1e-3 {
		t.Errorf("Circumcenter = %+v, want %+v", got, want)
	}
}
