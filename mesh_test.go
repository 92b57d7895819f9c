package navmesh

import "testing"

// unitSquareMesh is two triangles split by the (0,0)-(1,1) diagonal:
//
//	3---2
//	|  /|
//	| / |
//	|/  |
//	0---1
//
// triA = (0,1,2) covers the lower-right half, triB = (0,2,3) the upper-left
// half. Edge orientation (A=left, B=right of travel) was derived by hand
// from the apex rule described in DESIGN.md's "Open Questions resolved".
func unitSquareMesh() *NavMesh {
	verts := []Vec2f{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	tris := []Triangle{
		{0, 1, 2}, // triA
		{0, 2, 3}, // triB
	}
	edges := [][]Edge{
		{{Index: 1, Center: Vec2f{0.5, 0.5}, A: 2, B: 0}},
		{{Index: 0, Center: Vec2f{0.5, 0.5}, A: 0, B: 2}},
	}
	return NewNavMesh(verts, tris, edges)
}

func TestGetTrianglePointLocation(t *testing.T) {
	mesh := unitSquareMesh()

	tests := []struct {
		name    string
		p       Vec2f
		wantIdx int
		wantOK  bool
	}{
		{"inside triA", Vec2f{0.9, 0.1}, 0, true},
		{"inside triB", Vec2f{0.1, 0.9}, 1, true},
		{"on the shared diagonal", Vec2f{0.5, 0.5}, 0, true},
		{"outside the mesh", Vec2f{2, 2}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := mesh.GetTriangle(tt.p, 0)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && idx != tt.wantIdx {
				t.Errorf("idx = %d, want %d", idx, tt.wantIdx)
			}
		})
	}
}

func TestGetTriangleErrorTolerance(t *testing.T) {
	mesh := unitSquareMesh()

	p := Vec2f{1.01, 0.01}
	if _, ok := mesh.GetTriangle(p, 0); ok {
		t.Fatal("point should miss every triangle exactly")
	}
	if _, ok := mesh.GetTriangle(p, 0.1); !ok {
		t.Error("point should resolve with a dilation tolerance")
	}
}

func TestNeighborIndex(t *testing.T) {
	mesh := unitSquareMesh()
	if got := mesh.neighborIndex(0, 1); got != 0 {
		t.Errorf("neighborIndex(0,1) = %d, want 0", got)
	}
	if got := mesh.neighborIndex(0, 99); got != -1 {
		t.Errorf("neighborIndex(0,99) = %d, want -1", got)
	}
}

// cornerMesh is an L-shaped, single reflex-vertex mesh used to exercise the
// "around a corner" pathfinding case: a fan triangulation from the convex
// vertex (0,0) around an L-shaped outline whose inner notch corner sits at
// (1,1).
//
//	v5(0,2)---v4(1,2)
//	|  T4   / |
//	|     /   |
//	|   /  T3 |
//	| /    v3(1,1)---v2(2,1)
//	v0(0,0) T2 T1  |
//	|            /  |
//	v0------v1(2,0)
//
// (The sketch is approximate; the tables below are exact, and DESIGN.md
// gives the rule used to orient each portal.)
func cornerMesh() *NavMesh {
	verts := []Vec2f{
		{0, 0}, // v0
		{2, 0}, // v1
		{2, 1}, // v2
		{1, 1}, // v3 (reflex)
		{1, 2}, // v4
		{0, 2}, // v5
	}
	tris := []Triangle{
		{0, 1, 2}, // tri0: v0,v1,v2
		{0, 2, 3}, // tri1: v0,v2,v3
		{0, 3, 4}, // tri2: v0,v3,v4
		{0, 4, 5}, // tri3: v0,v4,v5
	}
	edges := [][]Edge{
		// tri0 -> tri1, portal (v0,v2)
		{{Index: 1, Center: Vec2f{1, 0.5}, A: 2, B: 0}},
		// tri1 -> tri2 (portal v0,v3), tri1 -> tri0 (portal v0,v2)
		{
			{Index: 2, Center: Vec2f{0.5, 0.5}, A: 3, B: 0},
			{Index: 0, Center: Vec2f{1, 0.5}, A: 0, B: 2},
		},
		// tri2 -> tri3 (portal v0,v4), tri2 -> tri1 (portal v0,v3)
		{
			{Index: 3, Center: Vec2f{0.5, 1}, A: 4, B: 0},
			{Index: 1, Center: Vec2f{0.5, 0.5}, A: 0, B: 3},
		},
		// tri3 -> tri2, portal (v0,v4)
		{{Index: 2, Center: Vec2f{0.5, 1}, A: 0, B: 4}},
	}
	return NewNavMesh(verts, tris, edges)
}
