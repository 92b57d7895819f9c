package navmesh

import "testing"

func TestPosAngle(t *testing.T) {
	// u to the left of v: rotating from v=(1,0) to u=(0,1) is CCW.
	if !posAngle(Vec2f{0, 1}, Vec2f{1, 0}) {
		t.Error("posAngle should be true for a CCW turn")
	}
	if posAngle(Vec2f{0, -1}, Vec2f{1, 0}) {
		t.Error("posAngle should be false for a CW turn")
	}
}

// TestFunnelEndpoints is testable property 5: the returned path always
// starts at begin and ends at end, for every mesh and reachable pair.
func TestFunnelEndpoints(t *testing.T) {
	meshes := []*NavMesh{unitSquareMesh(), cornerMesh()}
	cases := []struct{ begin, end Vec2f }{
		{Vec2f{0.1, 0.9}, Vec2f{0.9, 0.1}},
		{Vec2f{0.5, 2}, Vec2f{2, 0.5}},
	}
	for _, mesh := range meshes {
		for _, c := range cases {
			path := mesh.Pathfind(c.begin, c.end)
			if path == nil {
				continue
			}
			if path[0] != c.begin {
				t.Errorf("path starts at %v, want %v", path[0], c.begin)
			}
			if path[len(path)-1] != c.end {
				t.Errorf("path ends at %v, want %v", path[len(path)-1], c.end)
			}
		}
	}
}

// TestFunnelVerticesAreMeshVertices is testable property 4: every corner of
// a funnelled path other than begin/end must be one of the mesh's own
// vertices.
func TestFunnelVerticesAreMeshVertices(t *testing.T) {
	mesh := cornerMesh()
	begin, end := Vec2f{0.5, 2}, Vec2f{2, 0.5}
	path := mesh.Pathfind(begin, end)

	for _, p := range path[1 : len(path)-1] {
		found := false
		for _, v := range mesh.Vertices {
			if absf(p.X-v.X) < 1e-4 && absf(p.Y-v.Y) < 1e-4 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("corner %+v is not a mesh vertex", p)
		}
	}
}
