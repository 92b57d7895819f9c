package navmesh

// Edge describes a portal from the owning triangle to a neighbouring one.
//
// Center is the midpoint of the shared edge, used as the A* node position
// for any triangle reached through this portal. A and B are the shared
// edge's two vertex indices, stored so that A is "left of travel" and B is
// "right of travel" when crossing out of the triangle this Edge lives under
// into triangle Index (see the funnel algorithm in funnel.go). Mesh builders establish this
// orientation; it is an input invariant, not something this package derives.
type Edge struct {
	Index  int
	Center Vec2f
	A, B   int
}

// NavMesh is the central aggregate of the runtime: vertices, triangles
// indexing into them, and per-triangle portal lists describing adjacency.
//
// A NavMesh is immutable after construction and may be read concurrently by
// any number of callers (point location, pathfinding); nothing in this
// package mutates a NavMesh's fields after NewNavMesh/Decode returns it.
type NavMesh struct {
	Vertices  []Vec2f
	Triangles []Triangle
	Edges     [][]Edge
}

// NewNavMesh assembles a NavMesh from its three parallel tables. It performs
// no validation: invariants such as symmetric adjacency, non-degenerate
// triangles, and geometrically shared edges are assumed to already hold,
// exactly as a mesh generator collaborator would guarantee them.
func NewNavMesh(vertices []Vec2f, triangles []Triangle, edges [][]Edge) *NavMesh {
	return &NavMesh{Vertices: vertices, Triangles: triangles, Edges: edges}
}

// GetTriangle locates the triangle containing p, linearly scanning
// Triangles and returning the index of the first match.
//
// If no triangle's exact Contains test matches and errorFactor is non-zero,
// the scan is repeated with ContainsWithError(errorFactor); this lets a
// point exactly on a portal, or just outside every triangle due to float
// drift, still resolve to a triangle. Returns ok=false if neither scan
// matches.
func (m *NavMesh) GetTriangle(p Vec2f, errorFactor float32) (idx int, ok bool) {
	for i, tri := range m.Triangles {
		if tri.Contains(m.Vertices, p, true) {
			return i, true
		}
	}
	if errorFactor == 0 {
		return 0, false
	}
	for i, tri := range m.Triangles {
		if tri.ContainsWithError(m.Vertices, p, errorFactor) {
			return i, true
		}
	}
	return 0, false
}

// neighborIndex finds i such that Edges[a][i].Index == b, or -1 if a and b
// are not adjacent. Used while walking the A* parent chain back into a
// portal-indexed corridor (see CrossInfo in astar.go).
func (m *NavMesh) neighborIndex(a, b int) int {
	for i, e := range m.Edges[a] {
		if e.Index == b {
			return i
		}
	}
	return -1
}
