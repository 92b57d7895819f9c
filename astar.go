package navmesh

import "github.com/arl/math32"

// startErrorTolerance and endErrorTolerance are the point-location fallback
// factors Pathfind uses to resolve its endpoints: an agent standing
// imprecisely on a portal should still find a start triangle, but an
// unreachable goal must not be papered over by dilating every triangle.
const (
	startErrorTolerance = 0.05
	endErrorTolerance   = 0.0
)

// searchNode is the A* open/closed-set record for one triangle, addressed
// by a map (lut) rather than a pooled allocator, since our graph is a
// handful of triangles rather than a multi-tile polygon soup.
type searchNode struct {
	id     int
	parent int
	pos    Vec2f
	g, f   float32
}

// openHeap is a small binary min-heap on searchNode.f: bubble-up on push,
// trickle-down on pop, grown on demand instead of preallocated against a
// fixed capacity.
type openHeap struct {
	items []*searchNode
}

func (h *openHeap) empty() bool { return len(h.items) == 0 }

func (h *openHeap) push(n *searchNode) {
	h.items = append(h.items, n)
	i := len(h.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].f <= h.items[i].f {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *openHeap) pop() *searchNode {
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	h.trickleDown(0)
	return top
}

func (h *openHeap) trickleDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.items[left].f < h.items[smallest].f {
			smallest = left
		}
		if right < n && h.items[right].f < h.items[smallest].f {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}

func euclidean(a, b Vec2f) float32 {
	return b.Sub(a).Length()
}

// chebyshev is the A* heuristic H: an admissible lower bound on remaining
// cost given straight-line agent motion.
func chebyshev(a, b Vec2f) float32 {
	d := b.Sub(a)
	return math32.Max(math32.Abs(d.X), math32.Abs(d.Y))
}

// CrossInfo names one hop of a triangle corridor: the corridor passes through
// triangle NextIndex and leaves it through the portal at index NeighborIndex
// in NextIndex's own edge list. NeighborIndex is -1 for the terminal record,
// meaning "arrive at the final triangle; no further portal" (the source's
// SIZE_MAX sentinel).
type CrossInfo struct {
	NextIndex     int
	NeighborIndex int
}

// Pathfind runs A* over the triangle adjacency graph from begin to end, then
// string-pulls the resulting corridor into a taut path via the funnel
// algorithm. Returns nil if begin or end do not lie on the mesh, or if no
// corridor connects them; pathfinding failure is reported by a nil/empty
// result, never an error.
func (m *NavMesh) Pathfind(begin, end Vec2f) Path {
	beginIdx, ok := m.GetTriangle(begin, startErrorTolerance)
	if !ok {
		return nil
	}
	endIdx, ok := m.GetTriangle(end, endErrorTolerance)
	if !ok {
		return nil
	}
	if beginIdx == endIdx {
		return Path{begin, end}
	}

	lut := make(map[int]*searchNode)
	start := &searchNode{id: beginIdx, parent: beginIdx, pos: begin, g: 0, f: chebyshev(begin, end)}
	lut[beginIdx] = start

	open := &openHeap{}
	open.push(start)

	for !open.empty() {
		current := open.pop()

		if current.id == endIdx {
			return m.reconstructAndFunnel(lut, endIdx, begin, end)
		}

		cGCost := lut[current.id].g
		for _, e := range m.Edges[current.id] {
			dist := euclidean(lut[current.id].pos, e.Center)
			tentativeG := cGCost + dist

			neighbor, seen := lut[e.Index]
			if !seen {
				neighbor = &searchNode{id: e.Index, parent: e.Index, g: math32.Inf(1), f: math32.Inf(1)}
				lut[e.Index] = neighbor
			}

			if tentativeG < neighbor.g {
				updated := &searchNode{
					id:     e.Index,
					parent: current.id,
					pos:    e.Center,
					g:      tentativeG,
					f:      tentativeG + chebyshev(e.Center, end),
				}
				lut[e.Index] = updated
				open.push(updated)
			}
		}
	}

	return nil
}

// reconstructAndFunnel walks lut backwards from endIdx to the start sentinel
// (a node that is its own parent), building the forward CrossInfo corridor,
// then hands it to the funnel algorithm.
func (m *NavMesh) reconstructAndFunnel(lut map[int]*searchNode, endIdx int, begin, end Vec2f) Path {
	cur := endIdx
	corridor := []CrossInfo{{NextIndex: cur, NeighborIndex: -1}}

	node, ok := lut[cur]
	for ok && node.parent != cur {
		n := m.neighborIndex(node.parent, cur)
		cur = node.parent
		corridor = append([]CrossInfo{{NextIndex: cur, NeighborIndex: n}}, corridor...)
		node, ok = lut[cur]
	}

	return funnel(m, corridor, begin, end)
}
