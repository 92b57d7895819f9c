package navmesh

// Path is an ordered polyline: first point the source, last the
// destination, any intermediate points corners where the path changes
// direction.
type Path []Vec2f

// funnelVertex is one candidate vertex on a side of the funnel: its position
// in the side's list and its resolved position.
type funnelVertex struct {
	listIndex int
	pos       Vec2f
}

// posAngle reports whether u is to the left of v: whether rotating from v to
// u is a counter-clockwise (positive) turn.
func posAngle(u, v Vec2f) bool {
	return v.PerpCW().Dot(u) < 0
}

// funnel runs the string-pulling algorithm over a triangle corridor,
// producing the shortest taut polyline homotopic to it.
//
// Ported directly from original_source/src/mesh.cpp's funnel(): two parallel
// vertex lists (left/right) built from the portals crossed, an apex ("root")
// and a pair of arm candidates that tighten until one side's candidate crosses the
// other arm, at which point the crossed arm is emitted as the next apex and
// both arms restart from just past it.
func funnel(mesh *NavMesh, corridor []CrossInfo, begin, end Vec2f) Path {
	if len(corridor) == 2 && corridor[0].NextIndex == corridor[1].NextIndex {
		return Path{begin, end}
	}

	var listL, listR []funnelVertex
	for _, c := range corridor {
		if c.NeighborIndex != -1 {
			e := mesh.Edges[c.NextIndex][c.NeighborIndex]
			listL = append(listL, funnelVertex{listIndex: len(listL), pos: mesh.Vertices[e.A]})
			listR = append(listR, funnelVertex{listIndex: len(listR), pos: mesh.Vertices[e.B]})
		}
	}
	listL = append(listL, funnelVertex{listIndex: len(listL), pos: end})
	listR = append(listR, funnelVertex{listIndex: len(listR), pos: end})

	result := Path{begin}
	root := begin
	armL := listL[0]
	armR := listR[0]
	idxL, idxR := 0, 0

	for {
		idxL++
		if idxL == len(listL) {
			result = append(result, end)
			return result
		}
		newL := listL[idxL].pos
		if !posAngle(armL.pos.Sub(root), newL.Sub(root)) {
			if posAngle(newL.Sub(root), armR.pos.Sub(root)) {
				root = armR.pos
				result = append(result, root)
				idxR = armR.listIndex + 1
				armR = listR[idxR]
				idxL = idxR
				armL = listL[idxL]
			} else {
				armL = listL[idxL]
			}
		}

		idxR++
		if idxR == len(listR) {
			result = append(result, end)
			return result
		}
		newR := listR[idxR].pos
		if !posAngle(newR.Sub(root), armR.pos.Sub(root)) {
			if posAngle(armL.pos.Sub(root), newR.Sub(root)) {
				root = armL.pos
				result = append(result, root)
				idxL = armL.listIndex + 1
				armL = listL[idxL]
				idxR = idxL
				armR = listR[idxR]
			} else {
				armR = listR[idxR]
			}
		}
	}
}
