// Package navmesh implements the core of a 2D navigation-mesh runtime: point
// location on a triangle mesh, A* search over triangle adjacency, and the
// funnel algorithm that turns a triangle corridor into a taut path.
//
// Mesh generation (voxelization, Delaunay triangulation, simplification) and
// rendering are not part of this package; a NavMesh is assumed to arrive
// pre-built and internally consistent. See the agent subpackage for the
// point-mass traveller that consumes paths produced here.
package navmesh
