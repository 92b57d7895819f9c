package navmesh

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// sizeMax marks an unused edge slot in the fixed three-slots-per-triangle
// on-disk layout.
const sizeMax uint64 = ^uint64(0)

// wireTriangle and wireEdge mirror the exact on-disk byte layout: tightly
// packed, little-endian, u64 indices.
type wireTriangle struct {
	A, B, C uint64
}

type wireVertex struct {
	X, Y float32
}

type wireEdge struct {
	Index uint64
	CX    float32
	CY    float32
	A, B  uint64
}

// Encode writes mesh to w in a fixed binary format: triangle table, then
// vertex table (each vertex divided by scale), then a fixed
// three-edge-slots-per-triangle adjacency table padded with sizeMax
// sentinels.
//
// Grounded on detour/mesh.go's ToWriter, which writes its own (more
// elaborate, tiled) format the same way: a header value followed by
// binary.Write against each record in turn.
func (m *NavMesh) Encode(w io.Writer, scale float32) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(m.Triangles))); err != nil {
		return fmt.Errorf("navmesh: writing triangle count: %w", err)
	}
	for _, t := range m.Triangles {
		wt := wireTriangle{uint64(t.A), uint64(t.B), uint64(t.C)}
		if err := binary.Write(w, binary.LittleEndian, wt); err != nil {
			return fmt.Errorf("navmesh: writing triangle: %w", err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(m.Vertices))); err != nil {
		return fmt.Errorf("navmesh: writing vertex count: %w", err)
	}
	for _, v := range m.Vertices {
		wv := wireVertex{v.X / scale, v.Y / scale}
		if err := binary.Write(w, binary.LittleEndian, wv); err != nil {
			return fmt.Errorf("navmesh: writing vertex: %w", err)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(m.Triangles))); err != nil {
		return fmt.Errorf("navmesh: writing edge count: %w", err)
	}
	empty := wireEdge{Index: sizeMax}
	for _, edges := range m.Edges {
		for slot := 0; slot < 3; slot++ {
			we := empty
			if slot < len(edges) {
				e := edges[slot]
				we = wireEdge{uint64(e.Index), e.Center.X, e.Center.Y, uint64(e.A), uint64(e.B)}
			}
			if err := binary.Write(w, binary.LittleEndian, we); err != nil {
				return fmt.Errorf("navmesh: writing edge slot: %w", err)
			}
		}
	}
	return nil
}

// Decode reads a NavMesh written by Encode, multiplying every vertex by
// scale on the way in (the inverse of Encode's divide-by-scale).
func Decode(r io.Reader, scale float32) (*NavMesh, error) {
	var triCount uint64
	if err := binary.Read(r, binary.LittleEndian, &triCount); err != nil {
		return nil, fmt.Errorf("navmesh: reading triangle count: %w", err)
	}
	triangles := make([]Triangle, triCount)
	for i := range triangles {
		var wt wireTriangle
		if err := binary.Read(r, binary.LittleEndian, &wt); err != nil {
			return nil, fmt.Errorf("navmesh: reading triangle %d: %w", i, err)
		}
		triangles[i] = Triangle{int(wt.A), int(wt.B), int(wt.C)}
	}

	var vertCount uint64
	if err := binary.Read(r, binary.LittleEndian, &vertCount); err != nil {
		return nil, fmt.Errorf("navmesh: reading vertex count: %w", err)
	}
	vertices := make([]Vec2f, vertCount)
	for i := range vertices {
		var wv wireVertex
		if err := binary.Read(r, binary.LittleEndian, &wv); err != nil {
			return nil, fmt.Errorf("navmesh: reading vertex %d: %w", i, err)
		}
		vertices[i] = Vec2f{wv.X * scale, wv.Y * scale}
	}

	var edgeCount uint64
	if err := binary.Read(r, binary.LittleEndian, &edgeCount); err != nil {
		return nil, fmt.Errorf("navmesh: reading edge count: %w", err)
	}
	edges := make([][]Edge, edgeCount)
	for i := range edges {
		var slots [3]Edge
		var n int
		for slot := 0; slot < 3; slot++ {
			var we wireEdge
			if err := binary.Read(r, binary.LittleEndian, &we); err != nil {
				return nil, fmt.Errorf("navmesh: reading edge %d slot %d: %w", i, slot, err)
			}
			if we.Index != sizeMax {
				slots[n] = Edge{int(we.Index), Vec2f{we.CX, we.CY}, int(we.A), int(we.B)}
				n++
			}
		}
		edges[i] = append([]Edge(nil), slots[:n]...)
	}

	return &NavMesh{Vertices: vertices, Triangles: triangles, Edges: edges}, nil
}

// WriteFile encodes mesh to filename, creating or truncating it.
func (m *NavMesh) WriteFile(filename string, scale float32) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("navmesh: %w", err)
	}
	defer f.Close()
	return m.Encode(f, scale)
}

// ReadFile decodes a NavMesh from filename.
func ReadFile(filename string, scale float32) (*NavMesh, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("navmesh: %w", err)
	}
	defer f.Close()
	return Decode(f, scale)
}
