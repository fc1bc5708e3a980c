// Package mesh holds triangle mesh data and the geometry passes run on it
// before upload: vertex duplication and normal computation.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Topology describes how positions or indices are grouped into primitives.
type Topology uint8

const (
	// TriangleList groups every 3 consecutive indices (or positions) into one triangle.
	TriangleList Topology = iota
	TriangleStrip
	LineList
)

func (t Topology) String() string {
	switch t {
	case TriangleList:
		return "TriangleList"
	case TriangleStrip:
		return "TriangleStrip"
	case LineList:
		return "LineList"
	}
	return fmt.Sprintf("Topology(%d)", uint8(t))
}

// Mesh is a set of vertex attributes with an optional index buffer.
// A nil Indices slice means the mesh is unindexed.
type Mesh struct {
	Topology  Topology
	Positions []mgl32.Vec3
	Indices   []uint32
	Normals   []mgl32.Vec3
}

// New creates a triangle-list mesh. Pass nil indices for an unindexed mesh.
func New(positions []mgl32.Vec3, indices []uint32) *Mesh {
	return &Mesh{
		Topology:  TriangleList,
		Positions: positions,
		Indices:   indices,
	}
}

// Indexed reports whether the mesh has an index buffer.
func (m *Mesh) Indexed() bool {
	return m.Indices != nil
}

// VertexCount returns the number of positions.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles drawn by the mesh.
func (m *Mesh) TriangleCount() int {
	if m.Indexed() {
		return len(m.Indices) / 3
	}
	return len(m.Positions) / 3
}

// DuplicateVertices gives every index its own copy of the referenced vertex and
// drops the index buffer. Normals are dropped too since they no longer line up.
func DuplicateVertices(m *Mesh) {
	if !m.Indexed() {
		return
	}

	positions := make([]mgl32.Vec3, len(m.Indices))
	for i, idx := range m.Indices {
		positions[i] = m.Positions[idx]
	}

	m.Positions = positions
	m.Indices = nil
	m.Normals = nil
}
