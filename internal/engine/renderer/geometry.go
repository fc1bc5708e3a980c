package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/engine/mesh"
)

// ErrNoNormals is returned when uploading a mesh whose normals were never computed.
var ErrNoNormals = errors.New("mesh has no normals")

// floatsPerVertex is position (3) + normal (3).
const floatsPerVertex = 6

// interleave packs m into a position/normal vertex buffer.
func interleave(m *mesh.Mesh) ([]float32, error) {
	if m.Topology != mesh.TriangleList {
		return nil, fmt.Errorf("unsupported topology %s", m.Topology)
	}
	if len(m.Normals) == 0 {
		return nil, ErrNoNormals
	}
	if len(m.Normals) != len(m.Positions) {
		return nil, fmt.Errorf("%d normals for %d positions", len(m.Normals), len(m.Positions))
	}

	out := make([]float32, 0, len(m.Positions)*floatsPerVertex)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out, nil
}

// expand returns an unindexed copy of m with every attribute looked up by index.
func expand(m *mesh.Mesh) *mesh.Mesh {
	out := &mesh.Mesh{Topology: m.Topology, Positions: make([]mgl32.Vec3, len(m.Indices))}
	if len(m.Normals) == len(m.Positions) {
		out.Normals = make([]mgl32.Vec3, len(m.Indices))
	}
	for i, idx := range m.Indices {
		out.Positions[i] = m.Positions[idx]
		if out.Normals != nil {
			out.Normals[i] = m.Normals[idx]
		}
	}
	return out
}

// cubeMesh is a flat-shaded unit cube centered on the origin. It stands in
// for sub-scenes, whose model files are loaded elsewhere.
func cubeMesh() *mesh.Mesh {
	corners := [8]mgl32.Vec3{
		{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
	}
	// Counter-clockwise seen from outside.
	faces := [6][4]uint32{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}

	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		indices = append(indices, f[0], f[1], f[2], f[0], f[2], f[3])
	}

	m := mesh.New(corners[:], indices)
	mesh.DuplicateVertices(m)
	mesh.ComputeNormals(m)
	return m
}

// lightDirection is the direction light travels from a sun at from toward target.
func lightDirection(from, target mgl32.Vec3) mgl32.Vec3 {
	d := target.Sub(from)
	if d.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}

// eyePosition recovers the camera's world position from its view matrix.
func eyePosition(view mgl32.Mat4) mgl32.Vec3 {
	return view.Inv().Col(3).Vec3()
}
