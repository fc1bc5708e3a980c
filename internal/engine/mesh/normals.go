package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ComputeNormals fills m.Normals with one normal per position.
//
// Indexed meshes get smoothed normals: each face's unit normal is added to
// every corner it touches and the per-vertex sum is averaged and renormalized.
// Vertices no face references keep the zero vector. Unindexed meshes get flat
// normals, one per consecutive position triple.
//
// The mesh must be a TriangleList whose index (or position) count is a
// multiple of 3 with every index in range. Anything else panics before
// Normals is touched.
func ComputeNormals(m *Mesh) {
	if m.Topology != TriangleList {
		panic(fmt.Sprintf("mesh: normals require %s topology, got %s", TriangleList, m.Topology))
	}

	if !m.Indexed() {
		if len(m.Positions)%3 != 0 {
			panic(fmt.Sprintf("mesh: unindexed position count %d is not a multiple of 3", len(m.Positions)))
		}
		m.Normals = flatNormals(m.Positions)
		return
	}

	if len(m.Indices)%3 != 0 {
		panic(fmt.Sprintf("mesh: index count %d is not a multiple of 3", len(m.Indices)))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Positions) {
			panic(fmt.Sprintf("mesh: index %d at %d is out of range for %d positions", idx, i, len(m.Positions)))
		}
	}
	m.Normals = smoothNormals(m.Positions, m.Indices)
}

func flatNormals(positions []mgl32.Vec3) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(positions))
	for i := 0; i < len(positions); i += 3 {
		n := FaceNormal(positions[i], positions[i+1], positions[i+2])
		normals[i], normals[i+1], normals[i+2] = n, n, n
	}
	return normals
}

func smoothNormals(positions []mgl32.Vec3, indices []uint32) []mgl32.Vec3 {
	sums := make([]mgl32.Vec3, len(positions))
	counts := make([]uint32, len(positions))

	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		n := FaceNormal(positions[a], positions[b], positions[c])
		for _, v := range [3]uint32{a, b, c} {
			sums[v] = sums[v].Add(n)
			counts[v]++
		}
	}

	normals := make([]mgl32.Vec3, len(positions))
	for v, sum := range sums {
		if counts[v] == 0 {
			continue
		}
		normals[v] = safeNormalize(sum.Mul(1 / float32(counts[v])))
	}
	return normals
}

// FaceNormal returns the unit normal of triangle abc for counter-clockwise
// winding. A degenerate triangle yields the zero vector.
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return safeNormalize(b.Sub(a).Cross(c.Sub(a)))
}

// mgl32's Normalize divides by zero on a zero vector.
func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
