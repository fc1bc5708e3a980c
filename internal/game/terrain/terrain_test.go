package terrain

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/mesh"
	"github.com/Faultbox/fishy/internal/engine/scene"
)

type fakeUploader struct {
	uploaded []*mesh.Mesh
	err      error
}

func (f *fakeUploader) UploadMesh(m *mesh.Mesh) (scene.MeshHandle, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.uploaded = append(f.uploaded, m)
	return scene.MeshHandle(len(f.uploaded)), nil
}

func withRadius(r int) Settings {
	s := DefaultSettings()
	s.Radius = r
	return s
}

func TestHeightDeterministic(t *testing.T) {
	a := NewGenerator(DefaultSettings())
	b := NewGenerator(DefaultSettings())

	for _, p := range [][2]float32{{0, 0}, {1, -1}, {-57, 33}, {100.5, 99.25}} {
		h1 := a.Height(p[0], p[1])
		h2 := a.Height(p[0], p[1])
		h3 := b.Height(p[0], p[1])
		if math.Float32bits(h1) != math.Float32bits(h2) || math.Float32bits(h1) != math.Float32bits(h3) {
			t.Errorf("Height(%v, %v) not reproducible: %v %v %v", p[0], p[1], h1, h2, h3)
		}
	}
}

func TestHeightRange(t *testing.T) {
	g := NewGenerator(DefaultSettings())
	// Simplex stays within about [-1, 1], so with amplitude 2 and base 0.5
	// heights stay within a small band around the base.
	for x := float32(-20); x <= 20; x += 1.5 {
		for z := float32(-20); z <= 20; z += 1.5 {
			if h := g.Height(x, z); h < -2 || h > 3 {
				t.Fatalf("Height(%v, %v) = %v out of range", x, z, h)
			}
		}
	}
}

func TestGridSize(t *testing.T) {
	for _, r := range []int{0, 1, 2, 5, 10} {
		hf := NewGenerator(withRadius(r)).Heightfield()

		w := 2*r + 3
		if len(hf.Positions) != w*w {
			t.Errorf("R=%d: expected %d vertices, got %d", r, w*w, len(hf.Positions))
		}
		cells := 2*r + 2
		if got := len(hf.Indices) / 3; got != 2*cells*cells {
			t.Errorf("R=%d: expected %d triangles, got %d", r, 2*cells*cells, got)
		}
	}
}

func TestRadiusTwoIndices(t *testing.T) {
	hf := NewGenerator(withRadius(2)).Heightfield()

	if len(hf.Positions) != 49 {
		t.Fatalf("expected 49 vertices, got %d", len(hf.Positions))
	}
	// 2 * (2*2+2)^2 = 72 triangles, three indices each.
	if len(hf.Indices) != 72*3 {
		t.Fatalf("expected %d indices, got %d", 72*3, len(hf.Indices))
	}
	for i, idx := range hf.Indices {
		if idx >= 49 {
			t.Errorf("index %d = %d out of range", i, idx)
		}
	}
}

func TestHeightfieldLayout(t *testing.T) {
	g := NewGenerator(withRadius(1))
	hf := g.Heightfield()

	// x-major: x = -2 for the first 5 vertices, z sweeps -2..2.
	for i := 0; i < 5; i++ {
		p := hf.Positions[i]
		if p.X() != -2 || p.Z() != float32(i-2) {
			t.Errorf("vertex %d at (%v, %v), want (-2, %d)", i, p.X(), p.Z(), i-2)
		}
		if p.Y() != g.Height(p.X(), p.Z()) {
			t.Errorf("vertex %d height %v does not match Height", i, p.Y())
		}
	}
	last := hf.Positions[len(hf.Positions)-1]
	if last.X() != 2 || last.Z() != 2 {
		t.Errorf("last vertex at (%v, %v), want (2, 2)", last.X(), last.Z())
	}

	// First cell, exact winding and split.
	want := []uint32{0, 1, 6, 0, 6, 5}
	for i, v := range want {
		if hf.Indices[i] != v {
			t.Errorf("index %d = %d, want %d", i, hf.Indices[i], v)
		}
	}
}

func TestMeshFlatShaded(t *testing.T) {
	hf := NewGenerator(withRadius(2)).Heightfield()
	m := Mesh(hf)

	if m.Indexed() {
		t.Fatal("expected duplicated mesh to be unindexed")
	}
	if len(m.Positions) != len(hf.Indices) {
		t.Fatalf("expected %d duplicated vertices, got %d", len(hf.Indices), len(m.Positions))
	}
	if len(m.Normals) != len(m.Positions) {
		t.Fatalf("expected one normal per vertex, got %d", len(m.Normals))
	}
	for i := 0; i < len(m.Normals); i += 3 {
		n := m.Normals[i]
		if n != m.Normals[i+1] || n != m.Normals[i+2] {
			t.Errorf("triangle %d is not flat shaded", i/3)
		}
		if l := n.Len(); math.Abs(float64(l)-1) > 1e-5 {
			t.Errorf("triangle %d normal length %v", i/3, l)
		}
		if n.Y() <= 0 {
			t.Errorf("triangle %d normal %v faces down", i/3, n)
		}
	}
	// Duplication must not alter the shared grid.
	if len(hf.Positions) != 49 {
		t.Errorf("heightfield mutated: %d positions", len(hf.Positions))
	}
}

func TestSpawn(t *testing.T) {
	g := NewGenerator(withRadius(2))
	w := scene.NewWorld()
	anchor := w.Spawn(scene.FromTranslation(mgl32.Vec3{0, -16, 0.5}))
	up := &fakeUploader{}

	e, err := g.Spawn(w, up, anchor, g.Heightfield())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if len(up.uploaded) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(up.uploaded))
	}
	if p, ok := w.Parent(e); !ok || p != anchor {
		t.Error("seabed is not a child of the anchor")
	}
	if tr := w.Transform(e); tr.Translation != (mgl32.Vec3{}) {
		t.Errorf("expected seabed at anchor origin, got %v", tr.Translation)
	}
}

func TestSpawnUploadError(t *testing.T) {
	g := NewGenerator(withRadius(0))
	w := scene.NewWorld()
	boom := errors.New("out of memory")

	_, err := g.Spawn(w, &fakeUploader{err: boom}, w.Spawn(scene.Identity()), g.Heightfield())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped upload error, got %v", err)
	}
}

func TestSettingsFromConfig(t *testing.T) {
	s, err := SettingsFromConfig(config.Default().Terrain)
	if err != nil {
		t.Fatalf("SettingsFromConfig: %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("config defaults and DefaultSettings disagree:\n%+v\n%+v", s, DefaultSettings())
	}
}
