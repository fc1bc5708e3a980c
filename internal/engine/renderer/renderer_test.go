package renderer

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/engine/mesh"
)

func TestInterleave(t *testing.T) {
	m := mesh.New([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil)
	mesh.ComputeNormals(m)

	data, err := interleave(m)
	if err != nil {
		t.Fatalf("interleave: %v", err)
	}
	if len(data) != 3*floatsPerVertex {
		t.Fatalf("got %d floats, want %d", len(data), 3*floatsPerVertex)
	}
	want := []float32{1, 0, 0, 0, 0, 1}
	for i, f := range want {
		if data[floatsPerVertex+i] != f {
			t.Errorf("vertex 1 float %d = %v, want %v", i, data[floatsPerVertex+i], f)
		}
	}
}

func TestInterleaveRejects(t *testing.T) {
	noNormals := mesh.New([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil)
	if _, err := interleave(noNormals); !errors.Is(err, ErrNoNormals) {
		t.Errorf("expected ErrNoNormals, got %v", err)
	}

	strip := mesh.New([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil)
	strip.Normals = make([]mgl32.Vec3, 3)
	strip.Topology = mesh.TriangleStrip
	if _, err := interleave(strip); err == nil {
		t.Error("expected an error for a triangle strip")
	}

	short := mesh.New([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, nil)
	short.Normals = make([]mgl32.Vec3, 2)
	if _, err := interleave(short); err == nil {
		t.Error("expected an error for mismatched normals")
	}
}

func TestExpandKeepsNormals(t *testing.T) {
	m := mesh.New([]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, []uint32{0, 1, 2, 2, 1, 3})
	mesh.ComputeNormals(m)

	out := expand(m)
	if out.Indexed() {
		t.Fatal("expanded mesh is still indexed")
	}
	if len(out.Positions) != 6 || len(out.Normals) != 6 {
		t.Fatalf("got %d positions and %d normals, want 6 each", len(out.Positions), len(out.Normals))
	}
	if out.Positions[5] != m.Positions[3] {
		t.Errorf("position 5 = %v, want %v", out.Positions[5], m.Positions[3])
	}
	if m.Indices == nil {
		t.Error("expand modified its input")
	}
}

func TestCubeMeshFacesOutward(t *testing.T) {
	m := cubeMesh()
	if m.TriangleCount() != 12 {
		t.Fatalf("cube has %d triangles, want 12", m.TriangleCount())
	}
	for i, p := range m.Positions {
		n := m.Normals[i]
		if p.Dot(n) <= 0 {
			t.Errorf("vertex %d at %v has inward normal %v", i, p, n)
		}
		if d := n.Len() - 1; d > 1e-5 || d < -1e-5 {
			t.Errorf("normal %d has length %v", i, n.Len())
		}
	}
}

func TestLightDirection(t *testing.T) {
	got := lightDirection(mgl32.Vec3{0, 30, 0}, mgl32.Vec3{})
	if !got.ApproxEqualThreshold(mgl32.Vec3{0, -1, 0}, 1e-6) {
		t.Errorf("lightDirection = %v, want straight down", got)
	}
	if got := lightDirection(mgl32.Vec3{}, mgl32.Vec3{}); got != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("degenerate light = %v, want straight down", got)
	}

	cfg := DefaultConfig()
	if d := lightDirection(cfg.Sun, mgl32.Vec3{}); d.Y() > -0.99 {
		t.Errorf("default sun should shine almost straight down, got %v", d)
	}
}

func TestDefaultWaterLighting(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Fog.Color != (mgl32.Vec3{0, 0.5, 0.8}) {
		t.Errorf("fog color = %v, want greenish blue", cfg.Fog.Color)
	}
	if cfg.Fog.Extinction != 0.005 || cfg.Fog.Inscattering != 0.003 {
		t.Errorf("fog falloff = (%v, %v), want (0.005, 0.003)", cfg.Fog.Extinction, cfg.Fog.Inscattering)
	}

	p := cfg.PointLight
	if p.Position != (mgl32.Vec3{0, 30, -50}) {
		t.Errorf("point light at %v, want (0, 30, -50)", p.Position)
	}
	if p.Range <= 0 {
		t.Errorf("point light range = %v, want positive", p.Range)
	}
	if p.Color.Z() <= p.Color.X() || p.Color.X() != p.Color.Y() {
		t.Errorf("point light color = %v, want deep blue", p.Color)
	}
}

func TestEyePosition(t *testing.T) {
	tests := []struct {
		name string
		eye  mgl32.Vec3
	}{
		{"origin", mgl32.Vec3{}},
		{"game camera", mgl32.Vec3{0, 0, 30}},
		{"offset", mgl32.Vec3{-4, 12, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := mgl32.LookAtV(tt.eye, tt.eye.Add(mgl32.Vec3{0, -0.2, -1}), mgl32.Vec3{0, 1, 0})
			if got := eyePosition(view); got.Sub(tt.eye).Len() > 1e-4 {
				t.Errorf("eyePosition = %v, want %v", got, tt.eye)
			}
		})
	}
}
