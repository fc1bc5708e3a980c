package scatter

import (
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/game/assets"
)

func flatGrid(radius int, height float32) []mgl32.Vec3 {
	var out []mgl32.Vec3
	for x := -radius - 1; x <= radius+1; x++ {
		for z := -radius - 1; z <= radius+1; z++ {
			out = append(out, mgl32.Vec3{float32(x), height, float32(z)})
		}
	}
	return out
}

func TestSampleHeight(t *testing.T) {
	grid := []mgl32.Vec3{
		{0, 1, 0}, {1, 2, 0}, {0, 3, 1}, {1, 4, 1},
		{5, 100, 5},
	}

	tests := []struct {
		name string
		x, z float32
		want float32
	}{
		{"cell center averages four corners", 0.5, 0.5, (1 + 2 + 3 + 4) / 4.0},
		{"on a vertex only that vertex is in reach", 0, 0, 1.0 / 4},
		{"edge is exclusive", 2, 0.5, 0},
		{"nothing in reach", -10, -10, 0},
		{"lone vertex", 5.2, 4.9, 100.0 / 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SampleHeight(grid, tt.x, tt.z); got != tt.want {
				t.Errorf("SampleHeight(%v, %v) = %v, want %v", tt.x, tt.z, got, tt.want)
			}
		})
	}
}

func TestPlanExactCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	p := NewPlacer(10, DefaultBatches(), rng)
	placements := p.Plan(flatGrid(10, 0))

	counts := make(map[assets.Kind]int)
	for _, pl := range placements {
		counts[pl.Prop.Kind()]++
	}

	want := map[assets.Kind]int{
		assets.KindCoral:   100,
		assets.KindRock:    80,
		assets.KindSeaweed: 100,
		assets.KindShell:   60,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("%s: expected %d placements, got %d", k, n, counts[k])
		}
	}
	if len(placements) != 340 {
		t.Errorf("expected 340 placements, got %d", len(placements))
	}
}

func TestPlanRanges(t *testing.T) {
	const radius = 6
	rng := rand.New(rand.NewPCG(3, 4))
	batches := DefaultBatches()
	p := NewPlacer(radius, batches, rng)

	// Flat seabed at height 2: every sample in the interior sees a full
	// 2x2 window, so Y is exactly 2 + offset.
	placements := p.Plan(flatGrid(radius, 2))

	byKind := make(map[assets.Kind]Batch)
	for _, b := range batches {
		byKind[b.Kind] = b
	}
	for i, pl := range placements {
		b := byKind[pl.Prop.Kind()]
		if pl.Scale < b.MinScale || pl.Scale > b.MaxScale {
			t.Errorf("placement %d: scale %v outside [%v, %v]", i, pl.Scale, b.MinScale, b.MaxScale)
		}
		if pl.X < -radius || pl.X > radius || pl.Z < -radius || pl.Z > radius {
			t.Errorf("placement %d: (%v, %v) outside the seabed", i, pl.X, pl.Z)
		}
		want := SampleHeight(flatGrid(radius, 2), pl.X, pl.Z) + b.YOffset
		if pl.Y != want {
			t.Errorf("placement %d: y %v, want %v", i, pl.Y, want)
		}
	}
}

func TestPlanReproducibleWithSeed(t *testing.T) {
	grid := flatGrid(4, 1)
	a := NewPlacer(4, DefaultBatches(), rand.New(rand.NewPCG(9, 9))).Plan(grid)
	b := NewPlacer(4, DefaultBatches(), rand.New(rand.NewPCG(9, 9))).Plan(grid)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSpawnInstancesUnderAnchor(t *testing.T) {
	w := scene.NewWorld()
	anchor := w.Spawn(scene.FromTranslation(mgl32.Vec3{0, -16, 1}))
	batches := []Batch{
		{Kind: assets.KindShell, Count: 3, MinScale: 1, MaxScale: 1},
		{Kind: assets.KindRock, Count: 2, MinScale: 0.5, MaxScale: 4, YOffset: -4},
	}

	p := NewPlacer(2, batches, rand.New(rand.NewPCG(5, 6)))
	placements := p.Spawn(w, anchor, flatGrid(2, 0))

	children := w.Children(anchor)
	if len(children) != 5 || len(placements) != 5 {
		t.Fatalf("expected 5 children, got %d (placements %d)", len(children), len(placements))
	}
	for i, c := range children {
		inst := w.SceneInstance(c)
		if inst == nil {
			t.Fatalf("child %d has no scene instance", i)
		}
		if inst.Scene != placements[i].Prop.Scene() {
			t.Errorf("child %d: scene %s, want %s", i, inst.Scene, placements[i].Prop.Scene())
		}
		if inst.Animated {
			t.Errorf("child %d: props are not animated", i)
		}
		tr := w.Transform(c)
		want := mgl32.Vec3{placements[i].X, placements[i].Y, placements[i].Z}
		if tr.Translation != want || tr.Scale.X() != placements[i].Scale {
			t.Errorf("child %d: transform %+v, want translation %v scale %v", i, tr, want, placements[i].Scale)
		}
	}
}

func TestBatchesFromConfig(t *testing.T) {
	got := BatchesFromConfig(config.Default().Scatter)
	want := DefaultBatches()
	if len(got) != len(want) {
		t.Fatalf("expected %d batches, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("batch %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}
