// Package scatter places coral, rocks, seaweed and shells on the seabed.
package scatter

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/game/assets"
	"github.com/Faultbox/fishy/internal/logger"
)

// Batch is how many props of one kind to place and how.
type Batch struct {
	Kind     assets.Kind
	Count    int
	MinScale float32
	MaxScale float32
	YOffset  float32
}

// DefaultBatches returns the stock decoration mix.
func DefaultBatches() []Batch {
	return []Batch{
		{Kind: assets.KindCoral, Count: 100, MinScale: 0.5, MaxScale: 4.0, YOffset: -2.0},
		{Kind: assets.KindRock, Count: 80, MinScale: 0.5, MaxScale: 4.0, YOffset: -4.0},
		{Kind: assets.KindSeaweed, Count: 100, MinScale: 0.5, MaxScale: 6.0, YOffset: -2.0},
		{Kind: assets.KindShell, Count: 60, MinScale: 0.5, MaxScale: 2.0, YOffset: 0.0},
	}
}

// BatchesFromConfig converts the scatter section of the game config.
func BatchesFromConfig(cfg config.ScatterConfig) []Batch {
	batch := func(k assets.Kind, b config.BatchConfig) Batch {
		return Batch{Kind: k, Count: b.Count, MinScale: b.MinScale, MaxScale: b.MaxScale, YOffset: b.YOffset}
	}
	return []Batch{
		batch(assets.KindCoral, cfg.Coral),
		batch(assets.KindRock, cfg.Rock),
		batch(assets.KindSeaweed, cfg.Seaweed),
		batch(assets.KindShell, cfg.Shell),
	}
}

// Placement is one planned prop.
type Placement struct {
	Prop  assets.Prop
	X, Z  float32
	Scale float32
	Y     float32
}

// Transform returns the placement's transform under the seabed anchor.
func (p Placement) Transform() scene.Transform {
	return scene.FromTranslation(mgl32.Vec3{p.X, p.Y, p.Z}).WithUniformScale(p.Scale)
}

// Placer draws placements from one random source.
type Placer struct {
	radius  float32
	batches []Batch
	rng     *rand.Rand
	log     *zap.Logger
}

// NewPlacer creates a placer that spreads props over [-radius, radius]^2.
func NewPlacer(radius int, batches []Batch, rng *rand.Rand) *Placer {
	return &Placer{
		radius:  float32(radius),
		batches: batches,
		rng:     rng,
		log:     logger.Named("scatter"),
	}
}

// Plan draws every batch's placements, heights sampled from vertices.
func (p *Placer) Plan(vertices []mgl32.Vec3) []Placement {
	total := 0
	for _, b := range p.batches {
		total += b.Count
	}

	out := make([]Placement, 0, total)
	for _, b := range p.batches {
		props := assets.Props(b.Kind)
		for range b.Count {
			prop := props[p.rng.IntN(len(props))]
			scale := p.uniform(b.MinScale, b.MaxScale)
			x := p.uniform(-p.radius, p.radius)
			z := p.uniform(-p.radius, p.radius)
			out = append(out, Placement{
				Prop:  prop,
				X:     x,
				Z:     z,
				Scale: scale,
				Y:     SampleHeight(vertices, x, z) + b.YOffset,
			})
		}
	}
	return out
}

// Spawn plans placements and instances each one as a child of anchor.
func (p *Placer) Spawn(w *scene.World, anchor ecs.Entity, vertices []mgl32.Vec3) []Placement {
	placements := p.Plan(vertices)
	counts := make(map[assets.Kind]int)
	for _, pl := range placements {
		kind := pl.Prop.Kind()
		w.InstanceChild(anchor, scene.SceneInstance{
			Scene: pl.Prop.Scene(),
			Tint:  kind.Tint(),
		}, pl.Transform())
		counts[kind]++
	}

	p.log.Info("seabed decorated",
		zap.Int("coral", counts[assets.KindCoral]),
		zap.Int("rock", counts[assets.KindRock]),
		zap.Int("seaweed", counts[assets.KindSeaweed]),
		zap.Int("shell", counts[assets.KindShell]),
	)
	return placements
}

func (p *Placer) uniform(lo, hi float32) float32 {
	return lo + p.rng.Float32()*(hi-lo)
}

// SampleHeight adds up the height of every vertex within one unit of (x, z)
// on both axes and divides by 4. On a unit grid that is the mean of the
// surrounding cell corners; with no vertices in reach it is 0.
func SampleHeight(vertices []mgl32.Vec3, x, z float32) float32 {
	var sum float32
	for _, v := range vertices {
		if abs(v.X()-x) < 1 && abs(v.Z()-z) < 1 {
			sum += v.Y()
		}
	}
	return sum / 4
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
