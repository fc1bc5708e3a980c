// Package hazard spawns creatures at the screen edges, swims them across and
// removes them once they leave the visible area.
package hazard

import (
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/animation"
	"github.com/Faultbox/fishy/internal/engine/camera"
	"github.com/Faultbox/fishy/internal/engine/clock"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/game/assets"
	"github.com/Faultbox/fishy/internal/game/components"
	"github.com/Faultbox/fishy/internal/logger"
)

// Settings tunes the spawner.
type Settings struct {
	SpawnPeriod time.Duration
	MinSpeed    float32
	MaxSpeed    float32
}

// DefaultSettings spawns one hazard a second at base speeds in [1, 3).
func DefaultSettings() Settings {
	return Settings{SpawnPeriod: time.Second, MinSpeed: 1, MaxSpeed: 3}
}

// SettingsFromConfig converts the hazard section of the game config.
func SettingsFromConfig(cfg config.HazardConfig) Settings {
	return Settings{SpawnPeriod: cfg.SpawnPeriod, MinSpeed: cfg.MinSpeed, MaxSpeed: cfg.MaxSpeed}
}

// Roll is the random part of one spawn.
type Roll struct {
	Archetype Archetype
	Side      Side
	BaseSpeed float32 // unsigned, before the archetype multiplier
	Height    float32 // position inside the archetype's band, 0..1
}

// Engine owns the hazard lifecycle: spawned at an edge, moving every tick,
// despawned once outside the bounds.
type Engine struct {
	settings Settings
	world    *scene.World
	anim     *animation.System
	rng      *rand.Rand
	timer    *clock.Timer
	log      *zap.Logger

	fish    *ecs.Map[components.Fish]
	hazards *ecs.Map[components.Hazard]
	filter  *ecs.Filter2[scene.Transform, components.Hazard]
}

// NewEngine registers the hazard components on w.
func NewEngine(s Settings, w *scene.World, anim *animation.System, rng *rand.Rand) *Engine {
	return &Engine{
		settings: s,
		world:    w,
		anim:     anim,
		rng:      rng,
		timer:    clock.NewRepeating(s.SpawnPeriod),
		log:      logger.Named("hazard"),
		fish:     ecs.NewMap[components.Fish](w.ECS()),
		hazards:  ecs.NewMap[components.Hazard](w.ECS()),
		filter:   ecs.NewFilter2[scene.Transform, components.Hazard](w.ECS()),
	}
}

// Tick runs one frame: spawn if the timer finished this frame, move, then
// despawn against the bounds of this frame. A frame spanning several periods
// still spawns a single hazard.
func (e *Engine) Tick(dt time.Duration, b *camera.Bounds) {
	e.timer.Tick(dt)
	if e.timer.JustFinished() {
		e.Spawn(b, e.Roll())
	}
	e.Move(dt)
	e.Despawn(b)
}

// Roll draws the random choices for one spawn.
func (e *Engine) Roll() Roll {
	return Roll{
		Archetype: Archetypes[e.rng.IntN(len(Archetypes))],
		Side:      Side(e.rng.IntN(2)),
		BaseSpeed: e.settings.MinSpeed + e.rng.Float32()*(e.settings.MaxSpeed-e.settings.MinSpeed),
		Height:    e.rng.Float32(),
	}
}

// Placement returns where a hazard described by r enters and its signed speed.
func Placement(b *camera.Bounds, r Roll) (scene.Transform, float32) {
	p := r.Archetype.Profile()

	x := b.Min.X()
	if r.Side == Right {
		x = b.Max.X()
	}
	h := b.Height()
	y := b.Min.Y() + p.Band.Low*h + r.Height*(p.Band.High-p.Band.Low)*h

	t := scene.FromTranslation(mgl32.Vec3{x, y, 0}).WithRotation(p.Facing.Rotation(r.Side))
	speed := r.BaseSpeed * r.Side.Sign() * p.SpeedMultiplier
	return t, speed
}

// Spawn creates the hazard described by r at the edge of b.
func (e *Engine) Spawn(b *camera.Bounds, r Roll) ecs.Entity {
	p := r.Archetype.Profile()
	t, speed := Placement(b, r)

	ent := e.world.Instance(scene.SceneInstance{
		Scene:    p.Fish.Scene(),
		Animated: true,
		Tint:     assets.KindFish.Tint(),
	}, t)
	e.fish.Add(ent, &components.Fish{Type: p.Fish})
	e.hazards.Add(ent, &components.Hazard{Speed: speed})
	e.anim.SetInitial(ent, animation.Initial{Clip: p.Fish.Clips().Preferred(), Repeat: true})

	e.log.Debug("hazard spawned",
		zap.Stringer("archetype", r.Archetype),
		zap.Stringer("side", r.Side),
		zap.Float32("x", t.Translation.X()),
		zap.Float32("y", t.Translation.Y()),
		zap.Float32("speed", speed),
	)
	return ent
}

// Move swims every hazard horizontally by its speed.
func (e *Engine) Move(dt time.Duration) {
	secs := float32(dt.Seconds())
	query := e.filter.Query()
	for query.Next() {
		t, h := query.Get()
		t.Translation[0] += h.Speed * secs
	}
}

// Despawn removes every hazard strictly outside b, with its hierarchy.
func (e *Engine) Despawn(b *camera.Bounds) int {
	var gone []ecs.Entity
	query := e.filter.Query()
	for query.Next() {
		t, _ := query.Get()
		if outside(b, t.Translation) {
			gone = append(gone, query.Entity())
		}
	}

	for _, ent := range gone {
		e.world.DespawnRecursive(ent)
	}
	if len(gone) > 0 {
		e.log.Debug("hazards despawned", zap.Int("count", len(gone)))
	}
	return len(gone)
}

func outside(b *camera.Bounds, p mgl32.Vec3) bool {
	return p.X() < b.Min.X() || p.X() > b.Max.X() ||
		p.Y() < b.Min.Y() || p.Y() > b.Max.Y()
}

// Count returns the number of live hazards.
func (e *Engine) Count() int {
	n := 0
	query := e.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Speed returns the signed speed of hazard ent.
func (e *Engine) Speed(ent ecs.Entity) (float32, bool) {
	if !e.world.Alive(ent) || !e.hazards.Has(ent) {
		return 0, false
	}
	return e.hazards.Get(ent).Speed, true
}
