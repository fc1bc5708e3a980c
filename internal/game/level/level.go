// Package level builds the underwater scene once and runs its per-frame
// systems in a fixed order.
package level

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/animation"
	"github.com/Faultbox/fishy/internal/engine/camera"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/game/hazard"
	"github.com/Faultbox/fishy/internal/game/player"
	"github.com/Faultbox/fishy/internal/game/scatter"
	"github.com/Faultbox/fishy/internal/game/terrain"
	"github.com/Faultbox/fishy/internal/logger"
)

// AnchorDepth is how far below the camera plane the seabed anchor sits.
const AnchorDepth = -16

// Settings gathers everything a level is built from.
type Settings struct {
	Terrain terrain.Settings
	Batches []scatter.Batch
	Hazard  hazard.Settings
	Player  player.Settings
	Seed    uint64 // 0 picks one from the clock
}

// DefaultSettings returns the stock level.
func DefaultSettings() Settings {
	return Settings{
		Terrain: terrain.DefaultSettings(),
		Batches: scatter.DefaultBatches(),
		Hazard:  hazard.DefaultSettings(),
		Player:  player.DefaultSettings(),
	}
}

// SettingsFromConfig converts the game config.
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	ts, err := terrain.SettingsFromConfig(cfg.Terrain)
	if err != nil {
		return Settings{}, err
	}
	ps, err := player.SettingsFromConfig(cfg.Player)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Terrain: ts,
		Batches: scatter.BatchesFromConfig(cfg.Scatter),
		Hazard:  hazard.SettingsFromConfig(cfg.Hazard),
		Player:  ps,
		Seed:    cfg.Random.Seed,
	}, nil
}

// Input is what the user asked for this frame.
type Input struct {
	Steer mgl32.Vec2
}

// Level is one running seabed.
type Level struct {
	world   *scene.World
	anim    *animation.System
	tracker *camera.Tracker
	bounds  camera.Bounds
	seed    uint64

	anchor  ecs.Entity
	terrain ecs.Entity
	player  *player.Controller
	hazards *hazard.Engine
	log     *zap.Logger
}

// New generates the seabed, decorates it and spawns the player.
func New(s Settings, cam *camera.Camera, uploader scene.MeshUploader) (*Level, error) {
	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))

	w := scene.NewWorld()
	anim := animation.NewSystem(w)
	l := &Level{
		world:   w,
		anim:    anim,
		tracker: camera.NewTracker(cam),
		seed:    seed,
		log:     logger.Named("level"),
	}

	radius := float32(s.Terrain.Radius)
	l.anchor = w.Spawn(scene.FromTranslation(mgl32.Vec3{0, AnchorDepth, radius / 4}))

	gen := terrain.NewGenerator(s.Terrain)
	hf := gen.Heightfield()
	var err error
	l.terrain, err = gen.Spawn(w, uploader, l.anchor, hf)
	if err != nil {
		return nil, fmt.Errorf("building seabed: %w", err)
	}

	scatter.NewPlacer(s.Terrain.Radius, s.Batches, rng).Spawn(w, l.anchor, hf.Positions)

	l.player = player.Spawn(w, anim, s.Player)
	l.hazards = hazard.NewEngine(s.Hazard, w, anim, rng)

	l.log.Info("level ready", zap.Uint64("seed", seed))
	return l, nil
}

// Tick advances the level by dt for a width x height window. Sub-scenes the
// server has ready are materialized at the end of the frame.
func (l *Level) Tick(dt time.Duration, in Input, width, height int, server scene.AssetServer) error {
	if err := l.tracker.Update(&l.bounds, width, height); err != nil {
		return fmt.Errorf("updating bounds: %w", err)
	}

	l.player.Steer(in.Steer, dt)
	l.player.Clamp(&l.bounds)

	l.hazards.Tick(dt, &l.bounds)

	l.anim.Attach(l.world.Materialize(server))
	l.anim.ApplyInitial()
	l.anim.Advance(dt)
	return nil
}

// World returns the level's entity store.
func (l *Level) World() *scene.World { return l.world }

// Bounds returns the visible rectangle of the last tick.
func (l *Level) Bounds() camera.Bounds { return l.bounds }

// Camera returns the level camera.
func (l *Level) Camera() *camera.Camera { return l.tracker.Camera() }

// Player returns the player controller.
func (l *Level) Player() *player.Controller { return l.player }

// Hazards returns the hazard engine.
func (l *Level) Hazards() *hazard.Engine { return l.hazards }

// Animation returns the animation system.
func (l *Level) Animation() *animation.System { return l.anim }

// Anchor returns the entity the seabed hangs from.
func (l *Level) Anchor() ecs.Entity { return l.anchor }

// Terrain returns the seabed mesh entity.
func (l *Level) Terrain() ecs.Entity { return l.terrain }

// Seed returns the seed the level's random source started from.
func (l *Level) Seed() uint64 { return l.seed }
