// Package player spawns the fish the user steers and keeps it inside the
// visible area.
package player

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/animation"
	"github.com/Faultbox/fishy/internal/engine/camera"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/game/assets"
	"github.com/Faultbox/fishy/internal/game/components"
	"github.com/Faultbox/fishy/internal/logger"
)

// Settings describes the player fish.
type Settings struct {
	Fish     assets.FishType
	Position mgl32.Vec3
	Scale    float32
	Speed    float32
}

// DefaultSettings is a turtle just in front of the seabed, twice its model size.
func DefaultSettings() Settings {
	return Settings{
		Fish:     assets.Turtle,
		Position: mgl32.Vec3{0, 0, 0.01},
		Scale:    2,
		Speed:    6,
	}
}

// SettingsFromConfig converts the player section of the game config.
func SettingsFromConfig(cfg config.PlayerConfig) (Settings, error) {
	fish, err := assets.ParseFishType(cfg.Fish)
	if err != nil {
		return Settings{}, fmt.Errorf("player fish: %w", err)
	}
	return Settings{
		Fish:     fish,
		Position: mgl32.Vec3(cfg.Position),
		Scale:    cfg.Scale,
		Speed:    cfg.Speed,
	}, nil
}

// Controller owns the player entity.
type Controller struct {
	world   *scene.World
	anim    *animation.System
	players *ecs.Map[components.Player]
	fish    *ecs.Map[components.Fish]
	entity  ecs.Entity
	log     *zap.Logger
}

// Spawn instances the player fish with its idle loop requested.
func Spawn(w *scene.World, anim *animation.System, s Settings) *Controller {
	c := &Controller{
		world:   w,
		anim:    anim,
		players: ecs.NewMap[components.Player](w.ECS()),
		fish:    ecs.NewMap[components.Fish](w.ECS()),
		log:     logger.Named("player"),
	}

	t := scene.FromTranslation(s.Position).WithUniformScale(s.Scale)
	c.entity = w.Instance(scene.SceneInstance{
		Scene:    s.Fish.Scene(),
		Animated: true,
		Tint:     assets.KindFish.Tint(),
	}, t)
	c.fish.Add(c.entity, &components.Fish{Type: s.Fish})
	c.players.Add(c.entity, &components.Player{State: components.PlayerIdle, Speed: s.Speed})
	anim.SetInitial(c.entity, animation.Initial{Clip: s.Fish.Clips().Idle, Repeat: true})

	c.log.Info("player spawned", zap.Stringer("fish", s.Fish), zap.Float32("scale", s.Scale))
	return c
}

// Entity returns the player entity.
func (c *Controller) Entity() ecs.Entity {
	return c.entity
}

// State returns what the player is doing.
func (c *Controller) State() components.PlayerState {
	return c.players.Get(c.entity).State
}

// Position returns the player's translation.
func (c *Controller) Position() mgl32.Vec3 {
	return c.world.Transform(c.entity).Translation
}

// Steer swims the player along dir for dt. A zero dir means idle.
func (c *Controller) Steer(dir mgl32.Vec2, dt time.Duration) {
	p := c.players.Get(c.entity)

	state := components.PlayerIdle
	if dir.LenSqr() > 0 {
		state = components.PlayerMoving
		dir = dir.Normalize()
		step := dir.Mul(p.Speed * float32(dt.Seconds()))
		t := c.world.Transform(c.entity)
		t.Translation[0] += step.X()
		t.Translation[1] += step.Y()
	}
	p.Direction = dir

	if state != p.State {
		p.State = state
		c.SetState(state)
	}
}

// Clamp keeps the player inside b.
func (c *Controller) Clamp(b *camera.Bounds) {
	t := c.world.Transform(c.entity)
	p := b.Clamp(t.Translation.Vec2())
	t.Translation[0], t.Translation[1] = p.X(), p.Y()
}

// SetState plays the clip matching state, looping. Fish without a swimming
// clip keep whatever they are playing when they start to move. Before the
// model has materialized the clip is queued as its initial animation.
func (c *Controller) SetState(state components.PlayerState) {
	clips := c.fish.Get(c.entity).Type.Clips()

	var clip animation.Clip
	switch state {
	case components.PlayerIdle:
		clip = clips.Idle
	case components.PlayerMoving:
		if !clips.HasMoving() {
			return
		}
		clip = clips.Moving
	}

	if p, ok := c.anim.Find(c.entity); ok {
		p.Play(clip).Repeat()
	} else {
		c.anim.SetInitial(c.entity, animation.Initial{Clip: clip, Repeat: true})
	}
	c.log.Debug("player state", zap.Stringer("state", state), zap.String("clip", string(clip)))
}
