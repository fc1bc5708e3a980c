package animation

import (
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/Faultbox/fishy/internal/engine/scene"
)

// System attaches players to freshly materialized sub-scenes, applies
// initial-animation requests and advances every player.
type System struct {
	world    *scene.World
	players  *ecs.Map[Player]
	initials *ecs.Map[Initial]

	playerFilter  *ecs.Filter1[Player]
	initialFilter *ecs.Filter1[Initial]
}

// NewSystem registers the animation components on w.
func NewSystem(w *scene.World) *System {
	return &System{
		world:         w,
		players:       ecs.NewMap[Player](w.ECS()),
		initials:      ecs.NewMap[Initial](w.ECS()),
		playerFilter:  ecs.NewFilter1[Player](w.ECS()),
		initialFilter: ecs.NewFilter1[Initial](w.ECS()),
	}
}

// SetInitial requests clip on e's first animation player, replacing any
// request still pending.
func (s *System) SetInitial(e ecs.Entity, in Initial) {
	if s.initials.Has(e) {
		*s.initials.Get(e) = in
		return
	}
	s.initials.Add(e, &in)
}

// HasInitial reports whether e still waits for its initial animation.
func (s *System) HasInitial(e ecs.Entity) bool {
	return s.initials.Has(e)
}

// Attach gives each animated sub-scene root its own player.
func (s *System) Attach(materialized []scene.Materialized) {
	for _, m := range materialized {
		if m.Animated && !s.players.Has(m.Root) {
			s.players.Add(m.Root, &Player{})
		}
	}
}

// Find returns the first player in e's hierarchy, e included.
func (s *System) Find(e ecs.Entity) (*Player, bool) {
	if s.players.Has(e) {
		return s.players.Get(e), true
	}
	for _, d := range s.world.Descendants(e) {
		if s.players.Has(d) {
			return s.players.Get(d), true
		}
	}
	return nil, false
}

// ApplyInitial starts each pending initial animation whose player exists and
// drops the request. Entities without a player yet are retried next call.
func (s *System) ApplyInitial() int {
	var pending []ecs.Entity
	query := s.initialFilter.Query()
	for query.Next() {
		pending = append(pending, query.Entity())
	}

	applied := 0
	for _, e := range pending {
		p, ok := s.Find(e)
		if !ok {
			continue
		}
		in := *s.initials.Get(e)
		p.Play(in.Clip)
		if in.Repeat {
			p.Repeat()
		}
		s.initials.Remove(e)
		applied++
	}
	return applied
}

// Advance moves every player forward by dt.
func (s *System) Advance(dt time.Duration) {
	query := s.playerFilter.Query()
	for query.Next() {
		query.Get().Advance(dt)
	}
}
