// Package components holds the game-specific ECS components shared by the
// level systems.
package components

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/game/assets"
)

// Fish tags an entity with the creature model it shows.
type Fish struct {
	Type assets.FishType
}

// Hazard is a creature crossing the screen. Speed is signed: positive moves
// toward +X.
type Hazard struct {
	Speed float32
}

// PlayerState is what the player fish is doing.
type PlayerState uint8

const (
	PlayerIdle PlayerState = iota
	PlayerMoving
)

func (s PlayerState) String() string {
	if s == PlayerMoving {
		return "moving"
	}
	return "idle"
}

// Player marks the fish the user steers.
type Player struct {
	State     PlayerState
	Direction mgl32.Vec2 // last requested swim direction, unit or zero
	Speed     float32    // world units per second
}
