package assets

import (
	"fmt"

	"github.com/Faultbox/fishy/internal/engine/animation"
	"github.com/Faultbox/fishy/internal/engine/scene"
)

// FishType is one swimming creature model.
type FishType uint8

const (
	BrownFish FishType = iota
	ClownFish
	Crab
	DoryFish
	Eel
	Hammerhead
	Lobster
	Octopus
	Penguin
	Seal
	Squid
	StarFish
	StingRay
	TunaFish
	Turtle
	Whale
)

// AllFish lists every fish.
var AllFish = []FishType{
	BrownFish, ClownFish, Crab, DoryFish, Eel, Hammerhead, Lobster, Octopus,
	Penguin, Seal, Squid, StarFish, StingRay, TunaFish, Turtle, Whale,
}

var fishNames = [...]string{
	"BrownFish", "ClownFish", "Crab", "DoryFish", "Eel", "Hammerhead", "Lobster", "Octopus",
	"Penguin", "Seal", "Squid", "StarFish", "StingRay", "TunaFish", "Turtle", "Whale",
}

func (f FishType) String() string {
	if int(f) < len(fishNames) {
		return fishNames[f]
	}
	return fmt.Sprintf("FishType(%d)", uint8(f))
}

func (FishType) Kind() Kind { return KindFish }

func (f FishType) Scene() scene.Handle { return sceneOf(f.String()) }

// ParseFishType looks a fish up by its model name.
func ParseFishType(name string) (FishType, error) {
	for i, n := range fishNames {
		if n == name {
			return FishType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown fish %q", name)
}

// Clips is a fish's idle and swimming animation. Moving is empty for fish
// that only have an idle loop.
type Clips struct {
	Idle   animation.Clip
	Moving animation.Clip
}

// HasMoving reports whether the fish has a swimming clip.
func (c Clips) HasMoving() bool {
	return c.Moving != ""
}

// Preferred returns the swimming clip, or idle when there is none.
func (c Clips) Preferred() animation.Clip {
	if c.HasMoving() {
		return c.Moving
	}
	return c.Idle
}

// Clips returns the fish's animations.
func (f FishType) Clips() Clips {
	name := f.String()
	switch f {
	case ClownFish, Hammerhead, Penguin, StarFish, StingRay, TunaFish, Whale:
		return Clips{Idle: clipOf(name, 0)}
	case Octopus:
		// Exported with its clips in the opposite order.
		return Clips{Idle: clipOf(name, 1), Moving: clipOf(name, 0)}
	case BrownFish, Crab, DoryFish, Eel, Lobster, Seal, Squid, Turtle:
		return Clips{Idle: clipOf(name, 0), Moving: clipOf(name, 1)}
	}
	panic(fmt.Sprintf("assets: no clips for %s", f))
}
