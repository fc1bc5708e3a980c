package hazard

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/game/assets"
)

// Archetype is a kind of hazard.
type Archetype uint8

const (
	Crab Archetype = iota
	Squid
	Octopus
	Hammerhead
	Eel
)

// Archetypes lists every hazard archetype.
var Archetypes = []Archetype{Crab, Squid, Octopus, Hammerhead, Eel}

func (a Archetype) String() string {
	switch a {
	case Crab:
		return "crab"
	case Squid:
		return "squid"
	case Octopus:
		return "octopus"
	case Hammerhead:
		return "hammerhead"
	case Eel:
		return "eel"
	}
	return fmt.Sprintf("Archetype(%d)", uint8(a))
}

// Side is the screen edge a hazard enters from.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Sign is +1 for Left (swims toward +X) and -1 for Right.
func (s Side) Sign() float32 {
	if s == Right {
		return -1
	}
	return 1
}

// Band is a vertical slice of the bounds as fractions of its height,
// 0 at the bottom edge and 1 at the top.
type Band struct {
	Low, High float32
}

var (
	bottomFifth = Band{Low: 0, High: 1.0 / 5}
	bottomThird = Band{Low: 0, High: 1.0 / 3}
	topHalf     = Band{Low: 0.5, High: 1}
)

// Facing decides how a hazard is turned about the vertical axis.
type Facing uint8

const (
	// Unrotated keeps the model's own orientation.
	Unrotated Facing = iota
	// Sideways turns +90 degrees when entering from the left, -90 from the right.
	Sideways
	// SidewaysInverted is Sideways with the signs swapped, for models
	// authored facing the other way.
	SidewaysInverted
)

// Rotation returns the facing for a hazard entering from side.
func (f Facing) Rotation(side Side) mgl32.Quat {
	const quarter = math.Pi / 2
	switch f {
	case Unrotated:
		return mgl32.QuatIdent()
	case Sideways:
		return mgl32.QuatRotate(quarter*side.Sign(), mgl32.Vec3{0, 1, 0})
	case SidewaysInverted:
		return mgl32.QuatRotate(-quarter*side.Sign(), mgl32.Vec3{0, 1, 0})
	}
	panic(fmt.Sprintf("hazard: unknown facing %d", uint8(f)))
}

// Profile is everything that differs between archetypes.
type Profile struct {
	Fish            assets.FishType
	Band            Band
	SpeedMultiplier float32
	Facing          Facing
}

// Profile returns the archetype's spawn policy.
func (a Archetype) Profile() Profile {
	switch a {
	case Crab:
		return Profile{Fish: assets.Crab, Band: bottomFifth, SpeedMultiplier: 1.0, Facing: Unrotated}
	case Eel:
		return Profile{Fish: assets.Eel, Band: bottomThird, SpeedMultiplier: 1.25, Facing: Sideways}
	case Hammerhead:
		return Profile{Fish: assets.Hammerhead, Band: topHalf, SpeedMultiplier: 2.0, Facing: SidewaysInverted}
	case Squid:
		return Profile{Fish: assets.Squid, Band: topHalf, SpeedMultiplier: 1.5, Facing: Sideways}
	case Octopus:
		return Profile{Fish: assets.Octopus, Band: topHalf, SpeedMultiplier: 1.5, Facing: Sideways}
	}
	panic(fmt.Sprintf("hazard: no profile for %s", a))
}
