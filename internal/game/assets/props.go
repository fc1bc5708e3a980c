package assets

import (
	"fmt"

	"github.com/Faultbox/fishy/internal/engine/scene"
)

// CoralType is one coral model.
type CoralType uint8

const (
	Coral CoralType = iota
	Coral1
	Coral2
	Coral3
	Coral4
	Coral5
	Coral6
)

// AllCorals lists every coral.
var AllCorals = []CoralType{Coral, Coral1, Coral2, Coral3, Coral4, Coral5, Coral6}

func (c CoralType) String() string {
	if c == Coral {
		return "Coral"
	}
	return fmt.Sprintf("Coral%d", uint8(c))
}

func (CoralType) Kind() Kind { return KindCoral }

func (c CoralType) Scene() scene.Handle { return sceneOf(c.String()) }

// RockType is one rock model.
type RockType uint8

const (
	Rock RockType = iota
	Rock1
	Rock2
	Rock3
	Rock4
	Rock5
	Rock6
	Rock7
	Rock8
	Rock9
	Rock10
)

// AllRocks lists every rock.
var AllRocks = []RockType{Rock, Rock1, Rock2, Rock3, Rock4, Rock5, Rock6, Rock7, Rock8, Rock9, Rock10}

func (r RockType) String() string {
	if r == Rock {
		return "Rock"
	}
	return fmt.Sprintf("Rock%d", uint8(r))
}

func (RockType) Kind() Kind { return KindRock }

// Scene returns the rock's model. The base rock ships as "ROck.glb".
func (r RockType) Scene() scene.Handle {
	if r == Rock {
		return sceneOf("ROck")
	}
	return sceneOf(r.String())
}

// SeaweedType is one seaweed model.
type SeaweedType uint8

const (
	Seaweed1 SeaweedType = iota
	Seaweed2
)

// AllSeaweeds lists every seaweed.
var AllSeaweeds = []SeaweedType{Seaweed1, Seaweed2}

func (s SeaweedType) String() string {
	return fmt.Sprintf("Seaweed%d", uint8(s)+1)
}

func (SeaweedType) Kind() Kind { return KindSeaweed }

// Scene returns the seaweed's model. The seaweed exports are broken, so both
// variants borrow the shell models.
func (s SeaweedType) Scene() scene.Handle {
	return sceneOf(fmt.Sprintf("Shells%d", uint8(s)+1))
}

// ShellType is one shell model.
type ShellType uint8

const (
	Shell ShellType = iota
	Shell1
	Shell2
	Shell3
)

// AllShells lists every shell.
var AllShells = []ShellType{Shell, Shell1, Shell2, Shell3}

func (s ShellType) String() string {
	if s == Shell {
		return "Shell"
	}
	return fmt.Sprintf("Shell%d", uint8(s))
}

func (ShellType) Kind() Kind { return KindShell }

func (s ShellType) Scene() scene.Handle {
	if s == Shell {
		return sceneOf("Shells")
	}
	return sceneOf(fmt.Sprintf("Shells%d", uint8(s)))
}
