// Package assets is the catalog of model scenes and animation clips the game
// instances. Every enumeration here is closed; lookups never fail.
package assets

import (
	"fmt"

	"github.com/Faultbox/fishy/internal/engine/animation"
	"github.com/Faultbox/fishy/internal/engine/scene"
)

// Kind groups props by what they are.
type Kind uint8

const (
	KindCoral Kind = iota
	KindRock
	KindSeaweed
	KindShell
	KindFish
)

var kindNames = [...]string{"coral", "rock", "seaweed", "shell", "fish"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Tint is the flat color used for a kind's proxy geometry.
func (k Kind) Tint() [3]float32 {
	switch k {
	case KindCoral:
		return [3]float32{0.95, 0.45, 0.45}
	case KindRock:
		return [3]float32{0.35, 0.35, 0.38}
	case KindSeaweed:
		return [3]float32{0.20, 0.60, 0.25}
	case KindShell:
		return [3]float32{0.95, 0.90, 0.75}
	case KindFish:
		return [3]float32{1.00, 0.65, 0.10}
	}
	panic(fmt.Sprintf("assets: no tint for %s", k))
}

// Prop is a decoration the scatter placer can pick.
type Prop interface {
	fmt.Stringer
	Kind() Kind
	Scene() scene.Handle
}

// Props returns every prop of a decoration kind.
func Props(k Kind) []Prop {
	switch k {
	case KindCoral:
		return props(AllCorals)
	case KindRock:
		return props(AllRocks)
	case KindSeaweed:
		return props(AllSeaweeds)
	case KindShell:
		return props(AllShells)
	}
	panic(fmt.Sprintf("assets: %s is not a decoration kind", k))
}

func props[T Prop](all []T) []Prop {
	out := make([]Prop, len(all))
	for i, p := range all {
		out[i] = p
	}
	return out
}

// Scenes returns every scene the game can instance, without duplicates.
func Scenes() []scene.Handle {
	seen := make(map[scene.Handle]bool)
	var out []scene.Handle
	add := func(h scene.Handle) {
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	for _, k := range []Kind{KindCoral, KindRock, KindSeaweed, KindShell} {
		for _, p := range Props(k) {
			add(p.Scene())
		}
	}
	for _, f := range AllFish {
		add(f.Scene())
	}
	return out
}

func sceneOf(model string) scene.Handle {
	return scene.Handle("models/" + model + ".glb#Scene0")
}

func clipOf(model string, n int) animation.Clip {
	return animation.Clip(fmt.Sprintf("models/%s.glb#Animation%d", model, n))
}
