// Package scene is the entity store the game runs on: transforms, a
// parent/child hierarchy, sub-scene instances and uploaded mesh instances,
// all held in an ark ECS world.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
)

// World owns every entity of a level.
type World struct {
	ecs *ecs.World

	transforms *ecs.Map[Transform]
	instances  *ecs.Map[SceneInstance]
	meshes     *ecs.Map[MeshInstance]
	roots      *ecs.Map2[Transform, SceneRoot]

	instanceFilter *ecs.Filter2[Transform, SceneInstance]
	meshFilter     *ecs.Filter2[Transform, MeshInstance]
	rootFilter     *ecs.Filter2[Transform, SceneRoot]

	parent   map[ecs.Entity]ecs.Entity
	children map[ecs.Entity][]ecs.Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	w := ecs.NewWorld()
	return &World{
		ecs:            &w,
		transforms:     ecs.NewMap[Transform](&w),
		instances:      ecs.NewMap[SceneInstance](&w),
		meshes:         ecs.NewMap[MeshInstance](&w),
		roots:          ecs.NewMap2[Transform, SceneRoot](&w),
		instanceFilter: ecs.NewFilter2[Transform, SceneInstance](&w),
		meshFilter:     ecs.NewFilter2[Transform, MeshInstance](&w),
		rootFilter:     ecs.NewFilter2[Transform, SceneRoot](&w),
		parent:         make(map[ecs.Entity]ecs.Entity),
		children:       make(map[ecs.Entity][]ecs.Entity),
	}
}

// ECS exposes the underlying ark world so game packages can register their
// own component maps and filters.
func (w *World) ECS() *ecs.World {
	return w.ecs
}

// Spawn creates a root entity at t.
func (w *World) Spawn(t Transform) ecs.Entity {
	return w.transforms.NewEntity(&t)
}

// SpawnChild creates an entity at t relative to parent.
func (w *World) SpawnChild(parent ecs.Entity, t Transform) ecs.Entity {
	e := w.Spawn(t)
	w.link(parent, e)
	return e
}

func (w *World) link(parent, child ecs.Entity) {
	w.parent[child] = parent
	w.children[parent] = append(w.children[parent], child)
}

// Alive reports whether e has not been despawned.
func (w *World) Alive(e ecs.Entity) bool {
	return w.ecs.Alive(e)
}

// Transform returns e's local transform for in-place mutation.
func (w *World) Transform(e ecs.Entity) *Transform {
	return w.transforms.Get(e)
}

// Parent returns e's parent, if it has one.
func (w *World) Parent(e ecs.Entity) (ecs.Entity, bool) {
	p, ok := w.parent[e]
	return p, ok
}

// Children returns e's direct children. The slice must not be modified.
func (w *World) Children(e ecs.Entity) []ecs.Entity {
	return w.children[e]
}

// Descendants returns every entity below e, depth first.
func (w *World) Descendants(e ecs.Entity) []ecs.Entity {
	var out []ecs.Entity
	stack := append([]ecs.Entity(nil), w.children[e]...)
	for len(stack) > 0 {
		last := len(stack) - 1
		c := stack[last]
		stack = stack[:last]
		out = append(out, c)
		stack = append(stack, w.children[c]...)
	}
	return out
}

// DespawnRecursive removes e and all of its descendants.
func (w *World) DespawnRecursive(e ecs.Entity) {
	if p, ok := w.parent[e]; ok {
		siblings := w.children[p]
		for i, s := range siblings {
			if s == e {
				w.children[p] = append(siblings[:i:i], siblings[i+1:]...)
				break
			}
		}
	}

	doomed := append(w.Descendants(e), e)
	for _, d := range doomed {
		delete(w.parent, d)
		delete(w.children, d)
		if w.ecs.Alive(d) {
			w.ecs.RemoveEntity(d)
		}
	}
}

// GlobalMatrix composes the local transforms from the root down to e.
func (w *World) GlobalMatrix(e ecs.Entity) mgl32.Mat4 {
	m := w.transforms.Get(e).Matrix()
	for p, ok := w.parent[e]; ok; p, ok = w.parent[p] {
		m = w.transforms.Get(p).Matrix().Mul4(m)
	}
	return m
}
