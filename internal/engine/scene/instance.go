package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/Faultbox/fishy/internal/engine/mesh"
)

// Handle names a loadable sub-scene, e.g. "models/Crab.glb#Scene0".
type Handle string

// MeshHandle identifies a mesh uploaded to the renderer.
type MeshHandle uint32

// Material is the surface look of a mesh instance.
type Material struct {
	BaseColor [3]float32
	Roughness float32
}

// SceneInstance asks for sub-scene Scene to be spawned under the entity once
// the asset server has it.
type SceneInstance struct {
	Scene        Handle
	Animated     bool       // hierarchy carries an animation player
	Tint         [3]float32 // color of the stand-in geometry
	Materialized bool
}

// SceneRoot marks the entity a sub-scene was materialized into.
type SceneRoot struct {
	Scene    Handle
	Animated bool
	Tint     [3]float32
}

// MeshInstance draws an uploaded mesh at the entity's transform.
type MeshInstance struct {
	Mesh     MeshHandle
	Material Material
}

// MeshUploader turns CPU mesh data into a drawable handle.
type MeshUploader interface {
	UploadMesh(m *mesh.Mesh) (MeshHandle, error)
}

// AssetServer reports whether a sub-scene has finished loading.
type AssetServer interface {
	Ready(s Handle) bool
}

// Materialized describes one sub-scene spawned by Materialize.
type Materialized struct {
	Instance ecs.Entity
	Root     ecs.Entity
	Scene    Handle
	Animated bool
}

// Instance places sub-scene inst at t as a new root entity.
func (w *World) Instance(inst SceneInstance, t Transform) ecs.Entity {
	e := w.Spawn(t)
	w.instances.Add(e, &inst)
	return e
}

// InstanceChild places sub-scene inst at t relative to parent.
func (w *World) InstanceChild(parent ecs.Entity, inst SceneInstance, t Transform) ecs.Entity {
	e := w.Instance(inst, t)
	w.link(parent, e)
	return e
}

// SpawnMesh places an uploaded mesh at t relative to parent.
func (w *World) SpawnMesh(parent ecs.Entity, mi MeshInstance, t Transform) ecs.Entity {
	e := w.SpawnChild(parent, t)
	w.meshes.Add(e, &mi)
	return e
}

// SceneInstance returns e's sub-scene request, or nil if it has none.
func (w *World) SceneInstance(e ecs.Entity) *SceneInstance {
	if !w.instances.Has(e) {
		return nil
	}
	return w.instances.Get(e)
}

// Materialize spawns the hierarchy of every pending sub-scene the asset
// server has ready. Instances that are still loading are left for a later
// call.
func (w *World) Materialize(server AssetServer) []Materialized {
	var pending []ecs.Entity
	query := w.instanceFilter.Query()
	for query.Next() {
		_, inst := query.Get()
		if !inst.Materialized && server.Ready(inst.Scene) {
			pending = append(pending, query.Entity())
		}
	}

	out := make([]Materialized, 0, len(pending))
	for _, e := range pending {
		inst := w.instances.Get(e)
		inst.Materialized = true
		scene, animated, tint := inst.Scene, inst.Animated, inst.Tint

		t := Identity()
		root := w.roots.NewEntity(&t, &SceneRoot{Scene: scene, Animated: animated, Tint: tint})
		w.link(e, root)

		out = append(out, Materialized{Instance: e, Root: root, Scene: scene, Animated: animated})
	}
	return out
}

// EachMesh calls fn for every mesh instance with its world matrix.
// fn must not spawn or despawn entities.
func (w *World) EachMesh(fn func(e ecs.Entity, mi *MeshInstance)) {
	query := w.meshFilter.Query()
	for query.Next() {
		_, mi := query.Get()
		fn(query.Entity(), mi)
	}
}

// EachSceneRoot calls fn for every materialized sub-scene root.
// fn must not spawn or despawn entities.
func (w *World) EachSceneRoot(fn func(e ecs.Entity, root *SceneRoot)) {
	query := w.rootFilter.Query()
	for query.Next() {
		_, root := query.Get()
		fn(query.Entity(), root)
	}
}
