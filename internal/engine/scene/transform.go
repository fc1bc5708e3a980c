package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is an entity's placement relative to its parent.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns a transform that leaves points unchanged.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromTranslation returns an unrotated, unscaled transform at v.
func FromTranslation(v mgl32.Vec3) Transform {
	t := Identity()
	t.Translation = v
	return t
}

// WithUniformScale returns a copy of t scaled by s on every axis.
func (t Transform) WithUniformScale(s float32) Transform {
	t.Scale = mgl32.Vec3{s, s, s}
	return t
}

// WithRotation returns a copy of t with rotation q.
func (t Transform) WithRotation(q mgl32.Quat) Transform {
	t.Rotation = q
	return t
}

// Matrix returns translate * rotate * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
