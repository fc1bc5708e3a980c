// Package camera provides the scene camera and derives the visible world
// rectangle from it.
package camera

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/config"
)

// ErrUnsupportedProjection is returned for any camera other than an
// orthographic one with a fixed-vertical or fixed-horizontal scaling mode.
var ErrUnsupportedProjection = errors.New("unsupported camera projection")

// ProjectionKind selects how the camera maps view space to clip space.
type ProjectionKind uint8

const (
	Orthographic ProjectionKind = iota
	Perspective
)

func (k ProjectionKind) String() string {
	switch k {
	case Orthographic:
		return "orthographic"
	case Perspective:
		return "perspective"
	}
	return fmt.Sprintf("ProjectionKind(%d)", uint8(k))
}

// ScalingMode decides which view extent stays fixed when the window aspect
// ratio changes.
type ScalingMode uint8

const (
	// FixedVertical keeps the view height at Projection.Extent.
	FixedVertical ScalingMode = iota
	// FixedHorizontal keeps the view width at Projection.Extent.
	FixedHorizontal
	// WindowSize maps one world unit to one pixel.
	WindowSize
)

func (m ScalingMode) String() string {
	switch m {
	case FixedVertical:
		return "fixed_vertical"
	case FixedHorizontal:
		return "fixed_horizontal"
	case WindowSize:
		return "window_size"
	}
	return fmt.Sprintf("ScalingMode(%d)", uint8(m))
}

// ParseProjection maps a config name to a ProjectionKind.
func ParseProjection(name string) (ProjectionKind, error) {
	switch name {
	case "orthographic":
		return Orthographic, nil
	case "perspective":
		return Perspective, nil
	}
	return 0, fmt.Errorf("%w: projection %q", ErrUnsupportedProjection, name)
}

// ParseScalingMode maps a config name to a ScalingMode.
func ParseScalingMode(name string) (ScalingMode, error) {
	switch name {
	case "fixed_vertical":
		return FixedVertical, nil
	case "fixed_horizontal":
		return FixedHorizontal, nil
	case "window_size":
		return WindowSize, nil
	}
	return 0, fmt.Errorf("%w: scaling mode %q", ErrUnsupportedProjection, name)
}

// Projection describes the camera lens.
type Projection struct {
	Kind        ProjectionKind
	ScalingMode ScalingMode
	Extent      float32 // fixed dimension for FixedVertical / FixedHorizontal
	Scale       float32 // zoom; larger shows more of the world
	Near, Far   float32
	FovY        float32 // radians, perspective only
}

// Camera is the single scene camera.
type Camera struct {
	Projection Projection
	Position   mgl32.Vec3
	Rotation   mgl32.Quat

	MinScale        float32
	MaxScale        float32
	ZoomSensitivity float32
}

// NewOrthographic creates an orthographic camera at pos, pitched about X.
func NewOrthographic(mode ScalingMode, extent, scale float32, pos mgl32.Vec3, pitch float32) *Camera {
	return &Camera{
		Projection: Projection{
			Kind:        Orthographic,
			ScalingMode: mode,
			Extent:      extent,
			Scale:       scale,
			Near:        -1000,
			Far:         1000,
		},
		Position:        pos,
		Rotation:        mgl32.QuatRotate(pitch, mgl32.Vec3{1, 0, 0}),
		MinScale:        1,
		MaxScale:        32,
		ZoomSensitivity: 0.1,
	}
}

// FromConfig builds the camera described by the camera section of the game
// config.
func FromConfig(cfg config.CameraConfig) (*Camera, error) {
	kind, err := ParseProjection(cfg.Projection)
	if err != nil {
		return nil, err
	}
	mode, err := ParseScalingMode(cfg.ScalingMode)
	if err != nil {
		return nil, err
	}
	c := NewOrthographic(mode, cfg.ScalingValue, cfg.Scale, mgl32.Vec3(cfg.Position), cfg.Pitch)
	if kind == Perspective {
		c.Projection.Kind = Perspective
		c.Projection.Near, c.Projection.Far = 0.1, 1000
		c.Projection.FovY = mgl32.DegToRad(45)
	}
	return c, nil
}

// ViewSize returns the visible width and height in world units for a
// window of the given pixel size.
func (c *Camera) ViewSize(width, height int) (w, h float32, err error) {
	p := c.Projection
	if p.Kind != Orthographic {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnsupportedProjection, p.Kind)
	}
	if height == 0 {
		return 0, 0, fmt.Errorf("zero window height")
	}
	aspect := float32(width) / float32(height)

	switch p.ScalingMode {
	case FixedVertical:
		w, h = p.Extent*aspect, p.Extent
	case FixedHorizontal:
		w, h = p.Extent, p.Extent/aspect
	default:
		return 0, 0, fmt.Errorf("%w: orthographic %s", ErrUnsupportedProjection, p.ScalingMode)
	}
	return w * p.Scale, h * p.Scale, nil
}

// ViewMatrix returns the inverse of the camera's world transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	world := mgl32.Translate3D(c.Position.X(), c.Position.Y(), c.Position.Z()).Mul4(c.Rotation.Mat4())
	return world.Inv()
}

// ProjectionMatrix returns the clip-space projection for the window size.
func (c *Camera) ProjectionMatrix(width, height int) (mgl32.Mat4, error) {
	p := c.Projection
	if p.Kind == Perspective {
		return mgl32.Perspective(p.FovY, float32(width)/float32(height), p.Near, p.Far), nil
	}
	w, h, err := c.ViewSize(width, height)
	if err != nil {
		return mgl32.Mat4{}, err
	}
	return mgl32.Ortho(-w/2, w/2, -h/2, h/2, p.Near, p.Far), nil
}

// HandleZoom changes the orthographic scale by a scroll wheel delta.
func (c *Camera) HandleZoom(delta float32) {
	s := c.Projection.Scale - delta*c.Projection.Scale*c.ZoomSensitivity
	c.Projection.Scale = mgl32.Clamp(s, c.MinScale, c.MaxScale)
}
