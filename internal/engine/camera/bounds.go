package camera

import "github.com/go-gl/mathgl/mgl32"

// Bounds is the visible world rectangle on the XY plane.
type Bounds struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// Width returns Max.X - Min.X.
func (b Bounds) Width() float32 { return b.Max.X() - b.Min.X() }

// Height returns Max.Y - Min.Y.
func (b Bounds) Height() float32 { return b.Max.Y() - b.Min.Y() }

// Contains reports whether p is inside b. Points on the edge are inside.
func (b Bounds) Contains(p mgl32.Vec2) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}

// Clamp moves p onto the nearest point inside b.
func (b Bounds) Clamp(p mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		mgl32.Clamp(p.X(), b.Min.X(), b.Max.X()),
		mgl32.Clamp(p.Y(), b.Min.Y(), b.Max.Y()),
	}
}

// Tracker recomputes the visible rectangle every frame.
type Tracker struct {
	camera *Camera
}

// NewTracker creates a tracker for cam.
func NewTracker(cam *Camera) *Tracker {
	return &Tracker{camera: cam}
}

// Camera returns the tracked camera.
func (t *Tracker) Camera() *Camera {
	return t.camera
}

// Update writes the rectangle visible in a width x height window into b,
// centered on the camera's XY position. b is left untouched on error.
func (t *Tracker) Update(b *Bounds, width, height int) error {
	w, h, err := t.camera.ViewSize(width, height)
	if err != nil {
		return err
	}
	center := t.camera.Position.Vec2()
	half := mgl32.Vec2{w / 2, h / 2}
	b.Min = center.Sub(half)
	b.Max = center.Add(half)
	return nil
}
