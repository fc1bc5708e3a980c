package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/config"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestTrackerFixedVertical(t *testing.T) {
	cam := NewOrthographic(FixedVertical, 4, 8, mgl32.Vec3{0, 0, 30}, -math.Pi/40)
	var b Bounds
	if err := NewTracker(cam).Update(&b, 800, 600); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// 4 * 800/600 * 8 wide, 4 * 8 tall.
	wantW, wantH := float32(4.0*800.0/600.0*8.0), float32(32)
	if !approx(b.Width(), wantW) || !approx(b.Height(), wantH) {
		t.Errorf("expected %gx%g, got %gx%g", wantW, wantH, b.Width(), b.Height())
	}
	if !approx(b.Min.X(), -wantW/2) || !approx(b.Max.Y(), wantH/2) {
		t.Errorf("expected rectangle centered on origin, got %+v", b)
	}
}

func TestTrackerFixedHorizontalCentersOnCamera(t *testing.T) {
	cam := NewOrthographic(FixedHorizontal, 10, 2, mgl32.Vec3{5, -3, 30}, 0)
	var b Bounds
	if err := NewTracker(cam).Update(&b, 1000, 500); err != nil {
		t.Fatalf("Update: %v", err)
	}

	want := Bounds{Min: mgl32.Vec2{-5, -8}, Max: mgl32.Vec2{15, 2}}
	if !b.Min.ApproxEqualThreshold(want.Min, 1e-4) || !b.Max.ApproxEqualThreshold(want.Max, 1e-4) {
		t.Errorf("expected %+v, got %+v", want, b)
	}
}

func TestTrackerRejectsUnsupportedProjection(t *testing.T) {
	tests := []struct {
		name string
		cam  *Camera
	}{
		{"perspective", &Camera{Projection: Projection{Kind: Perspective, Scale: 1}}},
		{"window size", NewOrthographic(WindowSize, 4, 1, mgl32.Vec3{}, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Bounds{Min: mgl32.Vec2{-1, -1}, Max: mgl32.Vec2{1, 1}}
			err := NewTracker(tt.cam).Update(&b, 800, 600)
			if !errors.Is(err, ErrUnsupportedProjection) {
				t.Fatalf("expected ErrUnsupportedProjection, got %v", err)
			}
			if b.Max.X() != 1 {
				t.Error("bounds modified on error")
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Min: mgl32.Vec2{-2, -1}, Max: mgl32.Vec2{2, 1}}

	tests := []struct {
		in, want mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{0, 0}},
		{mgl32.Vec2{-5, 0.5}, mgl32.Vec2{-2, 0.5}},
		{mgl32.Vec2{3, 4}, mgl32.Vec2{2, 1}},
		{mgl32.Vec2{1, -7}, mgl32.Vec2{1, -1}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if !b.Contains(mgl32.Vec2{2, 1}) {
		t.Error("edge point should be inside")
	}
	if b.Contains(mgl32.Vec2{2.001, 0}) {
		t.Error("point past the edge should be outside")
	}
}

func TestParseNames(t *testing.T) {
	if k, err := ParseProjection("orthographic"); err != nil || k != Orthographic {
		t.Errorf("ParseProjection(orthographic) = %v, %v", k, err)
	}
	if m, err := ParseScalingMode("fixed_horizontal"); err != nil || m != FixedHorizontal {
		t.Errorf("ParseScalingMode(fixed_horizontal) = %v, %v", m, err)
	}
	if _, err := ParseScalingMode("auto"); !errors.Is(err, ErrUnsupportedProjection) {
		t.Errorf("expected ErrUnsupportedProjection, got %v", err)
	}
}

func TestHandleZoomClamps(t *testing.T) {
	cam := NewOrthographic(FixedVertical, 4, 8, mgl32.Vec3{}, 0)
	for i := 0; i < 100; i++ {
		cam.HandleZoom(-1)
	}
	if cam.Projection.Scale != cam.MaxScale {
		t.Errorf("expected scale clamped to %g, got %g", cam.MaxScale, cam.Projection.Scale)
	}
}

func TestFromConfig(t *testing.T) {
	cam, err := FromConfig(config.Default().Camera)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	p := cam.Projection
	if p.Kind != Orthographic || p.ScalingMode != FixedVertical || p.Extent != 4 || p.Scale != 8 {
		t.Errorf("unexpected projection %+v", p)
	}
	if cam.Position != (mgl32.Vec3{0, 0, 30}) {
		t.Errorf("position = %v", cam.Position)
	}

	bad := config.Default().Camera
	bad.ScalingMode = "stretch"
	if _, err := FromConfig(bad); !errors.Is(err, ErrUnsupportedProjection) {
		t.Errorf("expected ErrUnsupportedProjection, got %v", err)
	}
}
