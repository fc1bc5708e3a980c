package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

func TestMovement(t *testing.T) {
	tests := []struct {
		name string
		keys []sdl.Scancode
		want mgl32.Vec2
	}{
		{"none", nil, mgl32.Vec2{}},
		{"wasd up", []sdl.Scancode{sdl.SCANCODE_W}, mgl32.Vec2{0, 1}},
		{"arrow left", []sdl.Scancode{sdl.SCANCODE_LEFT}, mgl32.Vec2{-1, 0}},
		{"diagonal", []sdl.Scancode{sdl.SCANCODE_D, sdl.SCANCODE_DOWN}, mgl32.Vec2{1, -1}},
		{"opposites cancel", []sdl.Scancode{sdl.SCANCODE_A, sdl.SCANCODE_RIGHT}, mgl32.Vec2{}},
		{"same axis twice", []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_UP}, mgl32.Vec2{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New()
			for _, k := range tt.keys {
				in.handleKey(k, true)
			}
			if got := in.Movement(); got != tt.want {
				t.Errorf("Movement() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyRelease(t *testing.T) {
	in := New()
	in.handleKey(sdl.SCANCODE_W, true)
	if !in.IsKeyPressed(sdl.SCANCODE_W) || !in.IsKeyHeld(sdl.SCANCODE_W) {
		t.Fatal("expected W pressed and held")
	}

	in.handleKey(sdl.SCANCODE_W, false)
	if in.IsKeyHeld(sdl.SCANCODE_W) {
		t.Error("W still held after release")
	}
	if got := in.Movement(); got != (mgl32.Vec2{}) {
		t.Errorf("Movement() = %v after release", got)
	}
}
