// Package input handles SDL2 input events.
package input

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// EventType is the kind of a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	Wheel  float32
}

// Input handles all input processing.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and converts them to game events.
// Returns true if the game should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			i.handleKey(e.Keysym.Scancode, e.Type == sdl.KEYDOWN)

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: float32(e.Y)})
		}
	}

	return false
}

func (i *Input) handleKey(key sdl.Scancode, down bool) {
	i.held[key] = down
	typ := EventKeyUp
	if down {
		typ = EventKeyDown
	}
	i.events = append(i.events, Event{Type: typ, Key: key})
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

var (
	leftKeys  = []sdl.Scancode{sdl.SCANCODE_A, sdl.SCANCODE_LEFT}
	rightKeys = []sdl.Scancode{sdl.SCANCODE_D, sdl.SCANCODE_RIGHT}
	upKeys    = []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_UP}
	downKeys  = []sdl.Scancode{sdl.SCANCODE_S, sdl.SCANCODE_DOWN}
)

// Movement returns the direction asked for by WASD or the arrow keys, with
// +Y up. Opposite keys cancel out. The result is not normalized.
func (i *Input) Movement() mgl32.Vec2 {
	var v mgl32.Vec2
	if i.anyHeld(leftKeys) {
		v[0]--
	}
	if i.anyHeld(rightKeys) {
		v[0]++
	}
	if i.anyHeld(upKeys) {
		v[1]++
	}
	if i.anyHeld(downKeys) {
		v[1]--
	}
	return v
}

func (i *Input) anyHeld(keys []sdl.Scancode) bool {
	for _, k := range keys {
		if i.held[k] {
			return true
		}
	}
	return false
}
