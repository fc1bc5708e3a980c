// Package states implements game state management.
package states

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/fishy/internal/engine/input"
	"github.com/Faultbox/fishy/internal/engine/scene"
)

// State represents a game state (asset loading, playing).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt time.Duration) error

	// Render is called every frame to draw the state.
	Render() error

	// HandleEvent processes one input event.
	HandleEvent(event input.Event) error
}

// Renderer is the part of the renderer the states drive.
type Renderer interface {
	scene.MeshUploader
	scene.AssetServer
	Size() (int, int)
	Draw(w *scene.World, view, projection mgl32.Mat4)
}

// Controls reports the steering direction held by the user.
type Controls interface {
	Movement() mgl32.Vec2
}

// Manager manages game state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the start of the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt time.Duration) error {
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil {
		return m.current.Render()
	}
	return nil
}

// HandleEvent forwards event to the current state.
func (m *Manager) HandleEvent(event input.Event) error {
	if m.current != nil {
		return m.current.HandleEvent(event)
	}
	return nil
}
