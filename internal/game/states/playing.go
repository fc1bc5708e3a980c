package states

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/engine/input"
	"github.com/Faultbox/fishy/internal/game/level"
	"github.com/Faultbox/fishy/internal/logger"
)

// PlayingState runs the level.
type PlayingState struct {
	level    *level.Level
	renderer Renderer
	controls Controls
	log      *zap.Logger
}

// NewPlayingState creates the state that ticks lvl every frame.
func NewPlayingState(lvl *level.Level, r Renderer, controls Controls) *PlayingState {
	return &PlayingState{
		level:    lvl,
		renderer: r,
		controls: controls,
		log:      logger.Named("states"),
	}
}

// Enter is called when entering this state.
func (s *PlayingState) Enter() error {
	s.log.Info("playing", zap.Uint64("seed", s.level.Seed()))
	return nil
}

// Exit is called when leaving this state.
func (s *PlayingState) Exit() error {
	return nil
}

// Update ticks the level with the current steering input.
func (s *PlayingState) Update(dt time.Duration) error {
	width, height := s.renderer.Size()
	in := level.Input{Steer: s.controls.Movement()}
	return s.level.Tick(dt, in, width, height, s.renderer)
}

// Render draws the level from its camera.
func (s *PlayingState) Render() error {
	width, height := s.renderer.Size()
	cam := s.level.Camera()
	proj, err := cam.ProjectionMatrix(width, height)
	if err != nil {
		return err
	}
	s.renderer.Draw(s.level.World(), cam.ViewMatrix(), proj)
	return nil
}

// HandleEvent zooms the camera with the mouse wheel.
func (s *PlayingState) HandleEvent(event input.Event) error {
	if event.Type == input.EventMouseWheel {
		s.level.Camera().HandleZoom(event.Wheel)
	}
	return nil
}

// Level returns the running level.
func (s *PlayingState) Level() *level.Level {
	return s.level
}
