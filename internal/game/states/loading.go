package states

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/engine/camera"
	"github.com/Faultbox/fishy/internal/engine/input"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/game/assets"
	"github.com/Faultbox/fishy/internal/game/level"
	"github.com/Faultbox/fishy/internal/logger"
)

// LoadingState waits until every model the level uses is available, then
// builds the level and switches to PlayingState.
type LoadingState struct {
	settings level.Settings
	camera   *camera.Camera
	renderer Renderer
	controls Controls
	manager  *Manager

	scenes    []scene.Handle
	ready     int
	startTime time.Time
	log       *zap.Logger
}

// NewLoadingState creates a loading state for a level built from settings.
func NewLoadingState(settings level.Settings, cam *camera.Camera, r Renderer, controls Controls, manager *Manager) *LoadingState {
	return &LoadingState{
		settings: settings,
		camera:   cam,
		renderer: r,
		controls: controls,
		manager:  manager,
		scenes:   assets.Scenes(),
		log:      logger.Named("states"),
	}
}

// Enter is called when entering this state.
func (s *LoadingState) Enter() error {
	s.startTime = time.Now()
	s.ready = 0
	s.log.Info("loading assets", zap.Int("scenes", len(s.scenes)))
	return nil
}

// Exit is called when leaving this state.
func (s *LoadingState) Exit() error {
	return nil
}

// Update counts ready scenes and starts the level once all of them are.
func (s *LoadingState) Update(time.Duration) error {
	ready := 0
	for _, h := range s.scenes {
		if s.renderer.Ready(h) {
			ready++
		}
	}
	if ready != s.ready {
		s.ready = ready
		s.log.Debug("assets loading", zap.Int("ready", ready), zap.Int("total", len(s.scenes)))
	}
	if ready < len(s.scenes) {
		return nil
	}

	lvl, err := level.New(s.settings, s.camera, s.renderer)
	if err != nil {
		return fmt.Errorf("starting level: %w", err)
	}
	s.log.Info("assets loaded", zap.Duration("took", time.Since(s.startTime)))
	s.manager.Change(NewPlayingState(lvl, s.renderer, s.controls))
	return nil
}

// Progress returns the fraction of scenes ready, 0..1.
func (s *LoadingState) Progress() float32 {
	if len(s.scenes) == 0 {
		return 1
	}
	return float32(s.ready) / float32(len(s.scenes))
}

// Render is called every frame.
func (s *LoadingState) Render() error {
	return nil
}

// HandleEvent ignores input while loading.
func (s *LoadingState) HandleEvent(input.Event) error {
	return nil
}
