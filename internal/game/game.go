// Package game implements the main game loop and state management.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/camera"
	"github.com/Faultbox/fishy/internal/engine/input"
	"github.com/Faultbox/fishy/internal/engine/renderer"
	"github.com/Faultbox/fishy/internal/engine/window"
	"github.com/Faultbox/fishy/internal/game/level"
	"github.com/Faultbox/fishy/internal/game/states"
	"github.com/Faultbox/fishy/internal/logger"
)

// Game is the main game instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	states   *states.Manager
	log      *zap.Logger
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	g := &Game{
		config: cfg,
		log:    logger.Named("game"),
	}
	g.log.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	settings, err := level.SettingsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("level settings: %w", err)
	}
	cam, err := camera.FromConfig(cfg.Camera)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}

	// Window first: it creates the OpenGL context the renderer needs.
	g.window, err = window.New(window.ConfigFrom(cfg.Window))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := g.window.GetSize()
	rcfg := renderer.DefaultConfig()
	rcfg.Width, rcfg.Height = width, height
	rcfg.ClearColor = cfg.Window.ClearColor
	g.renderer, err = renderer.New(rcfg)
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	g.renderer.Resize(width, height)

	g.input = input.New()
	g.states = states.NewManager()
	g.states.Change(states.NewLoadingState(settings, cam, g.renderer, g.input, g.states))

	g.log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime)
		lastTime = now

		if g.input.Update() {
			g.running = false
			break
		}
		if err := g.handleEvents(); err != nil {
			return fmt.Errorf("input error: %w", err)
		}

		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		g.renderer.Begin()
		if err := g.states.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		g.renderer.End()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Duration("dt", dt))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() error {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			g.renderer.Resize(g.window.GetSize())
		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				g.running = false
			}
		}
		if err := g.states.HandleEvent(event); err != nil {
			return err
		}
	}
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		if err := g.renderer.Close(); err != nil {
			g.log.Warn("renderer cleanup", zap.Error(err))
		}
	}
	if g.window != nil {
		g.window.Close()
	}
}
