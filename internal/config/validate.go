package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Camera projection and scaling mode names accepted by the loader.
const (
	ProjectionOrthographic = "orthographic"
	ProjectionPerspective  = "perspective"

	ScalingFixedVertical   = "fixed_vertical"
	ScalingFixedHorizontal = "fixed_horizontal"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every problem in the config at once.
func (c *Config) Validate() error {
	var err error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		err = multierr.Append(err, invalid("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	if c.Camera.Projection != ProjectionOrthographic {
		err = multierr.Append(err, invalid("camera projection %q is not supported, only %q", c.Camera.Projection, ProjectionOrthographic))
	}
	switch c.Camera.ScalingMode {
	case ScalingFixedVertical, ScalingFixedHorizontal:
	default:
		err = multierr.Append(err, invalid("camera scaling mode %q is not supported", c.Camera.ScalingMode))
	}
	if c.Camera.ScalingValue <= 0 {
		err = multierr.Append(err, invalid("camera scaling value must be positive"))
	}
	if c.Camera.Scale <= 0 {
		err = multierr.Append(err, invalid("camera scale must be positive"))
	}

	if c.Terrain.Radius < 0 {
		err = multierr.Append(err, invalid("terrain radius %d must not be negative", c.Terrain.Radius))
	}
	if c.Terrain.Noise.Octaves < 1 {
		err = multierr.Append(err, invalid("noise octaves must be at least 1"))
	}
	if _, perr := ParseHexColor(c.Terrain.Color); perr != nil {
		err = multierr.Append(err, invalid("terrain color: %v", perr))
	}

	err = multierr.Append(err, c.Scatter.Coral.validate("coral"))
	err = multierr.Append(err, c.Scatter.Rock.validate("rock"))
	err = multierr.Append(err, c.Scatter.Seaweed.validate("seaweed"))
	err = multierr.Append(err, c.Scatter.Shell.validate("shell"))

	if c.Hazard.SpawnPeriod <= 0 {
		err = multierr.Append(err, invalid("hazard spawn period must be positive"))
	}
	if c.Hazard.MinSpeed <= 0 || c.Hazard.MaxSpeed <= c.Hazard.MinSpeed {
		err = multierr.Append(err, invalid("hazard speed range [%g, %g) is empty", c.Hazard.MinSpeed, c.Hazard.MaxSpeed))
	}

	if c.Player.Fish == "" {
		err = multierr.Append(err, invalid("player fish must be set"))
	}
	if c.Player.Scale <= 0 {
		err = multierr.Append(err, invalid("player scale must be positive"))
	}

	if !logLevels[c.Logging.Level] {
		err = multierr.Append(err, invalid("log level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return err
}

func (b BatchConfig) validate(name string) error {
	var err error
	if b.Count < 0 {
		err = multierr.Append(err, invalid("scatter %s count %d must not be negative", name, b.Count))
	}
	if b.MinScale <= 0 || b.MaxScale < b.MinScale {
		err = multierr.Append(err, invalid("scatter %s scale range [%g, %g] is invalid", name, b.MinScale, b.MaxScale))
	}
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// ParseHexColor parses a #rrggbb string into linear 0..1 components.
func ParseHexColor(s string) ([3]float32, error) {
	var rgb [3]float32
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return rgb, fmt.Errorf("color %q is not #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return rgb, fmt.Errorf("color %q: %w", s, err)
	}
	rgb[0] = float32(r) / 255
	rgb[1] = float32(g) / 255
	rgb[2] = float32(b) / 255
	return rgb, nil
}
