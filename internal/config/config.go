// Package config handles game configuration loading and management.
package config

import "time"

// Config holds all game settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Terrain TerrainConfig `yaml:"terrain"`
	Scatter ScatterConfig `yaml:"scatter"`
	Hazard  HazardConfig  `yaml:"hazard"`
	Player  PlayerConfig  `yaml:"player"`
	Random  RandomConfig  `yaml:"random"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig describes the single scene camera.
type CameraConfig struct {
	Projection   string     `yaml:"projection"`    // orthographic or perspective
	ScalingMode  string     `yaml:"scaling_mode"`  // fixed_vertical or fixed_horizontal
	ScalingValue float32    `yaml:"scaling_value"` // extent kept fixed by the scaling mode
	Scale        float32    `yaml:"scale"`
	Position     [3]float32 `yaml:"position"`
	Pitch        float32    `yaml:"pitch"` // radians about X
}

// TerrainConfig holds seabed generation settings.
type TerrainConfig struct {
	Radius int         `yaml:"radius"`
	Noise  NoiseConfig `yaml:"noise"`
	// Color is the seabed base color as #rrggbb.
	Color     string  `yaml:"color"`
	Roughness float32 `yaml:"roughness"`
}

// NoiseConfig holds the fractal noise parameters for the heightfield.
type NoiseConfig struct {
	Octaves        int     `yaml:"octaves"`
	Lacunarity     float32 `yaml:"lacunarity"`
	Gain           float32 `yaml:"gain"`
	FrequencyScale float32 `yaml:"frequency_scale"`
	AmplitudeScale float32 `yaml:"amplitude_scale"`
	BaseHeight     float32 `yaml:"base_height"`
	Seed           int64   `yaml:"seed"`
}

// ScatterConfig holds one batch per decoration category.
type ScatterConfig struct {
	Coral   BatchConfig `yaml:"coral"`
	Rock    BatchConfig `yaml:"rock"`
	Seaweed BatchConfig `yaml:"seaweed"`
	Shell   BatchConfig `yaml:"shell"`
}

// BatchConfig holds placement settings for one scatter category.
type BatchConfig struct {
	Count    int     `yaml:"count"`
	MinScale float32 `yaml:"min_scale"`
	MaxScale float32 `yaml:"max_scale"`
	YOffset  float32 `yaml:"y_offset"`
}

// HazardConfig holds hazard spawner settings.
type HazardConfig struct {
	SpawnPeriod time.Duration `yaml:"spawn_period"`
	MinSpeed    float32       `yaml:"min_speed"`
	MaxSpeed    float32       `yaml:"max_speed"`
}

// PlayerConfig holds player settings.
type PlayerConfig struct {
	Fish     string     `yaml:"fish"`
	Position [3]float32 `yaml:"position"`
	Scale    float32    `yaml:"scale"`
	Speed    float32    `yaml:"speed"`
}

// RandomConfig controls the level's random source.
type RandomConfig struct {
	Seed uint64 `yaml:"seed"` // 0 derives a seed from the clock
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Fishy",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			ClearColor: [3]float32{0.6, 0.8, 1.0},
		},
		Camera: CameraConfig{
			Projection:   "orthographic",
			ScalingMode:  "fixed_vertical",
			ScalingValue: 4.0,
			Scale:        8.0,
			Position:     [3]float32{0, 0, 30},
			Pitch:        -0.07853982, // -pi/40
		},
		Terrain: TerrainConfig{
			Radius: 100,
			Noise: NoiseConfig{
				Octaves:        3,
				Lacunarity:     1.5,
				Gain:           0.001,
				FrequencyScale: 0.1,
				AmplitudeScale: 2.0,
				BaseHeight:     0.5,
			},
			Color:     "#0a0a2c",
			Roughness: 0.8,
		},
		Scatter: ScatterConfig{
			Coral:   BatchConfig{Count: 100, MinScale: 0.5, MaxScale: 4.0, YOffset: -2.0},
			Rock:    BatchConfig{Count: 80, MinScale: 0.5, MaxScale: 4.0, YOffset: -4.0},
			Seaweed: BatchConfig{Count: 100, MinScale: 0.5, MaxScale: 6.0, YOffset: -2.0},
			Shell:   BatchConfig{Count: 60, MinScale: 0.5, MaxScale: 2.0, YOffset: 0.0},
		},
		Hazard: HazardConfig{
			SpawnPeriod: time.Second,
			MinSpeed:    1.0,
			MaxSpeed:    3.0,
		},
		Player: PlayerConfig{
			Fish:     "Turtle",
			Position: [3]float32{0, 0, 0.01},
			Scale:    2.0,
			Speed:    6.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
