// Package terrain generates the seabed heightfield mesh.
package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/config"
	"github.com/Faultbox/fishy/internal/engine/mesh"
	"github.com/Faultbox/fishy/internal/engine/noise"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/logger"
)

// Settings shapes the seabed.
type Settings struct {
	Radius         int
	Octaves        int
	Lacunarity     float32
	Gain           float32
	FrequencyScale float32
	AmplitudeScale float32
	BaseHeight     float32
	Seed           int64
	Material       scene.Material
}

// DefaultSettings returns the stock seabed.
func DefaultSettings() Settings {
	return Settings{
		Radius:         100,
		Octaves:        3,
		Lacunarity:     1.5,
		Gain:           0.001,
		FrequencyScale: 0.1,
		AmplitudeScale: 2.0,
		BaseHeight:     0.5,
		Material: scene.Material{
			BaseColor: [3]float32{10.0 / 255, 10.0 / 255, 44.0 / 255},
			Roughness: 0.8,
		},
	}
}

// SettingsFromConfig converts the terrain section of the game config.
func SettingsFromConfig(cfg config.TerrainConfig) (Settings, error) {
	color, err := config.ParseHexColor(cfg.Color)
	if err != nil {
		return Settings{}, fmt.Errorf("terrain material: %w", err)
	}
	return Settings{
		Radius:         cfg.Radius,
		Octaves:        cfg.Noise.Octaves,
		Lacunarity:     cfg.Noise.Lacunarity,
		Gain:           cfg.Noise.Gain,
		FrequencyScale: cfg.Noise.FrequencyScale,
		AmplitudeScale: cfg.Noise.AmplitudeScale,
		BaseHeight:     cfg.Noise.BaseHeight,
		Seed:           cfg.Noise.Seed,
		Material:       scene.Material{BaseColor: color, Roughness: cfg.Roughness},
	}, nil
}

// Generator builds the seabed for one level.
type Generator struct {
	settings Settings
	fbm      *noise.FBM
	log      *zap.Logger
}

// NewGenerator creates a generator. Height is a pure function of its inputs
// and the settings.
func NewGenerator(s Settings) *Generator {
	return &Generator{
		settings: s,
		fbm: noise.NewFBM(s.Seed, noise.Settings{
			Octaves:    s.Octaves,
			Lacunarity: s.Lacunarity,
			Gain:       s.Gain,
		}),
		log: logger.Named("terrain"),
	}
}

// Settings returns the generator settings.
func (g *Generator) Settings() Settings {
	return g.settings
}

// Height returns the seabed height at (x, z).
func (g *Generator) Height(x, z float32) float32 {
	p := mgl32.Vec3{x, 0, z}.Mul(g.settings.FrequencyScale)
	return g.fbm.Eval3(p)*g.settings.AmplitudeScale + g.settings.BaseHeight
}

// Width returns the number of vertices along one side of the grid: 2R+3.
func (g *Generator) Width() int {
	return 2*g.settings.Radius + 3
}

// Heightfield is the shared-vertex grid before duplication.
type Heightfield struct {
	Width     int
	Positions []mgl32.Vec3
	Indices   []uint32
}

// Heightfield samples the grid over x, z in [-(R+1), R+1], x-major, and
// triangulates it.
func (g *Generator) Heightfield() Heightfield {
	half := g.settings.Radius + 1
	w := g.Width()

	positions := make([]mgl32.Vec3, 0, w*w)
	for x := -half; x <= half; x++ {
		for z := -half; z <= half; z++ {
			fx, fz := float32(x), float32(z)
			positions = append(positions, mgl32.Vec3{fx, g.Height(fx, fz), fz})
		}
	}

	return Heightfield{
		Width:     w,
		Positions: positions,
		Indices:   gridIndices(w),
	}
}

// gridIndices splits each cell of a w x w grid into two triangles:
// (i, i+1, i+w+1) and (i, i+w+1, i+w) with i = x*w + z.
func gridIndices(w int) []uint32 {
	cells := w - 1
	indices := make([]uint32, 0, cells*cells*6)
	for x := 0; x < cells; x++ {
		for z := 0; z < cells; z++ {
			i := uint32(x*w + z)
			stride := uint32(w)
			indices = append(indices,
				i, i+1, i+stride+1,
				i, i+stride+1, i+stride,
			)
		}
	}
	return indices
}

// Mesh turns hf into a flat-shaded mesh: every triangle gets its own vertex
// copies, then normals are computed per face.
func Mesh(hf Heightfield) *mesh.Mesh {
	m := mesh.New(hf.Positions, hf.Indices)
	mesh.DuplicateVertices(m)
	mesh.ComputeNormals(m)
	return m
}

// Spawn uploads the seabed mesh and places it at the origin of anchor.
func (g *Generator) Spawn(w *scene.World, uploader scene.MeshUploader, anchor ecs.Entity, hf Heightfield) (ecs.Entity, error) {
	m := Mesh(hf)
	handle, err := uploader.UploadMesh(m)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("uploading terrain mesh: %w", err)
	}

	e := w.SpawnMesh(anchor, scene.MeshInstance{Mesh: handle, Material: g.settings.Material}, scene.Identity())
	g.log.Info("seabed spawned",
		zap.Int("radius", g.settings.Radius),
		zap.Int("vertices", len(hf.Positions)),
		zap.Int("triangles", len(hf.Indices)/3),
	)
	return e, nil
}
