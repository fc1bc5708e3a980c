// Package noise provides fractal Brownian motion over OpenSimplex noise.
package noise

import (
	"github.com/go-gl/mathgl/mgl32"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Settings configures a fractal sum of noise octaves.
type Settings struct {
	Octaves    int
	Lacunarity float32 // frequency multiplier per octave
	Gain       float32 // amplitude multiplier per octave
}

// FBM sums octaves of 3D simplex noise. It holds no mutable state, so the
// same point always yields the same value for a given seed.
type FBM struct {
	source   opensimplex.Noise32
	settings Settings
}

// NewFBM creates an fBm generator over simplex noise with the given seed.
func NewFBM(seed int64, s Settings) *FBM {
	return &FBM{
		source:   opensimplex.New32(seed),
		settings: s,
	}
}

// Settings returns the octave configuration.
func (f *FBM) Settings() Settings {
	return f.settings
}

// Eval3 returns sum over octaves i of simplex(p * freq_i) * amp_i,
// starting at freq 1 and amp 1.
func (f *FBM) Eval3(p mgl32.Vec3) float32 {
	var sum float32
	freq, amp := float32(1), float32(1)
	for i := 0; i < f.settings.Octaves; i++ {
		q := p.Mul(freq)
		sum += f.source.Eval3(q.X(), q.Y(), q.Z()) * amp
		freq *= f.settings.Lacunarity
		amp *= f.settings.Gain
	}
	return sum
}
