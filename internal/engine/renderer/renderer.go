// Package renderer draws the scene world with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/fishy/internal/engine/mesh"
	"github.com/Faultbox/fishy/internal/engine/scene"
	"github.com/Faultbox/fishy/internal/engine/shader"
	"github.com/Faultbox/fishy/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
	// Sun is where the directional light comes from; it shines at the origin.
	Sun     mgl32.Vec3
	Ambient mgl32.Vec3

	PointLight PointLight
	Fog        Fog
}

// PointLight is a diffuse light whose contribution reaches zero at Range.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Range    float32
}

// Fog blends fragments toward Color with distance from the eye. Extinction
// absorbs the surface colour, Inscattering adds the fog colour.
type Fog struct {
	Color        mgl32.Vec3
	Extinction   float32
	Inscattering float32
}

// DefaultConfig returns a pale blue backdrop lit from straight above, with a
// deep blue point light behind the scene and greenish blue water fog.
func DefaultConfig() Config {
	return Config{
		Width:      800,
		Height:     600,
		ClearColor: [3]float32{0.6, 0.8, 1.0},
		Sun:        mgl32.Vec3{0, 30, 0.01},
		Ambient:    mgl32.Vec3{0.35, 0.4, 0.5},
		PointLight: PointLight{
			Position: mgl32.Vec3{0, 30, -50},
			Color:    mgl32.Vec3{0x0a / 255.0, 0x0a / 255.0, 0x2c / 255.0},
			Range:    100,
		},
		Fog: Fog{
			Color:        mgl32.Vec3{0, 0.5, 0.8},
			Extinction:   0.005,
			Inscattering: 0.003,
		},
	}
}

type gpuMesh struct {
	vao, vbo uint32
	count    int32
}

// Renderer owns every GL object it uploads.
type Renderer struct {
	config   Config
	program  *shader.Program
	meshes   map[scene.MeshHandle]gpuMesh
	next     scene.MeshHandle
	cube     scene.MeshHandle
	lightDir mgl32.Vec3
	log      *zap.Logger
}

// New creates a new renderer. It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		meshes:   make(map[scene.MeshHandle]gpuMesh),
		lightDir: lightDirection(cfg.Sun, mgl32.Vec3{}),
		log:      logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)

	var err error
	r.program, err = shader.New(shader.LitVertexShader, shader.LitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.cube, err = r.UploadMesh(cubeMesh())
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("uploading proxy cube: %w", err), r.Close())
	}

	return r, nil
}

// UploadMesh copies m to the GPU. m must be a triangle list with normals;
// indexed meshes are expanded first.
func (r *Renderer) UploadMesh(m *mesh.Mesh) (scene.MeshHandle, error) {
	if m.Indexed() {
		m = expand(m)
	}
	data, err := interleave(m)
	if err != nil {
		return 0, err
	}

	var g gpuMesh
	g.count = int32(len(m.Positions))

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if err := glError("uploading mesh"); err != nil {
		deleteMesh(g)
		return 0, err
	}

	r.next++
	r.meshes[r.next] = g
	r.log.Debug("mesh uploaded", zap.Uint32("handle", uint32(r.next)), zap.Int32("vertices", g.count))
	return r.next, nil
}

// Ready reports whether a sub-scene can be drawn. Sub-scenes are drawn as
// proxy cubes, so they always are.
func (r *Renderer) Ready(scene.Handle) bool {
	return true
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders every mesh instance and materialized sub-scene in w.
func (r *Renderer) Draw(w *scene.World, view, projection mgl32.Mat4) {
	r.program.Use()
	r.program.SetMat4("uViewProj", projection.Mul4(view))
	r.program.SetVec3("uLightDir", r.lightDir)
	r.program.SetVec3("uAmbient", r.config.Ambient)

	p := r.config.PointLight
	r.program.SetVec3("uPointPos", p.Position)
	r.program.SetVec3("uPointColor", p.Color)
	r.program.SetFloat("uPointRange", p.Range)

	f := r.config.Fog
	r.program.SetVec3("uEye", eyePosition(view))
	r.program.SetVec3("uFogColor", f.Color)
	r.program.SetFloat("uFogExtinction", f.Extinction)
	r.program.SetFloat("uFogInscattering", f.Inscattering)

	w.EachMesh(func(e ecs.Entity, mi *scene.MeshInstance) {
		r.drawMesh(mi.Mesh, w.GlobalMatrix(e), mgl32.Vec3(mi.Material.BaseColor), mi.Material.Roughness)
	})
	w.EachSceneRoot(func(e ecs.Entity, root *scene.SceneRoot) {
		r.drawMesh(r.cube, w.GlobalMatrix(e), mgl32.Vec3(root.Tint), 1)
	})
}

func (r *Renderer) drawMesh(h scene.MeshHandle, model mgl32.Mat4, color mgl32.Vec3, roughness float32) {
	g, ok := r.meshes[h]
	if !ok {
		return
	}
	r.program.SetMat4("uModel", model)
	r.program.SetVec3("uBaseColor", color)
	r.program.SetFloat("uRoughness", roughness)

	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	gl.BindVertexArray(0)
}

// End finishes the current frame.
func (r *Renderer) End() {}

// Close frees every GL object and reports any GL errors raised doing so.
func (r *Renderer) Close() error {
	r.log.Info("closing renderer")

	var err error
	for h, g := range r.meshes {
		deleteMesh(g)
		delete(r.meshes, h)
	}
	err = multierr.Append(err, glError("deleting meshes"))

	if r.program != nil {
		r.program.Delete()
		err = multierr.Append(err, glError("deleting shader program"))
	}
	return err
}

func deleteMesh(g gpuMesh) {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
}

func glError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("%s: GL error 0x%04x", op, code)
	}
	return nil
}
