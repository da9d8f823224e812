// Package renderer is the single gateway between scene composition and the
// GPU. It owns the shading program, the primitive geometry and the camera
// matrices.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/laneracer/internal/engine/lighting"
	"github.com/Faultbox/laneracer/internal/engine/primitive"
	"github.com/Faultbox/laneracer/internal/engine/shader"
	"github.com/Faultbox/laneracer/internal/logger"
	"github.com/Faultbox/laneracer/pkg/math"
)

// Projection and lighting constants.
const (
	FieldOfView = 45.0 // degrees, vertical
	NearPlane   = 5.0
	FarPlane    = 110.0
)

// SkyColor is the clear color.
var SkyColor = math.RGB(0.501, 0.819, 1)

// Config holds renderer configuration.
type Config struct {
	Width          int
	Height         int
	SphereDepth    int
	CylinderFacets int
	Sun            lighting.Sun
}

type uniforms struct {
	mvp        int32
	color      int32
	camera     int32
	lightDir   int32
	lightCoeff int32
}

// Renderer draws primitives with the shading program.
type Renderer struct {
	config Config

	program  uint32
	store    *GeometryStore
	uniforms uniforms

	projection math.Mat4
	view       math.Mat4
	color      math.Color
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		view:   math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shader.ShadingVertex, shader.ShadingFragment)
	if err != nil {
		return nil, fmt.Errorf("shading program: %w", err)
	}
	gl.UseProgram(r.program)

	r.store, err = NewGeometryStore(cfg.SphereDepth, cfg.CylinderFacets)
	if err != nil {
		gl.DeleteProgram(r.program)
		return nil, fmt.Errorf("uploading geometry: %w", err)
	}

	loc := make(map[string]int32, len(shader.Uniforms))
	for _, name := range shader.Uniforms {
		loc[name] = shader.GetUniform(r.program, name)
		if loc[name] < 0 {
			logger.Warn("uniform not active in shading program", zap.String("name", name))
		}
	}
	r.uniforms = uniforms{
		mvp:        loc[shader.UniformMVP],
		color:      loc[shader.UniformColor],
		camera:     loc[shader.UniformCamera],
		lightDir:   loc[shader.UniformLightDir],
		lightCoeff: loc[shader.UniformLightCoeff],
	}
	coeff := cfg.Sun.Coefficients()
	gl.Uniform4fv(r.uniforms.lightCoeff, 1, &coeff[0])

	// The projection is fixed and uses a square aspect.
	r.projection = math.Perspective(math.Radians(FieldOfView), 1, NearPlane, FarPlane)

	logger.Debug("renderer ready", zap.Uint32("program", r.program))
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.store != nil {
		r.store.Close()
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles a drawable size change.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin clears the frame to the sky color.
func (r *Renderer) Begin() {
	gl.ClearColor(SkyColor.R, SkyColor.G, SkyColor.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetView sets the view matrix and uploads the camera position and the light
// direction. The light is fixed in world space.
func (r *Renderer) SetView(view math.Mat4, camera math.Vec3) {
	r.view = view

	cam := camera.Array()
	gl.Uniform3fv(r.uniforms.camera, 1, &cam[0])
	light := r.config.Sun.Direction.Array()
	gl.Uniform3fv(r.uniforms.lightDir, 1, &light[0])
}

// SetColor sets the color used by subsequent Render calls.
func (r *Renderer) SetColor(c math.Color) {
	r.color = c
}

// Render draws one primitive with the given model matrix and the current color.
func (r *Renderer) Render(kind primitive.Kind, model math.Mat4) {
	mvp := r.projection.Mul(r.view).Mul(model)
	gl.UniformMatrix4fv(r.uniforms.mvp, 1, false, mvp.Ptr())

	c := r.color.Array()
	gl.Uniform3fv(r.uniforms.color, 1, &c[0])

	r.store.Draw(kind)
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}
