// Package renderer is the OpenGL consumer of the effect parameter
// contract: it binds the packed vertex stream and uploads one
// parameter set per frame.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/matrix-rain/internal/effect"
	"github.com/Faultbox/matrix-rain/internal/engine/shader"
	"github.com/Faultbox/matrix-rain/internal/logger"
	"github.com/Faultbox/matrix-rain/internal/surface"
	"github.com/Faultbox/matrix-rain/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// paramUniforms caches the uniform locations for every field of the
// parameter block, in contract order.
type paramUniforms struct {
	time             int32
	characterDensity int32
	fallSpeed        int32
	glowIntensity    int32
	baseColor        int32
	highlightColor   int32
	characterScale   int32
	trailLength      int32
	randomSeed       int32
	surfaceType      int32
}

// Renderer draws the rain effect onto anchored surface quads.
type Renderer struct {
	config Config

	program  uint32
	uniforms paramUniforms
	uModel   int32
	uView    int32
	uProj    int32

	quadVAO   uint32
	quadVBO   uint32
	quadVerts int32
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.02, 0.02, 0.03, 1.0)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.resolveUniforms()

	if err := r.createQuad(); err != nil {
		return nil, err
	}

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the frame's parameter set onto each anchored surface.
// The surface kind baked into p is replaced per anchor so the shader
// branches on the surface it is actually painting.
func (r *Renderer) Draw(p effect.Params, anchors []surface.Anchor, view, proj math.Mat4) {
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.BindVertexArray(r.quadVAO)

	for _, a := range anchors {
		model := a.Model()
		gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
		r.setParams(p.WithSurface(a.Kind))
		gl.DrawArrays(gl.TRIANGLES, 0, r.quadVerts)
	}

	gl.BindVertexArray(0)
}

// setParams uploads one parameter set. One uniform per contract field.
func (r *Renderer) setParams(p effect.Params) {
	gl.Uniform1f(r.uniforms.time, p.Time())
	gl.Uniform1f(r.uniforms.characterDensity, p.CharacterDensity())
	gl.Uniform1f(r.uniforms.fallSpeed, p.FallSpeed())
	gl.Uniform1f(r.uniforms.glowIntensity, p.GlowIntensity())
	base := p.BaseColor()
	gl.Uniform3f(r.uniforms.baseColor, base.X, base.Y, base.Z)
	highlight := p.HighlightColor()
	gl.Uniform3f(r.uniforms.highlightColor, highlight.X, highlight.Y, highlight.Z)
	gl.Uniform1f(r.uniforms.characterScale, p.CharacterScale())
	gl.Uniform1f(r.uniforms.trailLength, p.TrailLength())
	gl.Uniform1f(r.uniforms.randomSeed, p.RandomSeed())
	gl.Uniform1i(r.uniforms.surfaceType, int32(p.Surface()))
}

func (r *Renderer) resolveUniforms() {
	r.uModel = shader.MustGetUniform(r.program, "uModel")
	r.uView = shader.MustGetUniform(r.program, "uView")
	r.uProj = shader.MustGetUniform(r.program, "uProj")

	// GetUniform, not MustGetUniform: the debug pass doesn't read
	// every field, and inactive uniforms resolve to -1.
	r.uniforms = paramUniforms{
		time:             shader.GetUniform(r.program, "uTime"),
		characterDensity: shader.GetUniform(r.program, "uCharacterDensity"),
		fallSpeed:        shader.GetUniform(r.program, "uFallSpeed"),
		glowIntensity:    shader.GetUniform(r.program, "uGlowIntensity"),
		baseColor:        shader.GetUniform(r.program, "uBaseColor"),
		highlightColor:   shader.GetUniform(r.program, "uHighlightColor"),
		characterScale:   shader.GetUniform(r.program, "uCharacterScale"),
		trailLength:      shader.GetUniform(r.program, "uTrailLength"),
		randomSeed:       shader.GetUniform(r.program, "uRandomSeed"),
		surfaceType:      shader.GetUniform(r.program, "uSurfaceType"),
	}
}

// createQuad uploads the unit effect quad through the packed vertex
// contract: the VBO bytes are exactly effect.MarshalVertices output,
// and the attribute pointers mirror the documented layout.
func (r *Renderer) createQuad() error {
	verts := quadVertices()
	data := effect.MarshalVertices(verts)
	r.quadVerts = int32(len(verts))

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, effect.VertexSize, nil)
	gl.EnableVertexAttribArray(0)

	// Normal attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, effect.VertexSize, 12)
	gl.EnableVertexAttribArray(1)

	// Texcoord attribute (location = 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, effect.VertexSize, 24)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("effect quad created",
		zap.Uint32("vao", r.quadVAO),
		zap.Uint32("vbo", r.quadVBO),
	)
	return nil
}

// quadVertices returns the unit quad in the effect's local frame:
// XY plane, facing +Z, v=0 at the top so glyphs enter there.
func quadVertices() []effect.Vertex {
	n := math.Vec3{Z: 1}
	tl := effect.Vertex{Position: math.Vec3{X: -0.5, Y: 0.5}, Normal: n, TexCoord: math.Vec2{X: 0, Y: 0}}
	tr := effect.Vertex{Position: math.Vec3{X: 0.5, Y: 0.5}, Normal: n, TexCoord: math.Vec2{X: 1, Y: 0}}
	bl := effect.Vertex{Position: math.Vec3{X: -0.5, Y: -0.5}, Normal: n, TexCoord: math.Vec2{X: 0, Y: 1}}
	br := effect.Vertex{Position: math.Vec3{X: 0.5, Y: -0.5}, Normal: n, TexCoord: math.Vec2{X: 1, Y: 1}}
	return []effect.Vertex{tl, bl, br, tl, br, tr}
}

var vertexShaderSource = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec2 vUV;

void main() {
	gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
	vUV = aTexCoord;
}
`

// Debug visualization pass: a scrolling tint built from the uniforms.
// The production glyph shading is the rendering backend's concern.
var fragmentShaderSource = `
#version 410 core

in vec2 vUV;
out vec4 FragColor;

uniform float uTime;
uniform float uCharacterDensity;
uniform float uFallSpeed;
uniform float uGlowIntensity;
uniform vec3 uBaseColor;
uniform vec3 uHighlightColor;
uniform float uTrailLength;
uniform float uRandomSeed;

void main() {
	float band = fract(vUV.y * uCharacterDensity + uTime * uFallSpeed + uRandomSeed);
	float lead = pow(band, uTrailLength);
	vec3 color = mix(uBaseColor, uHighlightColor, lead);
	FragColor = vec4(color * uGlowIntensity, 1.0);
}
`
