// Package renderer presents a CPU raster through OpenGL as a textured
// fullscreen quad.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/engine/raster"
	"github.com/Faultbox/voxelspace/internal/engine/shader"
	"github.com/Faultbox/voxelspace/internal/logger"
)

const vertexSrc = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

out vec2 uv;

void main() {
	gl_Position = vec4(aPos, 0.0, 1.0);
	uv = aUV;
}
`

const fragmentSrc = `
#version 410 core

in vec2 uv;
out vec4 FragColor;

uniform sampler2D frame;

void main() {
	FragColor = vec4(texture(frame, uv).rgb, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int // raster size
	Height int
}

// Renderer draws spans into a raster and uploads it to the GPU on Present.
// The embedded buffer provides Clear, DrawLines and Size.
type Renderer struct {
	*raster.Buffer

	program uint32
	vao     uint32
	vbo     uint32
	texture uint32

	texW, texH int
	log        *zap.Logger
}

// New creates the presenter.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		Buffer: raster.New(cfg.Width, cfg.Height),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	loc, err := shader.Uniform(r.program, "frame")
	if err != nil {
		r.Close()
		return nil, err
	}
	gl.UseProgram(r.program)
	gl.Uniform1i(loc, 0)

	r.createQuad()
	r.createTexture()
	return r, nil
}

// createQuad builds a triangle strip covering clip space. Raster row 0 is the
// top of the screen, so v runs downwards.
func (r *Renderer) createQuad() {
	vertices := []float32{
		// x, y, u, v
		-1, 1, 0, 0,
		-1, -1, 0, 1,
		1, 1, 1, 0,
		1, -1, 1, 1,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (r *Renderer) createTexture() {
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
}

// Resize sets the raster size and the GL viewport. The drawable size differs
// from the window size on HiDPI displays.
func (r *Renderer) Resize(width, height, drawableW, drawableH int) {
	r.Buffer.Resize(width, height)
	gl.Viewport(0, 0, int32(drawableW), int32(drawableH))
	r.log.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("drawable_width", drawableW),
		zap.Int("drawable_height", drawableH),
	)
}

// Present uploads the raster and draws it over the viewport.
func (r *Renderer) Present() error {
	w, h := r.Size()
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if w == 0 || h == 0 {
		return nil
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	pix := gl.Ptr(r.Pix())
	if w != r.texW || h != r.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, pix)
		r.texW, r.texH = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, pix)
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("present: GL error 0x%x", code)
	}
	return nil
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.texture != 0 {
		gl.DeleteTextures(1, &r.texture)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}
