// Package opengl provides an OpenGL 4.1 backend for the GUI package.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	gui "github.com/go-theft-auto/pnpgui"
)

// Renderer implements gui.Renderer using OpenGL.
// Every vertex samples the font atlas: glyphs hit their coverage texels,
// solid geometry hits the atlas's opaque white block, so one draw call
// covers the whole batch.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	fontTex  uint32
	projLoc  int32
	texLoc   int32
}

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// The atlas is alpha-only: the R channel is coverage, the vertex color
// supplies RGB.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;

void main() {
    float coverage = texture(fontTexture, TexCoord).r;
    FragColor = vec4(Color.rgb, Color.a * coverage);
}
` + "\x00"

// NewRenderer creates a new OpenGL GUI renderer and uploads atlas.
// A GL context must be current.
func NewRenderer(atlas *gui.FontAtlas) (*Renderer, error) {
	if atlas == nil {
		return nil, fmt.Errorf("opengl: nil font atlas")
	}
	r := &Renderer{}

	var err error
	if r.shader, err = linkProgram(vertexShaderSource, fragmentShaderSource); err != nil {
		return nil, fmt.Errorf("opengl: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Color is 0xAABBGGRR, which reads back as RGBA bytes.
	stride := int32(unsafe.Sizeof(gui.Vertex{}))
	attribs := []struct {
		size       int32
		xtype      uint32
		normalized bool
		offset     uintptr
	}{
		{2, gl.FLOAT, false, unsafe.Offsetof(gui.Vertex{}.Pos)},
		{2, gl.FLOAT, false, unsafe.Offsetof(gui.Vertex{}.TexCoord)},
		{4, gl.UNSIGNED_BYTE, true, unsafe.Offsetof(gui.Vertex{}.Color)},
	}
	for i, a := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, a.xtype, a.normalized, stride, a.offset)
		gl.EnableVertexAttribArray(uint32(i))
	}

	gl.BindVertexArray(0)

	r.fontTex = uploadAtlas(atlas)

	return r, nil
}

// FontTextureID returns the OpenGL texture ID for the font atlas.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// Render draws the batch with the given projection.
// The viewport is left as the host set it.
func (r *Renderer) Render(dl *gui.DrawList, projection [16]float32) error {
	if dl == nil || len(dl.IdxBuffer) == 0 {
		return nil
	}

	restore := saveState()
	defer restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &projection[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	gl.Uniform1i(r.texLoc, 0)

	gl.BindVertexArray(r.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*4,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(dl.IdxBuffer)), gl.UNSIGNED_INT, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: draw failed with error 0x%x", code)
	}
	return nil
}

// saveState records the GL state Render touches and returns a func that
// restores it.
func saveState() func() {
	var lastProgram, lastTexture, lastActiveTexture, lastVAO, lastArrayBuffer int32

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.ACTIVE_TEXTURE, &lastActiveTexture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &lastVAO)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &lastArrayBuffer)
	blend := readBlendState()
	blendEnabled := gl.IsEnabled(gl.BLEND)
	depthEnabled := gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled := gl.IsEnabled(gl.CULL_FACE)
	scissorEnabled := gl.IsEnabled(gl.SCISSOR_TEST)

	return func() {
		gl.UseProgram(uint32(lastProgram))
		gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
		gl.ActiveTexture(uint32(lastActiveTexture))
		gl.BindVertexArray(uint32(lastVAO))
		gl.BindBuffer(gl.ARRAY_BUFFER, uint32(lastArrayBuffer))
		blend.apply(gl.BlendFuncSeparate)
		setEnabled(gl.BLEND, blendEnabled)
		setEnabled(gl.DEPTH_TEST, depthEnabled)
		setEnabled(gl.CULL_FACE, cullEnabled)
		setEnabled(gl.SCISSOR_TEST, scissorEnabled)
	}
}

// blendState holds the separate RGB and alpha blend factors, so hosts
// using BlendFuncSeparate get both back.
type blendState struct {
	srcRGB, dstRGB     int32
	srcAlpha, dstAlpha int32
}

func readBlendState() blendState {
	var b blendState
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &b.srcRGB)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &b.dstRGB)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &b.srcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &b.dstAlpha)
	return b
}

// apply passes the factors to a BlendFuncSeparate-shaped setter.
func (b blendState) apply(set func(srcRGB, dstRGB, srcAlpha, dstAlpha uint32)) {
	set(uint32(b.srcRGB), uint32(b.dstRGB), uint32(b.srcAlpha), uint32(b.dstAlpha))
}

func setEnabled(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// uploadAtlas creates a single-channel texture from the atlas coverage.
func uploadAtlas(atlas *gui.FontAtlas) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	size := int32(atlas.Size)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, size, size, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// linkProgram compiles both stages and links them into a program.
func linkProgram(vertexSource, fragmentSource string) (uint32, error) {
	stages := []struct {
		name   string
		kind   uint32
		source string
	}{
		{"vertex", gl.VERTEX_SHADER, vertexSource},
		{"fragment", gl.FRAGMENT_SHADER, fragmentSource},
	}

	program := gl.CreateProgram()
	for _, st := range stages {
		sh, err := compileStage(st.kind, st.source)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, fmt.Errorf("%s shader: %w", st.name, err)
		}
		gl.AttachShader(program, sh)
		// Flagged for deletion; freed once the program is deleted.
		gl.DeleteShader(sh)
	}
	gl.LinkProgram(program)

	var ok int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetProgramInfoLog(program, n, nil, buf) })
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return program, nil
}

func compileStage(kind uint32, source string) (uint32, error) {
	sh := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	var ok int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &ok)
	if ok == gl.FALSE {
		var n int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &n)
		msg := infoLog(n, func(buf *uint8) { gl.GetShaderInfoLog(sh, n, nil, buf) })
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return sh, nil
}

// infoLog reads a driver log of n bytes, trailing NUL included.
func infoLog(n int32, read func(buf *uint8)) string {
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]byte, n)
	read(&buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
