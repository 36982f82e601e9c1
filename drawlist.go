package gui

import (
	"math"

	"github.com/chewxy/math32"
)

// DrawList is the per-frame geometry batch: vertices with position, texture
// coordinate and packed color, plus triangle indices. Everything, text and
// solid chrome alike, samples the same font atlas, so a backend can draw the
// whole list with one textured-triangle pipeline.
//
// The list is append-only during a frame and cleared in place at the start
// of the next one; renderers must consume it before then.
type DrawList struct {
	VtxBuffer []Vertex // Vertex data
	IdxBuffer []uint32 // Triangle indices, three per triangle

	whiteUV  [2]float32
	texScale float32 // 1 / atlas size, for texel to UV conversion
}

// NewDrawList creates an empty list whose solid geometry samples the
// atlas's white texel.
func NewDrawList(atlas *FontAtlas) *DrawList {
	return &DrawList{
		VtxBuffer: make([]Vertex, 0, 1024),
		IdxBuffer: make([]uint32, 0, 2048),
		whiteUV:   atlas.WhiteUV(),
		texScale:  1 / float32(atlas.Size),
	}
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
}

// Len returns the number of vertices and indices.
func (dl *DrawList) Len() (vertices, indices int) {
	return len(dl.VtxBuffer), len(dl.IdxBuffer)
}

// PushVertex appends one vertex and returns its index.
func (dl *DrawList) PushVertex(pos Vec2, color uint32, uv [2]float32) uint32 {
	dl.VtxBuffer = append(dl.VtxBuffer, Vertex{
		Pos:      [2]float32{pos.X, pos.Y},
		TexCoord: uv,
		Color:    color,
	})
	return uint32(len(dl.VtxBuffer) - 1)
}

// addIndices appends triangle indices.
func (dl *DrawList) addIndices(indices ...uint32) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle as two counter-clockwise triangles.
func (dl *DrawList) AddRect(pos, size Vec2, color uint32) {
	dl.addQuad(pos, pos.Add(size), color, dl.whiteUV, dl.whiteUV)
}

// addQuad emits the quad p0..p1 with the texture box uv0..uv1.
// Vertices go top-left, bottom-left, top-right, bottom-right, which with
// Y pointing down gives counter-clockwise winding on screen.
func (dl *DrawList) addQuad(p0, p1 Vec2, color uint32, uv0, uv1 [2]float32) {
	tl := dl.PushVertex(p0, color, uv0)
	bl := dl.PushVertex(Vec2{X: p0.X, Y: p1.Y}, color, [2]float32{uv0[0], uv1[1]})
	tr := dl.PushVertex(Vec2{X: p1.X, Y: p0.Y}, color, [2]float32{uv1[0], uv0[1]})
	br := dl.PushVertex(p1, color, uv1)

	dl.addIndices(tl, bl, tr, bl, br, tr)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(pos, size Vec2, color uint32, thickness float32) {
	x, y, w, h := pos.X, pos.Y, size.X, size.Y
	dl.AddRect(Vec2{x, y}, Vec2{w, thickness}, color)
	dl.AddRect(Vec2{x, y + h - thickness}, Vec2{w, thickness}, color)
	dl.AddRect(Vec2{x, y + thickness}, Vec2{thickness, h - 2*thickness}, color)
	dl.AddRect(Vec2{x + w - thickness, y + thickness}, Vec2{thickness, h - 2*thickness}, color)
}

// AddCircle draws a filled circle inscribed in the box at pos, as a fan of
// segments triangles around a center vertex.
func (dl *DrawList) AddCircle(pos, size Vec2, color uint32, segments int) {
	if segments < 3 {
		segments = 3
	}

	radius := math32.Min(size.X, size.Y) / 2
	center := pos.Add(size.Mul(0.5))
	c := dl.PushVertex(center, color, dl.whiteUV)

	step := 2 * float32(math.Pi) / float32(segments)
	first := uint32(len(dl.VtxBuffer))
	for i := 0; i < segments; i++ {
		sin, cos := math32.Sincos(float32(i) * step)
		dl.PushVertex(Vec2{X: center.X + radius*cos, Y: center.Y - radius*sin}, color, dl.whiteUV)
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		dl.addIndices(c, first+uint32(i), first+uint32(next))
	}
}

// AddGlyph draws one glyph quad. p0/p1 are pixel corners; the texture box
// is given in atlas texels and normalized here.
func (dl *DrawList) AddGlyph(p0, p1 Vec2, g Glyph, color uint32) {
	s := dl.texScale
	dl.addQuad(p0, p1, color,
		[2]float32{g.U0 * s, g.V0 * s},
		[2]float32{g.U1 * s, g.V1 * s})
}
