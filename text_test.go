package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestMeasureTextEmpty(t *testing.T) {
	assert.Equal(t, Vec2{}, MeasureText(BuiltinAtlas(), ""))
}

func TestMeasureTextDigits(t *testing.T) {
	atlas := BuiltinAtlas()
	size := MeasureText(atlas, "0123456789")

	var wantW, wantH float32
	for _, r := range "0123456789" {
		g := atlas.Lookup(r)
		wantW += g.Advance
		wantH = max(wantH, g.Height())
	}
	assert.Equal(t, wantW, size.X)
	assert.Equal(t, wantH, size.Y)

	// Face7x13 is monospaced: 7px advance, 13px glyph boxes.
	assert.Equal(t, Vec2{X: 70, Y: 13}, size)
}

func TestMeasureTextIsAdditive(t *testing.T) {
	atlas := BuiltinAtlas()
	a := MeasureText(atlas, "Hello")
	b := MeasureText(atlas, ", world")
	ab := MeasureText(atlas, "Hello, world")
	assert.Equal(t, a.X+b.X, ab.X)
	assert.Equal(t, max(a.Y, b.Y), ab.Y)
}

func TestLookupFallback(t *testing.T) {
	atlas := BuiltinAtlas()
	fallback := atlas.Lookup(FallbackRune)
	for _, r := range []rune{0, '\n', 127, 'é', '世'} {
		assert.Equal(t, fallback, atlas.Lookup(r), "rune %q", r)
	}
	assert.NotEqual(t, fallback, atlas.Lookup('A'))
}

func TestBuiltinAtlasLayout(t *testing.T) {
	atlas := BuiltinAtlas()

	require.GreaterOrEqual(t, atlas.Size, atlasMinSize)
	assert.Zero(t, atlas.Size&(atlas.Size-1), "size is a power of two")
	assert.Len(t, atlas.Pix, atlas.Size*atlas.Size)
	assert.Equal(t, float32(basicfont.Face7x13.Ascent), atlas.Ascent)

	// White block is opaque.
	uv := atlas.WhiteUV()
	x, y := int(uv[0]*float32(atlas.Size)), int(uv[1]*float32(atlas.Size))
	assert.Equal(t, byte(0xFF), atlas.Pix[y*atlas.Size+x])

	// Glyph boxes stay inside the atlas and do not overlap the white block.
	for r := rune(FirstRune); r <= LastRune; r++ {
		g := atlas.Lookup(r)
		assert.GreaterOrEqual(t, g.U0, float32(0))
		assert.LessOrEqual(t, g.U1, float32(atlas.Size))
		assert.LessOrEqual(t, g.V1, float32(atlas.Size))
		if g.U1 > g.U0 {
			assert.GreaterOrEqual(t, g.V0, float32(whiteBlockPos+whiteBlockLen), "rune %q", r)
		}
	}
}

func TestGlyphCoverageRasterized(t *testing.T) {
	atlas := BuiltinAtlas()
	g := atlas.Lookup('W')

	var ink int
	for y := int(g.V0); y < int(g.V1); y++ {
		for x := int(g.U0); x < int(g.U1); x++ {
			if atlas.Pix[y*atlas.Size+x] > 0 {
				ink++
			}
		}
	}
	assert.Positive(t, ink)
}

func TestPackShelvesTooLarge(t *testing.T) {
	boxes := []glyphBox{{ok: true, w: atlasMaxSize, h: 10}}
	_, err := packShelves(boxes)
	assert.Error(t, err)
}

func TestAddTextQuadPerGlyph(t *testing.T) {
	atlas := BuiltinAtlas()
	dl := NewDrawList(atlas)

	dl.AddText(atlas, Vec2{X: 10.4, Y: 20.6}, "abc", ColorWhite)
	v, i := dl.Len()
	assert.Equal(t, 12, v)
	assert.Equal(t, 18, i)

	// First glyph's top-left sits on the rounded baseline.
	g := atlas.Lookup('a')
	first := dl.VtxBuffer[0]
	assert.Equal(t, [2]float32{10 + g.X0, 21 + atlas.Ascent + g.Y0}, first.Pos)
	assert.Equal(t, [2]float32{g.U0 / float32(atlas.Size), g.V0 / float32(atlas.Size)}, first.TexCoord)

	// Second glyph advances by a whole pixel amount.
	second := dl.VtxBuffer[4]
	assert.Equal(t, first.Pos[0]+g.Advance, second.Pos[0])
}

func TestAddTextSkipsInvisible(t *testing.T) {
	atlas := BuiltinAtlas()
	dl := NewDrawList(atlas)

	dl.AddText(atlas, Vec2{}, "", ColorWhite)
	dl.AddText(atlas, Vec2{}, "hidden", ColorTransparent)
	v, _ := dl.Len()
	assert.Zero(t, v)
}

func TestContextMeasureTextCaches(t *testing.T) {
	h := newHarness()
	h.frame(false, Vec2{}, func(ctx *Context) {
		got := ctx.MeasureText("cache me")
		assert.Equal(t, MeasureText(ctx.Atlas(), "cache me"), got)
		assert.Contains(t, ctx.textMeasureCache, "cache me")
	})
}
