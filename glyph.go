package gui

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Atlas rune range. Characters outside it render as FallbackRune.
const (
	FirstRune    rune = 32
	LastRune     rune = 126
	FallbackRune rune = '?'
)

const (
	atlasPadding  = 2
	atlasMinSize  = 64
	atlasMaxSize  = 4096
	whiteBlockPos = 1 // top-left texel of the opaque white block
	whiteBlockLen = 3
)

// Glyph holds the layout metrics for one character.
// Quad offsets are in pixels relative to the pen position on the baseline
// (Y grows downward, so Y0 is negative for glyphs rising above the baseline).
// The atlas box is in texels.
type Glyph struct {
	Advance float32

	X0, Y0 float32
	X1, Y1 float32

	U0, V0 float32
	U1, V1 float32
}

// Height returns the height of the glyph's bounding box.
func (g Glyph) Height() float32 { return g.Y1 - g.Y0 }

// FontAtlas is a square alpha-coverage texture plus the glyph metrics table
// that indexes into it. It is immutable after construction.
type FontAtlas struct {
	Size int    // side length in texels
	Pix  []byte // Size*Size coverage values, row-major

	Ascent     float32 // distance from the top of a text line to its baseline
	LineHeight float32

	glyphs   []Glyph // indexed by rune - FirstRune
	present  []bool
	fallback Glyph
}

// Lookup returns the metrics for r, or the fallback glyph when r is
// outside the table or has no glyph in the source face.
func (a *FontAtlas) Lookup(r rune) Glyph {
	i := int(r - FirstRune)
	if r < FirstRune || i >= len(a.glyphs) || !a.present[i] {
		if guiVerbose() {
			guiLogger.Debug("glyph fallback", "rune", r)
		}
		return a.fallback
	}
	return a.glyphs[i]
}

// WhiteUV returns a normalized texture coordinate that samples a fully
// opaque texel. Solid geometry uses it so text and chrome share one pipeline.
func (a *FontAtlas) WhiteUV() [2]float32 {
	c := (float32(whiteBlockPos) + float32(whiteBlockLen)/2) / float32(a.Size)
	return [2]float32{c, c}
}

// Image returns the atlas as an image.Alpha sharing the pixel buffer.
func (a *FontAtlas) Image() *image.Alpha {
	return &image.Alpha{
		Pix:    a.Pix,
		Stride: a.Size,
		Rect:   image.Rect(0, 0, a.Size, a.Size),
	}
}

var builtinAtlas = sync.OnceValue(func() *FontAtlas {
	a, err := NewFontAtlas(basicfont.Face7x13)
	if err != nil {
		panic(fmt.Sprintf("gui: builtin font atlas: %v", err))
	}
	return a
})

// BuiltinAtlas returns the shared atlas built from the 7x13 bitmap face.
func BuiltinAtlas() *FontAtlas {
	return builtinAtlas()
}

type glyphBox struct {
	r       rune
	min     image.Point
	w, h    int
	advance float32
	at      image.Point
	ok      bool
}

// NewFontAtlas rasterizes the printable ASCII range of face into a square
// atlas and builds the metrics table for it.
func NewFontAtlas(face font.Face) (*FontAtlas, error) {
	boxes := make([]glyphBox, 0, LastRune-FirstRune+1)
	for r := FirstRune; r <= LastRune; r++ {
		bounds, adv, ok := face.GlyphBounds(r)
		b := glyphBox{r: r, ok: ok}
		if ok {
			b.min = image.Pt(bounds.Min.X.Floor(), bounds.Min.Y.Floor())
			b.w = bounds.Max.X.Ceil() - b.min.X
			b.h = bounds.Max.Y.Ceil() - b.min.Y
			b.advance = float32(adv.Round())
		}
		boxes = append(boxes, b)
	}

	fb := int(FallbackRune - FirstRune)
	if !boxes[fb].ok {
		return nil, fmt.Errorf("font face has no fallback glyph %q", FallbackRune)
	}

	size, err := packShelves(boxes)
	if err != nil {
		return nil, err
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	for y := whiteBlockPos; y < whiteBlockPos+whiteBlockLen; y++ {
		for x := whiteBlockPos; x < whiteBlockPos+whiteBlockLen; x++ {
			dst.Pix[y*dst.Stride+x] = 0xFF
		}
	}

	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	m := face.Metrics()
	a := &FontAtlas{
		Size:       size,
		Pix:        dst.Pix,
		Ascent:     float32(m.Ascent.Ceil()),
		LineHeight: float32(m.Height.Ceil()),
		glyphs:     make([]Glyph, len(boxes)),
		present:    make([]bool, len(boxes)),
	}

	for i, b := range boxes {
		if !b.ok {
			continue
		}
		if b.w > 0 && b.h > 0 {
			drawer.Dot = fixed.P(b.at.X-b.min.X, b.at.Y-b.min.Y)
			drawer.DrawString(string(b.r))
		}
		a.glyphs[i] = Glyph{
			Advance: b.advance,
			X0:      float32(b.min.X),
			Y0:      float32(b.min.Y),
			X1:      float32(b.min.X + b.w),
			Y1:      float32(b.min.Y + b.h),
			U0:      float32(b.at.X),
			V0:      float32(b.at.Y),
			U1:      float32(b.at.X + b.w),
			V1:      float32(b.at.Y + b.h),
		}
		a.present[i] = true
	}
	a.fallback = a.glyphs[fb]

	guiLogger.Debug("font atlas built", "size", size, "ascent", a.Ascent, "lineHeight", a.LineHeight)
	return a, nil
}

// packShelves assigns atlas positions row by row, doubling the atlas size
// until every glyph fits. The first row starts below the white block.
func packShelves(boxes []glyphBox) (int, error) {
	for size := atlasMinSize; size <= atlasMaxSize; size *= 2 {
		x, y, rowH := atlasPadding, whiteBlockPos+whiteBlockLen+atlasPadding, 0
		fits := true
		for i := range boxes {
			b := &boxes[i]
			if !b.ok || b.w == 0 || b.h == 0 {
				continue
			}
			if x+b.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if b.w+2*atlasPadding > size || y+b.h+atlasPadding > size {
				fits = false
				break
			}
			b.at = image.Pt(x, y)
			x += b.w + atlasPadding
			rowH = max(rowH, b.h)
		}
		if fits {
			return size, nil
		}
	}
	return 0, fmt.Errorf("font atlas too large (>%d)", atlasMaxSize)
}
