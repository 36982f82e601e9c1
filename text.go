package gui

import "github.com/chewxy/math32"

// MeasureText returns the pixel size of a single line of text.
// Width is the sum of advances; height is the tallest glyph box in the
// string, not the line height. MeasureText("") is the zero vector.
func MeasureText(atlas *FontAtlas, text string) Vec2 {
	var size Vec2
	for _, r := range text {
		g := atlas.Lookup(r)
		size.X += g.Advance
		size.Y = math32.Max(size.Y, g.Height())
	}
	return size
}

// AddText lays text out left to right starting at origin, the top-left of
// the text line, and appends one quad per glyph. Pixel positions are
// rounded to whole pixels so glyphs sample the atlas without blur.
func (dl *DrawList) AddText(atlas *FontAtlas, origin Vec2, text string, color uint32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	pen := Vec2{X: origin.X, Y: origin.Y + atlas.Ascent}.Round()
	for _, r := range text {
		g := atlas.Lookup(r)
		if g.X1 > g.X0 && g.Y1 > g.Y0 {
			p0 := Vec2{X: pen.X + g.X0, Y: pen.Y + g.Y0}
			p1 := Vec2{X: pen.X + g.X1, Y: pen.Y + g.Y1}
			dl.AddGlyph(p0, p1, g, color)
		}
		pen.X = math32.Round(pen.X + g.Advance)
	}
}

// MeasureText returns the size of rendered text with the context's atlas.
// Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	size := MeasureText(ctx.atlas, text)
	ctx.textMeasureCache[text] = size
	return size
}

// addText draws text with its top-left corner at pos.
func (ctx *Context) addText(pos Vec2, text string, color uint32) {
	ctx.DrawList.AddText(ctx.atlas, pos, text, color)
}

// addTextCentered centers text inside the box, rounding the origin to whole pixels.
func (ctx *Context) addTextCentered(boxPos, boxSize Vec2, text string, color uint32) {
	size := ctx.MeasureText(text)
	origin := boxPos.Add(boxSize.Sub(size).Mul(0.5)).Round()
	ctx.addText(origin, text, color)
}
