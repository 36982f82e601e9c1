package gui

import "fmt"

// Range is an inclusive value interval for a dragger axis.
type Range struct {
	Min, Max float32
}

// DefaultDragRange is the per-axis range of a dragger whose config does
// not name one.
var DefaultDragRange = Range{Min: -1, Max: 1}

// RGBRange is the fixed per-channel range of DragRGB.
var RGBRange = Range{Min: 0, Max: 1}

// DragConfig configures a dragger. The zero value is usable.
type DragConfig struct {
	// Ranges holds one range per axis. Axes past the end of the slice use
	// DefaultDragRange.
	Ranges []Range
	// Gain is value units per pixel of horizontal pointer motion.
	// Zero means Style.DragGain.
	Gain float32
	// SubLabels prefixes each axis value, e.g. "X", "Y".
	SubLabels []string
}

func (c DragConfig) rangeAt(i int) Range {
	if i < len(c.Ranges) {
		return c.Ranges[i]
	}
	return DefaultDragRange
}

func (c DragConfig) subLabelAt(i int) string {
	if i < len(c.SubLabels) {
		return c.SubLabels[i]
	}
	return ""
}

// DragFloat draws a one-axis dragger. While it holds capture the value
// moves by gain times the pointer's horizontal motion each frame, so the
// drag keeps working after the pointer leaves the box.
//
// Usage:
//
//	ctx.DragFloat("Exposure", &exposure, gui.DragConfig{Ranges: []gui.Range{{Min: 0, Max: 4}}})
func (ctx *Context) DragFloat(label string, value *float32, cfg DragConfig) {
	ctx.dragFloats(label, []*float32{value}, cfg, nil)
}

// DragFloatN draws len(values) independent draggers side by side sharing
// one label and the width of a single dragger.
func (ctx *Context) DragFloatN(label string, values []float32, cfg DragConfig) {
	ptrs := make([]*float32, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}
	ctx.dragFloats(label, ptrs, cfg, nil)
}

// DragFloat2 draws a two-axis dragger.
func (ctx *Context) DragFloat2(label string, v *[2]float32, cfg DragConfig) {
	ctx.DragFloatN(label, v[:], cfg)
}

// DragFloat3 draws a three-axis dragger.
func (ctx *Context) DragFloat3(label string, v *[3]float32, cfg DragConfig) {
	ctx.DragFloatN(label, v[:], cfg)
}

// DragFloat4 draws a four-axis dragger.
func (ctx *Context) DragFloat4(label string, v *[4]float32, cfg DragConfig) {
	ctx.DragFloatN(label, v[:], cfg)
}

// DragRGB draws a three-channel color dragger with every channel held in
// [0,1], followed by a swatch of the resulting color.
func (ctx *Context) DragRGB(label string, rgb *[3]float32) {
	cfg := DragConfig{
		Ranges:    []Range{RGBRange, RGBRange, RGBRange},
		SubLabels: []string{"R", "G", "B"},
	}
	ptrs := []*float32{&rgb[0], &rgb[1], &rgb[2]}
	ctx.dragFloats(label, ptrs, cfg, func(pos Vec2, h float32) float32 {
		sw := Vec2{X: h, Y: h}
		ctx.DrawList.AddRect(pos, sw, RGBAf(rgb[0], rgb[1], rgb[2], 1))
		return sw.X
	})
}

// dragFloats lays out one sub-dragger per value. trailer, when set, draws
// extra content after the draggers and returns its width.
func (ctx *Context) dragFloats(label string, values []*float32, cfg DragConfig, trailer func(pos Vec2, h float32) float32) {
	pos := ctx.beginWidget()
	s := ctx.style
	n := len(values)

	gain := cfg.Gain
	if gain == 0 {
		gain = s.DragGain
	}

	total := s.DragSize
	width := total.X
	if n > 0 {
		ctx.PushID(label)
		subW := (total.X - s.DragGap*float32(n-1)) / float32(n)
		for i, v := range values {
			id := ctx.GetIDFromInt(i)
			box := Rect{X: pos.X + float32(i)*(subW+s.DragGap), Y: pos.Y, W: subW, H: total.Y}
			ctx.dragScalar(id, box, v, cfg.rangeAt(i), gain, cfg.subLabelAt(i))
		}
		ctx.PopID()
	}

	if trailer != nil {
		width += s.DragGap + trailer(Vec2{X: pos.X + width + s.DragGap, Y: pos.Y}, total.Y)
	}

	ctx.recordWidget(ctx.addLabel(pos, Vec2{X: width, Y: total.Y}, label))
}

// dragScalar runs one sub-dragger: capture on press inside box, then
// value = clamp(value + gain*dx) every captured frame.
func (ctx *Context) dragScalar(id ID, box Rect, value *float32, r Range, gain float32, subLabel string) {
	s := ctx.style
	hovered := ctx.isHovered(id, box)
	ctx.tryCapture(id, hovered)
	active := ctx.isActive(id)

	if active {
		*value += gain * ctx.Input.Delta().X
	}
	*value = clampf(*value, r.Min, r.Max)

	ctx.DrawList.AddRect(box.Pos(), box.Size(), widgetColor(s.DragColor, s.DragHoverColor, hovered || active))

	text := fmt.Sprintf("%.3f", *value)
	if subLabel != "" {
		text = subLabel + ":" + text
	}
	ctx.addTextCentered(box.Pos(), box.Size(), text, s.TextColor)
}
