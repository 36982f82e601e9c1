package gui

import (
	"fmt"
	"math"
)

// SliderFloat draws a horizontal slider for a float32 value.
// While the slider holds capture, the value follows the pointer's x
// position mapped from the slider box onto [minVal, maxVal].
//
// Usage:
//
//	ctx.SliderFloat("Volume", &volume, 0, 1)
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32) {
	pos := ctx.beginWidget()
	id := ctx.GetID(label)

	box := ctx.sliderBox(pos)
	if ctx.sliderDragging(id, box) {
		*value = sliderValue(box, ctx.Input.Pointer.X, minVal, maxVal)
	}
	*value = clampf(*value, minVal, maxVal)

	ctx.drawSlider(id, box, sliderRatio(*value, minVal, maxVal), fmt.Sprintf("%.2f", *value))
	ctx.recordWidget(ctx.addLabel(box.Pos(), box.Size(), label))
}

// SliderInt draws a horizontal slider for an int value. The mapped pointer
// position is rounded to the nearest integer.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int) {
	pos := ctx.beginWidget()
	id := ctx.GetID(label)

	box := ctx.sliderBox(pos)
	if ctx.sliderDragging(id, box) {
		*value = sliderIntValue(sliderT(box, ctx.Input.Pointer.X), minVal, maxVal)
	}
	*value = min(max(*value, minVal), maxVal)

	ratio := sliderRatio(float32(*value), float32(minVal), float32(maxVal))
	ctx.drawSlider(id, box, ratio, fmt.Sprintf("%d", *value))
	ctx.recordWidget(ctx.addLabel(box.Pos(), box.Size(), label))
}

func (ctx *Context) sliderBox(pos Vec2) Rect {
	sz := ctx.style.SliderSize
	return Rect{X: pos.X, Y: pos.Y, W: sz.X, H: sz.Y}
}

// sliderDragging captures on a press inside the box and reports whether the
// slider holds capture this frame, the capture frame included.
func (ctx *Context) sliderDragging(id ID, box Rect) bool {
	ctx.tryCapture(id, ctx.isHovered(id, box))
	return ctx.isActive(id)
}

// sliderValue maps x linearly from the box's horizontal extent onto
// [minVal, maxVal] and clamps.
func sliderValue(box Rect, x, minVal, maxVal float32) float32 {
	return clampf(lerpf(minVal, maxVal, sliderT(box, x)), minVal, maxVal)
}

// sliderT returns x's position across the box as a fraction in [0,1].
func sliderT(box Rect, x float32) float32 {
	if box.W <= 0 {
		return 0
	}
	return clampf((x-box.X)/box.W, 0, 1)
}

// sliderIntValue maps t onto [minVal, maxVal], rounding to the nearest
// integer. The span is taken as uint64 so ranges wider than MaxInt
// (e.g. [MinInt, MaxInt]) neither overflow nor go through float32.
func sliderIntValue(t float32, minVal, maxVal int) int {
	if maxVal <= minVal || t <= 0 {
		return minVal
	}
	if t >= 1 {
		return maxVal
	}
	span := uint64(maxVal) - uint64(minVal)
	off := math.Round(float64(t) * float64(span))
	if off >= float64(span) {
		return maxVal
	}
	return int(uint64(minVal) + uint64(off))
}

// sliderRatio returns where v sits in [minVal, maxVal] as a fraction in [0,1].
func sliderRatio(v, minVal, maxVal float32) float32 {
	if maxVal <= minVal {
		return 0
	}
	return clampf((v-minVal)/(maxVal-minVal), 0, 1)
}

func (ctx *Context) drawSlider(id ID, box Rect, ratio float32, valueText string) {
	s := ctx.style
	hot := ctx.isActive(id) || ctx.isHovered(id, box)

	ctx.DrawList.AddRect(box.Pos(), box.Size(), widgetColor(s.SliderColor, s.SliderHoverColor, hot))

	fillW := ratio * box.W
	if fillW > 0 {
		ctx.DrawList.AddRect(box.Pos(), Vec2{X: fillW, Y: box.H}, s.SliderFillColor)
	}

	grabX := box.X + ratio*(box.W-s.SliderGrabW)
	ctx.DrawList.AddRect(Vec2{X: grabX, Y: box.Y}, Vec2{X: s.SliderGrabW, Y: box.H}, s.SliderGrabColor)

	ctx.addTextCentered(box.Pos(), box.Size(), valueText, s.TextColor)
}
