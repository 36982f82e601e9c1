package gui

// labelGap returns the distance between a widget's box and its trailing label.
func (ctx *Context) labelGap() float32 {
	return ctx.style.WidgetSpacing
}

// addLabel draws a label vertically centered to the right of a box and
// returns the combined size of box and label.
func (ctx *Context) addLabel(boxPos, boxSize Vec2, label string) Vec2 {
	if label == "" {
		return boxSize
	}
	ts := ctx.MeasureText(label)
	x := boxPos.X + boxSize.X + ctx.labelGap()
	y := boxPos.Y + (boxSize.Y-ts.Y)/2
	ctx.addText(Vec2{X: x, Y: y}, label, ctx.style.TextColor)
	return Vec2{X: boxSize.X + ctx.labelGap() + ts.X, Y: max(boxSize.Y, ts.Y)}
}

// TextLine draws a line of text at the current cursor position.
func (ctx *Context) TextLine(text string) {
	pos := ctx.beginWidget()
	ctx.addText(pos, text, ctx.style.TextColor)
	ctx.recordWidget(ctx.MeasureText(text))
}

// Separator draws a horizontal rule across the window interior.
func (ctx *Context) Separator() {
	pos := ctx.beginWidget()
	size := Vec2{X: ctx.contentWidth(), Y: ctx.style.SeparatorH}
	ctx.DrawList.AddRect(pos, size, ctx.style.SeparatorColor)
	ctx.recordWidget(size)
}

// Button draws a button and returns true if clicked.
// A click is a release with the pointer inside the button, of a press that
// also began inside it.
//
// Usage:
//
//	if ctx.Button("Reset") {
//	    resetScene()
//	}
func (ctx *Context) Button(label string) bool {
	pos := ctx.beginWidget()
	id := ctx.GetID(label)
	s := ctx.style

	textSize := ctx.MeasureText(label)
	size := textSize.Add(s.ButtonPadding.Mul(2))
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	hovered := ctx.isHovered(id, rect)
	ctx.tryCapture(id, hovered)
	active := ctx.isActive(id)

	clicked := active && hovered && ReleaseEdge(ctx.Input)
	if clicked {
		guiLogger.Debug("button clicked", "label", label)
	}

	bg := buttonColor(s, hovered || active, active && ctx.Input.MouseDown)
	ctx.DrawList.AddRect(pos, size, bg)
	ctx.addTextCentered(pos, size, label, s.TextColor)

	ctx.recordWidget(size)
	return clicked
}

// Checkbox draws a box that flips *value when pressed.
func (ctx *Context) Checkbox(label string, value *bool) {
	pos := ctx.beginWidget()
	id := ctx.GetID(label)
	s := ctx.style

	box := Vec2{X: s.ToggleSize, Y: s.ToggleSize}
	rect := Rect{X: pos.X, Y: pos.Y, W: box.X, H: box.Y}

	hovered := ctx.isHovered(id, rect)
	if ctx.tryCapture(id, hovered) {
		*value = !*value
	}

	ctx.DrawList.AddRect(pos, box, widgetColor(s.ToggleColor, s.ToggleHoverColor, hovered || ctx.isActive(id)))
	if *value {
		inset := s.ToggleSize / 4
		ctx.DrawList.AddRect(pos.Add(Vec2{X: inset, Y: inset}), box.Sub(Vec2{X: 2 * inset, Y: 2 * inset}), s.ToggleMarkColor)
	}

	ctx.recordWidget(ctx.addLabel(pos, box, label))
}

// RadioButton draws one option of a radio group. Pressing it stores id in
// *value; the button shows as selected while *value == id. Buttons sharing
// the same value pointer with distinct ids form a group.
//
// Usage:
//
//	ctx.RadioButton("Low", &quality, 0)
//	ctx.SameLine()
//	ctx.RadioButton("High", &quality, 1)
func (ctx *Context) RadioButton(label string, value *int, id int) {
	pos := ctx.beginWidget()
	wid := ctx.GetID(label)
	s := ctx.style

	box := Vec2{X: s.ToggleSize, Y: s.ToggleSize}
	rect := Rect{X: pos.X, Y: pos.Y, W: box.X, H: box.Y}

	hovered := ctx.isHoveredCircle(wid, rect)
	if ctx.tryCapture(wid, hovered) && *value != id {
		guiLogger.Debug("radio selected", "label", label, "id", id)
		*value = id
	}

	ctx.DrawList.AddCircle(pos, box, widgetColor(s.ToggleColor, s.ToggleHoverColor, hovered || ctx.isActive(wid)), s.CircleSegments)
	if *value == id {
		inset := s.ToggleSize / 4
		ctx.DrawList.AddCircle(pos.Add(Vec2{X: inset, Y: inset}), box.Sub(Vec2{X: 2 * inset, Y: 2 * inset}), s.ToggleMarkColor, s.CircleSegments)
	}

	ctx.recordWidget(ctx.addLabel(pos, box, label))
}
