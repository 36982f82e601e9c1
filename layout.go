package gui

// caret is the layout cursor: where the next widget goes in the current window.
type caret struct {
	left float32 // x of the window's interior left margin
	pos  Vec2

	prev    Vec2    // size of the previously placed widget
	rowH    float32 // tallest widget on the current line
	hasPrev bool    // a widget was placed since the last advance
	same    bool    // one-shot: keep the next widget on this line
}

// reset moves the caret to the window interior and forgets any placed widget.
func (c *caret) reset(origin Vec2) {
	*c = caret{left: origin.X, pos: origin}
}

// moveCaret advances the caret past the previously placed widget.
// Every widget calls it before computing its own position.
//
// With SameLine pending the caret moves right by the previous widget's width
// plus spacing; otherwise it returns to the left margin and moves down past
// the current line. With no widget placed since the last advance (first
// widget of a window, or a repeated call) the caret stays where it is.
func (ctx *Context) moveCaret() {
	c := &ctx.caret
	if c.hasPrev {
		spacing := ctx.style.WidgetSpacing
		if c.same {
			c.pos.X += c.prev.X + spacing
		} else {
			c.pos.X = c.left
			c.pos.Y += c.rowH + spacing
			c.rowH = 0
		}
		c.hasPrev = false
	}
	c.same = false
}

// recordWidget stores the size of the widget just placed for the next moveCaret.
func (ctx *Context) recordWidget(size Vec2) {
	c := &ctx.caret
	c.prev = size
	c.rowH = max(c.rowH, size.Y)
	c.hasPrev = true
}

// SameLine places the next widget to the right of the previous one instead
// of below it. It applies to the next widget only; calling it repeatedly has
// no further effect.
func (ctx *Context) SameLine() {
	ctx.mustBegin()
	ctx.caret.same = true
}

// CursorPos returns where the next widget will be placed before its own
// caret advance.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.caret.pos
}

// beginWidget advances the caret and returns the widget's top-left position.
func (ctx *Context) beginWidget() Vec2 {
	ctx.mustBegin()
	ctx.moveCaret()
	return ctx.caret.pos
}

// contentWidth returns the usable width inside the window margins.
func (ctx *Context) contentWidth() float32 {
	return ctx.window.Size.X - 2*ctx.style.WindowMargin
}
