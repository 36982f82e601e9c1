package gui

// The active widget token: at most one widget holds pointer capture at a
// time. A widget may take it only on a press-edge inside its hitbox while
// the token is free or already its own. The Context clears it at End once
// the button is up, whichever widget set it.

// canInteract reports whether the widget may start or continue a pointer
// interaction this frame.
func (ctx *Context) canInteract(id ID) bool {
	return ctx.activeID == 0 || ctx.activeID == id
}

// isHovered returns true if the pointer is over the hitbox and no other
// widget holds the token.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	return ctx.canInteract(id) && rect.Contains(ctx.Input.Pointer)
}

// isHoveredCircle is isHovered for a circular hitbox inscribed in rect.
func (ctx *Context) isHoveredCircle(id ID, rect Rect) bool {
	return ctx.canInteract(id) && PointInCircle(rect.Pos(), rect.Size(), ctx.Input.Pointer)
}

// isActive returns true if the widget holds the token.
func (ctx *Context) isActive(id ID) bool {
	return id != 0 && ctx.activeID == id
}

// tryCapture takes the token for id on a press-edge while hovered.
// Returns true if the press was claimed this frame.
func (ctx *Context) tryCapture(id ID, hovered bool) bool {
	if !hovered || !PressEdge(ctx.Input) {
		return false
	}
	if ctx.activeID != id {
		guiLogger.Debug("capture", "id", id)
	}
	ctx.activeID = id
	return true
}

// releaseCapture clears the token once the button is no longer down.
func (ctx *Context) releaseCapture() {
	if ctx.activeID != 0 && !ctx.Input.MouseDown {
		guiLogger.Debug("release", "id", ctx.activeID)
		ctx.activeID = 0
	}
}

// ActiveID returns the widget currently holding pointer capture, or 0.
func (ctx *Context) ActiveID() ID {
	return ctx.activeID
}

// HasPointerFocus returns true if the pointer is over the window or a widget
// holds pointer capture. Hosts use it to keep GUI interaction from also
// driving their own camera or scene input.
func (ctx *Context) HasPointerFocus() bool {
	if ctx.activeID != 0 {
		return true
	}
	if ctx.window == nil {
		return false
	}
	return PointInRect(ctx.window.Position, ctx.window.Size, ctx.Input.Pointer)
}
