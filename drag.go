package gui

// DragState tracks a title-bar drag of a window.
type DragState struct {
	Active bool
	Offset Vec2 // window position minus pointer, remembered while dragging
}

// Reset clears the drag state.
func (d *DragState) Reset() {
	*d = DragState{}
}

// IsDragging returns true while the window holds capture for a drag.
func (w *Window) IsDragging() bool {
	return w.drag.Active
}

// HandleDrag processes title-bar dragging for the frame.
// A press-edge inside the title bar takes the capture token for the window.
// While captured the window follows the pointer's motion delta; when the
// pointer is outside the title bar it is placed at pointer + the remembered
// offset instead, so a fast drag never loses the window.
// Returns true if the window is being dragged.
func (w *Window) HandleDrag(ctx *Context) bool {
	in := ctx.Input
	bar := w.TitleBarRect(ctx.style)

	hovered := ctx.isHovered(w.id, bar)
	if ctx.tryCapture(w.id, hovered) {
		w.drag.Active = true
		w.drag.Offset = w.Position.Sub(in.Pointer)
		guiLogger.Debug("window drag start", "title", w.Title, "pos", w.Position)
		return true
	}

	if !ctx.isActive(w.id) {
		if w.drag.Active {
			guiLogger.Debug("window drag end", "title", w.Title, "pos", w.Position)
			w.drag.Reset()
		}
		return false
	}

	if bar.Contains(in.Pointer) {
		w.Position = w.Position.Add(in.Delta())
		w.drag.Offset = w.Position.Sub(in.Pointer)
	} else {
		w.Position = in.Pointer.Add(w.drag.Offset)
	}
	return true
}

// minVisible is how much of a constrained window stays inside the area.
const minVisible float32 = 50

// Constrain moves the window so at least part of its title bar stays
// inside area, keeping it reachable for dragging. Hosts call it after a
// frame, e.g. with the virtual size.
func (w *Window) Constrain(area Vec2) {
	w.Position.X = clampf(w.Position.X, -w.Size.X+minVisible, area.X-minVisible)
	w.Position.Y = clampf(w.Position.Y, 0, area.Y-minVisible)
}
