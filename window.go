package gui

// Window is the movable frame widgets are laid out in. Position is the only
// field the engine changes, by title-bar dragging; it persists across frames.
type Window struct {
	Position Vec2
	Size     Vec2
	Title    string

	id   ID
	drag DragState
}

// NewWindow creates a window at pos with a fixed size.
func NewWindow(title string, pos, size Vec2) *Window {
	return &Window{
		Position: pos,
		Size:     size,
		Title:    title,
		id:       hashLabel(0, "\x00window"),
	}
}

// ID returns the capture id the window uses while being dragged.
func (w *Window) ID() ID {
	return w.id
}

// TitleBarRect returns the draggable title bar area at the top of the window.
func (w *Window) TitleBarRect(s Style) Rect {
	return Rect{X: w.Position.X, Y: w.Position.Y, W: w.Size.X, H: s.TitleBarHeight}
}

// Rect returns the full window bounds, title bar included.
func (w *Window) Rect() Rect {
	return Rect{X: w.Position.X, Y: w.Position.Y, W: w.Size.X, H: w.Size.Y}
}

// contentOrigin returns the interior top-left where the first widget goes.
func (w *Window) contentOrigin(s Style) Vec2 {
	return w.Position.Add(Vec2{X: s.WindowMargin, Y: s.TitleBarHeight + s.WindowMargin})
}

// drawWindow handles title-bar dragging, emits the window chrome and resets
// the caret to the window interior.
func (ctx *Context) drawWindow() {
	w := ctx.window
	s := ctx.style

	w.HandleDrag(ctx)

	ctx.DrawList.AddRect(w.Position, w.Size, s.WindowColor)

	bar := w.TitleBarRect(s)
	ctx.DrawList.AddRect(bar.Pos(), bar.Size(), s.TitleBarColor)
	ctx.addTextCentered(bar.Pos(), bar.Size(), w.Title, s.TitleTextColor)

	ctx.caret.reset(w.contentOrigin(s))
}
