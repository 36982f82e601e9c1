package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/pnpgui"
)

// GLFWInputAdapter turns GLFW window state into per-frame gui.FrameInput.
// Only the left mouse button and the cursor are read.
type GLFWInputAdapter struct {
	window  *glfw.Window
	virtual gui.Vec2
	tracker *gui.InputTracker
}

// NewGLFWInputAdapter creates an adapter mapping the cursor into a layout
// space of the given virtual size.
func NewGLFWInputAdapter(window *glfw.Window, virtual gui.Vec2) *GLFWInputAdapter {
	return &GLFWInputAdapter{
		window:  window,
		virtual: virtual,
		tracker: gui.NewInputTracker(),
	}
}

// Canvas returns the framebuffer size in pixels.
func (a *GLFWInputAdapter) Canvas() gui.Vec2 {
	w, h := a.window.GetFramebufferSize()
	return gui.Vec2{X: float32(w), Y: float32(h)}
}

// Update samples the button and cursor for a new frame.
// Call this once per frame, after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() gui.FrameInput {
	down := a.window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press

	// Cursor is in window coordinates; the canvas is the framebuffer, which
	// differs on high-DPI displays.
	x, y := a.window.GetCursorPos()
	ww, wh := a.window.GetSize()
	canvas := a.Canvas()
	p := gui.Vec2{X: float32(x), Y: float32(y)}
	if ww > 0 && wh > 0 {
		p = gui.Vec2{X: p.X * canvas.X / float32(ww), Y: p.Y * canvas.Y / float32(wh)}
	}

	return a.tracker.Next(down, gui.ScreenToVirtual(canvas, a.virtual, p))
}

// Reset forgets the previous frame, e.g. after the window regains focus.
func (a *GLFWInputAdapter) Reset() {
	a.tracker.Reset()
}
