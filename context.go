package gui

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type passed to
// every widget call. A Context is not safe for concurrent use; a frame runs
// to completion on the caller's goroutine.
type Context struct {
	// Drawing output
	DrawList *DrawList

	// Input (read-only during frame)
	Input FrameInput

	// Screen
	Canvas Vec2 // host canvas in pixels, used only for the projection

	atlas  *FontAtlas
	style  Style
	window *Window
	caret  caret

	// Active widget token. Persists across frames until the button is released.
	activeID ID

	// IDs
	idStack []ID
	seenIDs map[ID]string // duplicate detection, verbose mode only

	inFrame    bool
	FrameCount uint64

	// Text measurement cache, valid for the current frame.
	textMeasureCache map[string]Vec2
}

// NewContext creates a context drawing with the given atlas and style.
func NewContext(atlas *FontAtlas, style Style) *Context {
	return &Context{
		DrawList:         NewDrawList(atlas),
		atlas:            atlas,
		style:            style,
		idStack:          make([]ID, 0, 8),
		seenIDs:          make(map[ID]string, 64),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style used from the next widget on.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Atlas returns the font atlas the context lays text out against.
func (ctx *Context) Atlas() *FontAtlas {
	return ctx.atlas
}

// Window returns the window being laid out, or nil outside a frame.
func (ctx *Context) Window() *Window {
	return ctx.window
}

// BeginFrame starts a frame: it stores the input snapshot, clears the
// geometry batch and draws the window chrome, leaving the caret at the
// window's interior top-left.
func (ctx *Context) BeginFrame(input FrameInput, canvas Vec2, w *Window) {
	if ctx.inFrame {
		panic("gui: BeginFrame called twice without EndFrame")
	}
	if w == nil {
		panic("gui: BeginFrame requires a window")
	}

	ctx.inFrame = true
	ctx.FrameCount++
	ctx.Input = input
	ctx.Canvas = canvas
	ctx.window = w
	ctx.idStack = ctx.idStack[:0]
	ctx.DrawList.Clear()
	clear(ctx.textMeasureCache)
	clear(ctx.seenIDs)

	ctx.drawWindow()
}

// EndFrame finishes the frame and returns the completed geometry batch.
// The token is released here if the button is up, regardless of whether
// the widget that took it was drawn this frame.
func (ctx *Context) EndFrame() *DrawList {
	if !ctx.inFrame {
		panic("gui: EndFrame called without BeginFrame")
	}
	ctx.releaseCapture()
	ctx.inFrame = false
	return ctx.DrawList
}

// InFrame returns true between BeginFrame and EndFrame.
func (ctx *Context) InFrame() bool {
	return ctx.inFrame
}

// mustBegin panics when a widget is used outside a frame, since the caret
// has no defined origin there.
func (ctx *Context) mustBegin() {
	if !ctx.inFrame {
		panic("gui: widget called outside BeginFrame/EndFrame")
	}
}
