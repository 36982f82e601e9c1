package gui

import "fmt"

// Renderer is the interface for rendering GUI draw data.
// projection maps layout-space positions to clip space.
type Renderer interface {
	Render(dl *DrawList, projection [16]float32) error
}

// GUI manages the immediate mode UI system for one window.
type GUI struct {
	renderer Renderer
	style    Style
	atlas    *FontAtlas
	window   *Window
	virtual  Vec2
	ctx      *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithAtlas sets the font atlas text is laid out against.
// The renderer must have been created from the same atlas.
func WithAtlas(atlas *FontAtlas) GUIOption {
	return func(g *GUI) { g.atlas = atlas }
}

// WithWindow sets the window widgets are laid out in.
func WithWindow(w *Window) GUIOption {
	return func(g *GUI) { g.window = w }
}

// WithVirtualSize sets the layout resolution letterboxed into the canvas.
func WithVirtualSize(size Vec2) GUIOption {
	return func(g *GUI) { g.virtual = size }
}

// WithVerbose turns debug logging on or off. The level is package-wide,
// see SetVerbose.
func WithVerbose(v bool) GUIOption {
	return func(*GUI) { SetVerbose(v) }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		virtual:  DefaultVirtualSize,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.atlas == nil {
		g.atlas = BuiltinAtlas()
	}
	if g.window == nil {
		g.window = NewWindow("", Vec2{X: 20, Y: 20}, Vec2{X: 420, Y: 600})
	}
	g.ctx = NewContext(g.atlas, g.style)

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
// input must be in layout space; see ScreenToVirtual.
func (g *GUI) Begin(input FrameInput, canvas Vec2, title string) *Context {
	g.window.Title = title
	g.ctx.SetStyle(g.style)
	g.ctx.BeginFrame(input, canvas, g.window)
	return g.ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	dl := g.ctx.EndFrame()
	if err := g.renderer.Render(dl, Projection(g.ctx.Canvas, g.virtual)); err != nil {
		return fmt.Errorf("gui: render frame %d: %w", g.ctx.FrameCount, err)
	}
	return nil
}

// Context returns the GUI context.
// Widgets may only be called on it between Begin() and End().
func (g *GUI) Context() *Context {
	return g.ctx
}

// Window returns the window the GUI lays out in.
func (g *GUI) Window() *Window {
	return g.window
}

// Atlas returns the font atlas in use.
func (g *GUI) Atlas() *FontAtlas {
	return g.atlas
}

// VirtualSize returns the layout resolution.
func (g *GUI) VirtualSize() Vec2 {
	return g.virtual
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style, effective from the next Begin.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// ScreenToVirtual maps a canvas pixel position into layout space using the
// GUI's virtual size.
func (g *GUI) ScreenToVirtual(canvas, p Vec2) Vec2 {
	return ScreenToVirtual(canvas, g.virtual, p)
}
