package gui

// Component is a reusable group of widgets drawn into the current window.
// It allows users to extend the library with custom widgets without
// modifying the core package.
//
// Usage (custom component):
//
//	type Transform struct {
//	    Pos, Rot [3]float32
//	}
//
//	func (c *Transform) Render(ctx *gui.Context) {
//	    ctx.DragFloat3("Position", &c.Pos, gui.DragConfig{})
//	    ctx.DragFloat3("Rotation", &c.Rot, gui.DragConfig{})
//	}
//
//	ctx.Draw(&transform)
type Component interface {
	// Render draws the component using the provided context.
	Render(ctx *Context)
}

// ComponentFunc adapts a plain function to Component.
type ComponentFunc func(ctx *Context)

// Render calls f(ctx).
func (f ComponentFunc) Render(ctx *Context) { f(ctx) }

// Draw renders components in order. Each is scoped by its position in the
// call so two instances of the same component do not share widget IDs.
func (ctx *Context) Draw(components ...Component) {
	ctx.mustBegin()
	for i, c := range components {
		ctx.PushIDInt(i)
		c.Render(ctx)
		ctx.PopID()
	}
}
