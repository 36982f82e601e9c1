/*
Package gui provides an immediate-mode GUI engine with a dedicated Context
type.

# Overview

The UI is rebuilt every frame. Widgets hold no retained state: the host
owns every value a widget edits and passes a pointer to it on each call.
A frame lays out one movable window top to bottom, resolves mouse
interaction and emits a single geometry batch (vertices, colors, texture
coordinates and triangle indices) for a Renderer to draw.

# Quick Start

	// Setup
	atlas := gui.BuiltinAtlas()
	renderer, _ := opengl.NewRenderer(atlas)
	ui := gui.New(renderer, gui.WithAtlas(atlas))
	input := opengl.NewGLFWInputAdapter(window, ui.VirtualSize())

	// Main loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    in := input.Update()

	    ctx := ui.Begin(in, input.Canvas(), "Settings")
	    if ctx.Button("Click Me") {
	        // Button was clicked
	    }
	    ctx.SliderFloat("Density", &density, 0, 10)
	    ui.End()

	    window.SwapBuffers()
	}

# Frames

Begin takes a FrameInput snapshot: the left button state and pointer
position for this frame and the previous one. InputTracker builds it from
current state alone. The snapshot is read-only for the whole frame.

End hands the batch to the Renderer together with a projection matrix.
Layout happens in a fixed virtual resolution (DefaultVirtualSize) that is
letterboxed into the canvas, so pointer positions must be mapped with
ScreenToVirtual before they reach Begin.

# Layout

Widgets are stacked downward from the window's interior top-left corner,
separated by Style.WidgetSpacing. SameLine places the next widget to the
right of the previous one. The vertical advance after a line is the
tallest widget on it.

# Interaction

At most one widget holds pointer capture (ActiveID). A widget takes it on
the frame the button goes down inside its hitbox, if no other widget has
it. While it is held, sliders follow the pointer's x position and draggers
move by Style.DragGain per pixel of horizontal motion, even with the
pointer outside the widget. Capture is released at End on any frame the
button is up.

Buttons report a click on the release frame of a press that started on
them, provided the pointer is still over them. Checkboxes and radio
buttons act on the press.

# Identity

Widget IDs are hashes of their label under the current ID stack. Two
widgets with the same label in the same scope share an ID and therefore
share capture; wrap one of them in PushID/PopID to tell them apart.
SetVerbose(true) logs duplicates.

# Text

Text is laid out against a FontAtlas: a square coverage texture holding the
printable ASCII range of a font.Face plus a white block used by solid
geometry. BuiltinAtlas rasterizes basicfont.Face7x13. Runes outside the
atlas are drawn as '?'.

# Configuration

Style holds colors and metrics. Config loads window geometry, virtual
size and style overrides from TOML:

	cfg, err := gui.LoadConfigFile("gui.toml")
	if err != nil {
	    return err
	}
	ui := gui.New(renderer, cfg.Options()...)

# Concurrency

A GUI and its Context are not safe for concurrent use. Run frames on the
goroutine that owns the graphics context.
*/
package gui
