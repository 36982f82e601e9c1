// Example demonstrates a GUI window with every widget the package provides.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config example/gui.toml -v
//
// The RGB dragger drives the clear color behind the window.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/pnpgui"
	"github.com/go-theft-auto/pnpgui/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 832
	windowTitle  = "pnpgui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "TOML file with window and style settings")
	verbose := flag.Bool("v", false, "enable GUI debug logging")
	flag.Parse()

	gui.SetVerbose(*verbose)

	if err := run(*configPath); err != nil {
		slog.Error("example failed", "err", err)
		os.Exit(1)
	}
}

// demoState is everything the widgets are bound to.
type demoState struct {
	clicks    int
	enabled   bool
	quality   int
	density   float32
	samples   int
	offset    [3]float32
	exposure  float32
	clearRGB  [3]float32
	showDebug bool
}

func newDemoState() *demoState {
	return &demoState{
		enabled:  true,
		density:  5,
		samples:  4,
		exposure: 1,
		clearRGB: [3]float32{0.12, 0.12, 0.14},
	}
}

func run(configPath string) error {
	cfg := gui.DefaultConfig()
	cfg.Window.Title = "Settings"
	if configPath != "" {
		var err error
		if cfg, err = gui.LoadConfigFile(configPath); err != nil {
			return err
		}
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := gui.BuiltinAtlas()
	renderer, err := opengl.NewRenderer(atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	ui := gui.New(renderer, append(cfg.Options(), gui.WithAtlas(atlas))...)
	input := opengl.NewGLFWInputAdapter(window, ui.VirtualSize())

	state := newDemoState()

	for !window.ShouldClose() {
		glfw.PollEvents()
		in := input.Update()
		canvas := input.Canvas()

		gl.Viewport(0, 0, int32(canvas.X), int32(canvas.Y))
		gl.ClearColor(state.clearRGB[0], state.clearRGB[1], state.clearRGB[2], 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ctx := ui.Begin(in, canvas, ui.Window().Title)
		ctx.Draw(state)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		ui.Window().Constrain(ui.VirtualSize())

		window.SwapBuffers()
	}

	return nil
}

// Render lays out the demo window.
func (s *demoState) Render(ctx *gui.Context) {
	if ctx.Button(fmt.Sprintf("Clicked %d", s.clicks)) {
		s.clicks++
	}
	ctx.SameLine()
	if ctx.Button("Reset") {
		*s = *newDemoState()
	}

	ctx.Checkbox("Enabled", &s.enabled)
	ctx.SameLine()
	ctx.Checkbox("Debug", &s.showDebug)

	ctx.RadioGroupHorizontal("Quality", &s.quality, []string{"Low", "Medium", "High"})

	ctx.Separator()

	ctx.SliderFloat("Density", &s.density, 3, 19)
	ctx.SliderInt("Samples", &s.samples, 2, 13)

	ctx.DragFloat3("Offset", &s.offset, gui.DragConfig{SubLabels: []string{"X", "Y", "Z"}})
	ctx.DragFloat("Exposure", &s.exposure, gui.DragConfig{
		Ranges: []gui.Range{{Min: 0, Max: 4}},
		Gain:   0.02,
	})
	ctx.DragRGB("Clear color", &s.clearRGB)

	ctx.Separator()
	ctx.TextLine(fmt.Sprintf("Quality %d, density %.1f", s.quality, s.density))
	if s.showDebug {
		ctx.TextLine(fmt.Sprintf("Frame %d, active id %d", ctx.FrameCount, ctx.ActiveID()))
		ctx.TextLine(fmt.Sprintf("Pointer focus: %t", ctx.HasPointerFocus()))
	}
}
