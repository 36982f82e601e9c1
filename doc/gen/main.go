// Command gen renders each widget with sample data, captures framebuffer
// pixels, and saves PNG screenshots to doc/imgs/. It also writes the
// built-in font atlas as doc/imgs/atlas.png.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/pnpgui"
	"github.com/go-theft-auto/pnpgui/backend/opengl"
)

const (
	maxWidth  = 800
	maxHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("screenshot generation failed", "err", err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	draw   func(ctx *gui.Context) // widget drawing function
	input  []gui.FrameInput       // per-frame input; the last entry repeats
	frames int                    // frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(maxWidth, maxHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := gui.BuiltinAtlas()
	renderer, err := opengl.NewRenderer(atlas)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	if err := writePNG(filepath.Join(outDir, "atlas.png"), atlas.Image()); err != nil {
		return fmt.Errorf("atlas: %w", err)
	}
	fmt.Printf("  atlas.png (%dx%d)\n", atlas.Size, atlas.Size)

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.png (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	if s.width > maxWidth || s.height > maxHeight {
		return fmt.Errorf("size %dx%d exceeds %dx%d", s.width, s.height, maxWidth, maxHeight)
	}

	// Fresh GUI per screenshot to avoid state leaking between captures.
	// Layout space equals the viewport so widgets render 1:1.
	canvas := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
	win := gui.NewWindow(s.name, gui.Vec2{X: 0, Y: 0}, canvas)
	ui := gui.New(renderer, gui.WithWindow(win), gui.WithVirtualSize(canvas))

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	for i := 0; i < frames; i++ {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		var in gui.FrameInput
		if n := len(s.input); n > 0 {
			in = s.input[min(i, n-1)]
		}
		ctx := ui.Begin(in, canvas, s.name)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	rowLen := s.width * 4
	for y := 0; y < s.height; y++ {
		src := (s.height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	return writePNG(filepath.Join(outDir, s.name+".png"), img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// hover returns a steady input with the pointer at p and the button up.
func hover(p gui.Vec2) []gui.FrameInput {
	return []gui.FrameInput{{Pointer: p, PointerPrev: p}}
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	enabled, debug := true, false
	quality := 1
	density := float32(7.5)
	samples := 6
	offset := [3]float32{0.25, -0.5, 0}
	rgb := [3]float32{0.9, 0.4, 0.1}

	return []screenshot{
		{
			name: "button", width: 240, height: 90,
			draw: func(ctx *gui.Context) {
				ctx.Button("Apply")
				ctx.SameLine()
				ctx.Button("Cancel")
			},
			input: hover(gui.Vec2{X: 30, Y: 60}),
		},
		{
			name: "checkbox", width: 260, height: 90,
			draw: func(ctx *gui.Context) {
				ctx.Checkbox("Enabled", &enabled)
				ctx.SameLine()
				ctx.Checkbox("Debug", &debug)
			},
		},
		{
			name: "radio", width: 320, height: 90,
			draw: func(ctx *gui.Context) {
				ctx.RadioButton("Low", &quality, 0)
				ctx.SameLine()
				ctx.RadioButton("Medium", &quality, 1)
				ctx.SameLine()
				ctx.RadioButton("High", &quality, 2)
			},
		},
		{
			name: "slider", width: 340, height: 120,
			draw: func(ctx *gui.Context) {
				ctx.SliderFloat("Density", &density, 3, 19)
				ctx.SliderInt("Samples", &samples, 2, 13)
			},
		},
		{
			name: "drag", width: 340, height: 120,
			draw: func(ctx *gui.Context) {
				ctx.DragFloat3("Offset", &offset, gui.DragConfig{SubLabels: []string{"X", "Y", "Z"}})
				ctx.DragRGB("Tint", &rgb)
			},
		},
		{
			name: "text", width: 300, height: 110,
			draw: func(ctx *gui.Context) {
				ctx.TextLine("Immediate-mode text")
				ctx.Separator()
				ctx.TextLine(fmt.Sprintf("density = %.2f", density))
			},
		},
	}
}
