package gui

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// harness drives a Context through whole frames with a window whose
// interior starts at (20, 50): 1 + 19 margin, 1 + 30 title bar + 19 margin.
type harness struct {
	ctx *Context
	win *Window
	in  *InputTracker
}

func newHarness() *harness {
	return &harness{
		ctx: NewContext(BuiltinAtlas(), DefaultStyle()),
		win: NewWindow("test", Vec2{X: 1, Y: 1}, Vec2{X: 400, Y: 400}),
		in:  NewInputTracker(),
	}
}

// frame runs one full frame with the given button state and pointer.
func (h *harness) frame(down bool, p Vec2, draw func(ctx *Context)) *DrawList {
	return h.frameInput(h.in.Next(down, p), draw)
}

func (h *harness) frameInput(in FrameInput, draw func(ctx *Context)) *DrawList {
	h.ctx.BeginFrame(in, Vec2{X: 800, Y: 600}, h.win)
	draw(h.ctx)
	return h.ctx.EndFrame()
}

// click runs a press frame followed by a release frame at p.
func (h *harness) click(p Vec2, draw func(ctx *Context)) {
	h.frame(true, p, draw)
	h.frame(false, p, draw)
}

func TestCheckboxTogglesOnPress(t *testing.T) {
	h := newHarness()
	value := false
	draw := func(ctx *Context) { ctx.Checkbox("enabled", &value) }
	inside := Vec2{X: 30, Y: 60}

	h.frame(false, inside, draw)
	assert.False(t, value, "hover alone must not toggle")

	h.frame(true, inside, draw)
	assert.True(t, value)

	h.frame(true, inside, draw)
	assert.True(t, value, "holding the button must not toggle again")

	h.frame(false, inside, draw)
	h.frame(true, inside, draw)
	assert.False(t, value)
}

func TestCheckboxPressOutsideBox(t *testing.T) {
	h := newHarness()
	value := false
	draw := func(ctx *Context) { ctx.Checkbox("enabled", &value) }

	h.click(Vec2{X: 30, Y: 90}, draw)
	assert.False(t, value)
}

func TestSliderFollowsPointerWhileCaptured(t *testing.T) {
	h := newHarness()
	value := float32(5)
	draw := func(ctx *Context) { ctx.SliderFloat("density", &value, 0, 10) }

	h.frame(true, Vec2{X: 120, Y: 60}, draw)
	assert.Equal(t, float32(5), value)

	h.frame(true, Vec2{X: 20, Y: 60}, draw)
	assert.Equal(t, float32(0), value)

	h.frame(true, Vec2{X: 300, Y: 60}, draw)
	assert.Equal(t, float32(10), value, "captured slider clamps outside its box")

	h.frame(false, Vec2{X: 300, Y: 60}, draw)
	h.frame(false, Vec2{X: 120, Y: 60}, draw)
	assert.Equal(t, float32(10), value, "released slider ignores the pointer")
}

func TestSliderIgnoresHoverWithoutPress(t *testing.T) {
	h := newHarness()
	value := float32(2)
	draw := func(ctx *Context) { ctx.SliderFloat("density", &value, 0, 10) }

	h.frame(false, Vec2{X: 200, Y: 60}, draw)
	assert.Equal(t, float32(2), value)

	// Press outside, then drag across the box.
	h.frame(true, Vec2{X: 250, Y: 60}, draw)
	h.frame(true, Vec2{X: 120, Y: 60}, draw)
	assert.Equal(t, float32(2), value)
}

func TestSliderIntRounds(t *testing.T) {
	h := newHarness()
	value := 0
	draw := func(ctx *Context) { ctx.SliderInt("samples", &value, 0, 4) }

	// 0.6 of the way across maps to 2.4.
	h.frame(true, Vec2{X: 140, Y: 60}, draw)
	assert.Equal(t, 2, value)

	// 0.9 maps to 3.6.
	h.frame(true, Vec2{X: 200, Y: 60}, draw)
	assert.Equal(t, 4, value)
}

func TestSliderIntLargeRanges(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"past float32 precision", 0, 16777217},
		{"max int", 0, math.MaxInt},
		{"full int range", math.MinInt, math.MaxInt},
		{"small", 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			value := tt.min
			draw := func(ctx *Context) { ctx.SliderInt("big", &value, tt.min, tt.max) }

			// Capture mid-box, then drag past the right edge.
			h.frame(true, Vec2{X: 120, Y: 60}, draw)
			assert.GreaterOrEqual(t, value, tt.min)
			assert.LessOrEqual(t, value, tt.max)

			h.frame(true, Vec2{X: 300, Y: 60}, draw)
			assert.Equal(t, tt.max, value)

			// And past the left edge.
			h.frame(true, Vec2{X: -50, Y: 60}, draw)
			assert.Equal(t, tt.min, value)
		})
	}
}

func TestSliderIntValueMidpoints(t *testing.T) {
	assert.Equal(t, 8388609, sliderIntValue(0.5, 0, 16777217))
	assert.Equal(t, 0, sliderIntValue(0.5, -10, 10))
	assert.Equal(t, -10, sliderIntValue(0, -10, 10))
	assert.Equal(t, 10, sliderIntValue(1, -10, 10))
	assert.Equal(t, 5, sliderIntValue(0.7, 5, 5))
}

func TestSliderStaysInRange(t *testing.T) {
	h := newHarness()
	value := float32(50)
	draw := func(ctx *Context) { ctx.SliderFloat("range", &value, -3, 7) }

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		p := Vec2{X: rng.Float32()*600 - 100, Y: rng.Float32()*200 - 50}
		h.frame(rng.IntN(3) > 0, p, draw)
		require.GreaterOrEqual(t, value, float32(-3), "frame %d", i)
		require.LessOrEqual(t, value, float32(7), "frame %d", i)
	}
}

func TestRadioGroupSelectsOne(t *testing.T) {
	h := newHarness()
	selected := 0
	draw := func(ctx *Context) {
		ctx.RadioButton("low", &selected, 0)
		ctx.RadioButton("medium", &selected, 1)
		ctx.RadioButton("high", &selected, 2)
	}

	// Rows are 20 tall with 11 spacing: centers at y 60, 91, 122.
	h.click(Vec2{X: 30, Y: 91}, draw)
	assert.Equal(t, 1, selected)

	h.click(Vec2{X: 30, Y: 122}, draw)
	assert.Equal(t, 2, selected)

	// The box corner is outside the inscribed circle.
	h.click(Vec2{X: 20.5, Y: 50.5}, draw)
	assert.Equal(t, 2, selected)
}

func TestButtonClickOnRelease(t *testing.T) {
	h := newHarness()
	var results []bool
	draw := func(ctx *Context) { results = append(results, ctx.Button("OK")) }
	inside := Vec2{X: 25, Y: 55}

	h.frame(false, inside, draw) // hover
	h.frame(true, inside, draw)  // press
	h.frame(true, inside, draw)  // hold
	h.frame(false, inside, draw) // release
	h.frame(false, inside, draw) // hover

	assert.Equal(t, []bool{false, false, false, true, false}, results)
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	h := newHarness()
	clicked := 0
	draw := func(ctx *Context) {
		if ctx.Button("OK") {
			clicked++
		}
	}

	h.frame(true, Vec2{X: 25, Y: 55}, draw)
	h.frame(false, Vec2{X: 300, Y: 300}, draw)
	assert.Zero(t, clicked)

	// Press outside, release inside.
	h.frame(true, Vec2{X: 300, Y: 300}, draw)
	h.frame(false, Vec2{X: 25, Y: 55}, draw)
	assert.Zero(t, clicked)
}

func TestButtonClicksOncePerCycle(t *testing.T) {
	h := newHarness()
	clicked := 0
	draw := func(ctx *Context) {
		if ctx.Button("OK") {
			clicked++
		}
	}

	for i := 0; i < 5; i++ {
		h.click(Vec2{X: 25, Y: 55}, draw)
		h.frame(false, Vec2{X: 25, Y: 55}, draw)
	}
	assert.Equal(t, 5, clicked)
}

func TestCaptureIsExclusive(t *testing.T) {
	h := newHarness()
	value := float32(0)
	clicked := false
	draw := func(ctx *Context) {
		ctx.SliderFloat("slider", &value, 0, 10)
		if ctx.Button("OK") {
			clicked = true
		}
	}

	// Slider row is 20 tall, so the button starts at y 81.
	h.frame(true, Vec2{X: 120, Y: 60}, draw)
	assert.Equal(t, hashLabel(0, "slider"), h.ctx.ActiveID())

	// Drag over the button and release there.
	h.frame(true, Vec2{X: 25, Y: 86}, draw)
	assert.Equal(t, hashLabel(0, "slider"), h.ctx.ActiveID())
	h.frame(false, Vec2{X: 25, Y: 86}, draw)

	assert.False(t, clicked)
	assert.Zero(t, h.ctx.ActiveID(), "capture is released on the release frame")
}

func TestCaptureReleasedWhenWidgetNotDrawn(t *testing.T) {
	h := newHarness()
	value := float32(0)
	show := true
	draw := func(ctx *Context) {
		if show {
			ctx.SliderFloat("slider", &value, 0, 10)
		}
	}

	h.frame(true, Vec2{X: 120, Y: 60}, draw)
	require.NotZero(t, h.ctx.ActiveID())

	show = false
	h.frame(true, Vec2{X: 120, Y: 60}, draw)
	assert.NotZero(t, h.ctx.ActiveID(), "token persists while the button is down")

	h.frame(false, Vec2{X: 120, Y: 60}, draw)
	assert.Zero(t, h.ctx.ActiveID())
}

func TestDragFloatUsesPointerDelta(t *testing.T) {
	h := newHarness()
	value := float32(0)
	draw := func(ctx *Context) { ctx.DragFloat("x", &value, DragConfig{}) }

	h.frame(true, Vec2{X: 30, Y: 60}, draw)
	assert.Equal(t, float32(0), value, "no motion on the capture frame")

	h.frame(true, Vec2{X: 80, Y: 60}, draw)
	assert.InDelta(t, 0.5, value, 1e-5)

	// Far outside the box, still captured.
	h.frame(true, Vec2{X: 60, Y: 300}, draw)
	assert.InDelta(t, 0.3, value, 1e-5)

	h.frame(true, Vec2{X: 360, Y: 300}, draw)
	assert.Equal(t, float32(1), value, "clamped to the default range")

	h.frame(false, Vec2{X: 360, Y: 300}, draw)
	h.frame(false, Vec2{X: 0, Y: 300}, draw)
	assert.Equal(t, float32(1), value, "uncaptured motion is ignored")
}

func TestDragFloatMatchesFormula(t *testing.T) {
	h := newHarness()
	cfg := DragConfig{Ranges: []Range{{Min: -2, Max: 3}}, Gain: 0.05}
	value := float32(0)
	draw := func(ctx *Context) { ctx.DragFloat("x", &value, cfg) }

	rng := rand.New(rand.NewPCG(3, 4))
	h.frame(true, Vec2{X: 30, Y: 60}, draw)
	p := Vec2{X: 30, Y: 60}
	for i := 0; i < 200; i++ {
		next := Vec2{X: p.X + rng.Float32()*40 - 20, Y: p.Y}
		prior := value
		h.frame(true, next, draw)
		want := clampf(prior+cfg.Gain*(next.X-p.X), -2, 3)
		require.InDelta(t, want, value, 1e-5, "frame %d", i)
		p = next
	}
}

func TestDragFloatNSubDraggersIndependent(t *testing.T) {
	h := newHarness()
	v := [3]float32{}
	draw := func(ctx *Context) { ctx.DragFloat3("pos", &v, DragConfig{}) }

	// Sub-draggers are (200 - 2*4) / 3 = 64 wide: x 20..84, 88..152, 156..220.
	h.frame(true, Vec2{X: 100, Y: 60}, draw)
	h.frame(true, Vec2{X: 130, Y: 60}, draw)
	h.frame(false, Vec2{X: 130, Y: 60}, draw)

	assert.Equal(t, float32(0), v[0])
	assert.InDelta(t, 0.3, v[1], 1e-5)
	assert.Equal(t, float32(0), v[2])
}

func TestDragRGBClampsToUnitRange(t *testing.T) {
	h := newHarness()
	rgb := [3]float32{0.5, 0.5, 0.5}
	draw := func(ctx *Context) { ctx.DragRGB("tint", &rgb) }

	h.frame(true, Vec2{X: 30, Y: 60}, draw)
	h.frame(true, Vec2{X: -200, Y: 60}, draw)
	assert.Equal(t, float32(0), rgb[0])
	assert.Equal(t, float32(0.5), rgb[1])
}

func TestDragConfigDefaults(t *testing.T) {
	var cfg DragConfig
	assert.Equal(t, DefaultDragRange, cfg.rangeAt(0))
	assert.Equal(t, "", cfg.subLabelAt(2))

	cfg = DragConfig{Ranges: []Range{{Min: 0, Max: 5}}, SubLabels: []string{"X"}}
	assert.Equal(t, Range{Min: 0, Max: 5}, cfg.rangeAt(0))
	assert.Equal(t, DefaultDragRange, cfg.rangeAt(1))
	assert.Equal(t, "X", cfg.subLabelAt(0))
}

func TestWidgetOutsideFramePanics(t *testing.T) {
	ctx := NewContext(BuiltinAtlas(), DefaultStyle())
	assert.Panics(t, func() { ctx.Button("OK") })
	assert.Panics(t, func() { ctx.EndFrame() })
}

func TestBeginFrameTwicePanics(t *testing.T) {
	h := newHarness()
	h.ctx.BeginFrame(FrameInput{}, Vec2{X: 800, Y: 600}, h.win)
	assert.Panics(t, func() { h.ctx.BeginFrame(FrameInput{}, Vec2{X: 800, Y: 600}, h.win) })
}

func TestTextLineAndSeparatorEmitGeometry(t *testing.T) {
	h := newHarness()
	dl := h.frame(false, Vec2{}, func(ctx *Context) {})
	baseV, baseI := dl.Len()

	dl = h.frame(false, Vec2{}, func(ctx *Context) {
		ctx.TextLine("ab")
		ctx.Separator()
	})
	v, i := dl.Len()

	// Two glyph quads and one separator quad.
	assert.Equal(t, baseV+12, v)
	assert.Equal(t, baseI+18, i)
}

func TestRadioGroupScopesItems(t *testing.T) {
	h := newHarness()
	a, b := 0, 0
	draw := func(ctx *Context) {
		ctx.RadioGroup("A", &a, []string{"On", "Off"})
		ctx.RadioGroup("B", &b, []string{"On", "Off"})
	}

	assert.NotEqual(t,
		hashLabel(hashLabel(0, "A"), "Off"),
		hashLabel(hashLabel(0, "B"), "Off"))

	// Title A at 50, A/On at 74, A/Off at 105, title B at 136,
	// B/On at 160, B/Off at 191.
	h.click(Vec2{X: 30, Y: 115}, draw)
	assert.Equal(t, 1, a)
	assert.Equal(t, 0, b)

	h.click(Vec2{X: 30, Y: 201}, draw)
	assert.Equal(t, 1, b)
}

func TestRadioGroupHorizontalOneRow(t *testing.T) {
	h := newHarness()
	sel := 0
	var ys []float32
	h.frame(false, Vec2{}, func(ctx *Context) {
		ctx.RadioGroupHorizontal("Quality", &sel, []string{"Low", "High"})
		ys = append(ys, ctx.beginWidget().Y)
	})
	// Title line (13) and one row of radios (20).
	assert.Equal(t, []float32{50 + 13 + 11 + 20 + 11}, ys)
}

type counter struct {
	n     int
	value bool
}

func (c *counter) Render(ctx *Context) {
	c.n++
	ctx.Checkbox("toggle", &c.value)
}

func TestDrawComponents(t *testing.T) {
	h := newHarness()
	first, second := &counter{}, &counter{}
	draw := func(ctx *Context) { ctx.Draw(first, second) }

	h.frame(false, Vec2{}, draw)
	assert.Equal(t, 1, first.n)
	assert.Equal(t, 1, second.n)

	// Same label in both components; only the second one is pressed.
	h.click(Vec2{X: 30, Y: 91}, draw)
	assert.False(t, first.value)
	assert.True(t, second.value)
}

func TestComponentFunc(t *testing.T) {
	h := newHarness()
	called := false
	h.frame(false, Vec2{}, func(ctx *Context) {
		ctx.Draw(ComponentFunc(func(*Context) { called = true }))
	})
	assert.True(t, called)
}
