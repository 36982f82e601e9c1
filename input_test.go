package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdges(t *testing.T) {
	tests := []struct {
		name           string
		prev, cur      bool
		press, release bool
	}{
		{"up", false, false, false, false},
		{"press", false, true, true, false},
		{"held", true, true, false, false},
		{"release", true, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := FrameInput{MouseDownPrev: tt.prev, MouseDown: tt.cur}
			assert.Equal(t, tt.press, PressEdge(in))
			assert.Equal(t, tt.release, ReleaseEdge(in))
		})
	}
}

func TestInputTracker(t *testing.T) {
	tr := NewInputTracker()

	in := tr.Next(false, Vec2{X: 5, Y: 5})
	assert.Equal(t, Vec2{}, in.Delta(), "first frame has no motion")
	assert.False(t, PressEdge(in))

	in = tr.Next(true, Vec2{X: 8, Y: 1})
	assert.True(t, PressEdge(in))
	assert.Equal(t, Vec2{X: 3, Y: -4}, in.Delta())

	in = tr.Next(true, Vec2{X: 8, Y: 1})
	assert.False(t, PressEdge(in))
	assert.Equal(t, Vec2{}, in.Delta())

	in = tr.Next(false, Vec2{X: 8, Y: 1})
	assert.True(t, ReleaseEdge(in))

	tr.Reset()
	in = tr.Next(true, Vec2{X: 100, Y: 100})
	assert.True(t, PressEdge(in))
	assert.Equal(t, Vec2{}, in.Delta())
}

func TestHasPointerFocus(t *testing.T) {
	h := newHarness()
	value := float32(0)
	draw := func(ctx *Context) { ctx.SliderFloat("s", &value, 0, 1) }

	h.frame(false, Vec2{X: 600, Y: 500}, draw)
	assert.False(t, h.ctx.HasPointerFocus())

	h.frame(false, Vec2{X: 200, Y: 200}, draw)
	assert.True(t, h.ctx.HasPointerFocus())

	// Captured slider keeps focus after leaving the window.
	h.frame(true, Vec2{X: 30, Y: 60}, draw)
	h.frame(true, Vec2{X: 600, Y: 500}, func(ctx *Context) {
		draw(ctx)
		assert.True(t, ctx.HasPointerFocus())
	})
}
