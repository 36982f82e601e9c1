package gui

import "github.com/go-gl/mathgl/mgl32"

// DefaultVirtualSize is the fixed pixel space widgets are laid out in.
// It is letterboxed into whatever canvas the host renders to.
var DefaultVirtualSize = Vec2{X: 2000, Y: 1300}

// VirtualToScreen returns the uniform scale and offset that fit the virtual
// layout space into the canvas, centered along the axis with spare room.
// The scale is 0 when either size is empty.
func VirtualToScreen(canvas, virtual Vec2) (scale float32, offset Vec2) {
	if canvas.X <= 0 || canvas.Y <= 0 || virtual.X <= 0 || virtual.Y <= 0 {
		return 0, Vec2{}
	}
	sx := canvas.X / virtual.X
	sy := canvas.Y / virtual.Y
	if sx < sy {
		return sx, Vec2{Y: (canvas.Y - virtual.Y*sx) / 2}
	}
	return sy, Vec2{X: (canvas.X - virtual.X*sy) / 2}
}

// ScreenToVirtual maps a canvas pixel position (e.g. the OS cursor) into
// layout space, the inverse of VirtualToScreen.
func ScreenToVirtual(canvas, virtual, p Vec2) Vec2 {
	scale, offset := VirtualToScreen(canvas, virtual)
	if scale == 0 {
		return p
	}
	return p.Sub(offset).Mul(1 / scale)
}

// Projection returns the column-major 4x4 matrix that takes layout-space
// positions to clip space: an orthographic projection of the canvas
// (origin top-left, Y down) combined with the virtual-to-screen fit.
// An empty canvas, e.g. a minimized window, yields the identity.
func Projection(canvas, virtual Vec2) [16]float32 {
	if canvas.X <= 0 || canvas.Y <= 0 || virtual.X <= 0 || virtual.Y <= 0 {
		return [16]float32(mgl32.Ident4())
	}
	scale, offset := VirtualToScreen(canvas, virtual)

	m := mgl32.Ortho2D(0, canvas.X, canvas.Y, 0).
		Mul4(mgl32.Translate3D(offset.X, offset.Y, 0)).
		Mul4(mgl32.Scale3D(scale, scale, 1))
	return [16]float32(m)
}
