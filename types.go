package gui

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Round returns the vector with both components rounded to whole pixels.
func (v Vec2) Round() Vec2 {
	return Vec2{X: math32.Round(v.X), Y: math32.Round(v.Y)}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.W, Y: r.H} }

// Contains returns true if the point is inside the rectangle.
// Both edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return PointInRect(r.Pos(), r.Size(), p)
}

// PointInRect reports whether p lies inside the box at origin with the given size.
// Both edges are inclusive.
func PointInRect(origin, size, p Vec2) bool {
	return p.X >= origin.X && p.X <= origin.X+size.X &&
		p.Y >= origin.Y && p.Y <= origin.Y+size.Y
}

// PointInCircle reports whether p lies inside the circle inscribed in the
// box at origin with the given size. The radius test is inclusive.
func PointInCircle(origin, size, p Vec2) bool {
	r := math32.Min(size.X, size.Y) / 2
	c := origin.Add(size.Mul(0.5))
	d := p.Sub(c)
	return d.X*d.X+d.Y*d.Y <= r*r
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255+0.5),
		uint8(clampf(g, 0, 1)*255+0.5),
		uint8(clampf(b, 0, 1)*255+0.5),
		uint8(clampf(a, 0, 1)*255+0.5),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// lerpf maps t in [0,1] onto [a,b].
func lerpf(a, b, t float32) float32 {
	return a + (b-a)*t
}
