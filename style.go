package gui

// Layout constants inherited by DefaultStyle.
const (
	DefaultWindowMargin   float32 = 19 // distance from window border to widgets
	DefaultWidgetSpacing  float32 = 11 // gap between consecutive widgets
	DefaultTitleBarHeight float32 = 30
	DefaultDragGain       float32 = 0.01 // value units per pixel of pointer motion
)

// Style defines the fixed per-widget colors and metrics.
type Style struct {
	// Window chrome
	WindowColor    uint32
	TitleBarColor  uint32
	TitleTextColor uint32
	TextColor      uint32

	// Button colors
	ButtonColor      uint32
	ButtonHoverColor uint32
	ButtonPressColor uint32

	// Checkbox and radio button
	ToggleColor      uint32 // box / circle background
	ToggleHoverColor uint32
	ToggleMarkColor  uint32 // check mark and radio dot

	// Slider colors
	SliderColor      uint32
	SliderHoverColor uint32
	SliderFillColor  uint32
	SliderGrabColor  uint32

	// Dragger colors
	DragColor      uint32
	DragHoverColor uint32

	SeparatorColor uint32

	// Sizing
	WindowMargin   float32
	WidgetSpacing  float32
	TitleBarHeight float32
	ButtonPadding  Vec2
	ToggleSize     float32 // side of the checkbox box and radio circle
	SliderSize     Vec2    // slider box
	SliderGrabW    float32
	DragSize       Vec2 // total size of a dragger row, shared by its sub-draggers
	DragGap        float32
	SeparatorH     float32
	CircleSegments int

	// Interaction
	DragGain float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		WindowColor:    RGBAf(0.3, 0.3, 0.3, 1),
		TitleBarColor:  RGBAf(0.2, 0.2, 0.4, 1),
		TitleTextColor: ColorWhite,
		TextColor:      ColorWhite,

		ButtonColor:      RGBA(70, 70, 90, 255),
		ButtonHoverColor: RGBA(90, 90, 120, 255),
		ButtonPressColor: RGBA(50, 50, 70, 255),

		ToggleColor:      RGBA(60, 60, 60, 255),
		ToggleHoverColor: RGBA(80, 80, 80, 255),
		ToggleMarkColor:  RGBA(220, 220, 220, 255),

		SliderColor:      RGBA(60, 60, 60, 255),
		SliderHoverColor: RGBA(80, 80, 80, 255),
		SliderFillColor:  RGBA(90, 90, 140, 255),
		SliderGrabColor:  RGBA(200, 200, 200, 255),

		DragColor:      RGBA(60, 60, 60, 255),
		DragHoverColor: RGBA(80, 80, 80, 255),

		SeparatorColor: RGBA(110, 110, 110, 255),

		WindowMargin:   DefaultWindowMargin,
		WidgetSpacing:  DefaultWidgetSpacing,
		TitleBarHeight: DefaultTitleBarHeight,
		ButtonPadding:  Vec2{X: 12, Y: 6},
		ToggleSize:     20,
		SliderSize:     Vec2{X: 200, Y: 20},
		SliderGrabW:    6,
		DragSize:       Vec2{X: 200, Y: 20},
		DragGap:        4,
		SeparatorH:     2,
		CircleSegments: 16,

		DragGain: DefaultDragGain,
	}
}

// widgetColor picks a widget color from its interaction state.
// hover covers both pointer hover and holding the capture token.
func widgetColor(base, hover uint32, hot bool) uint32 {
	if hot {
		return hover
	}
	return base
}

// buttonColor is widgetColor with a pressed state.
func buttonColor(s Style, hot, down bool) uint32 {
	switch {
	case hot && down:
		return s.ButtonPressColor
	case hot:
		return s.ButtonHoverColor
	default:
		return s.ButtonColor
	}
}
