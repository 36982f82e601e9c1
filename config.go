package gui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Color is a packed 0xAABBGGRR color written in config files as
// "#RRGGBB" or "#RRGGBBAA".
type Color uint32

// UnmarshalText parses a hex color.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", text)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", text, err)
	}
	*c = Color(RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)))
	return nil
}

// MarshalText formats the color as "#RRGGBBAA".
func (c Color) MarshalText() ([]byte, error) {
	r, g, b, a := UnpackRGBA(uint32(c))
	return fmt.Appendf(nil, "#%02x%02x%02x%02x", r, g, b, a), nil
}

// WindowConfig describes the GUI window.
type WindowConfig struct {
	Title    string     `toml:"title"`
	Position [2]float32 `toml:"position"`
	Size     [2]float32 `toml:"size"`
}

// StyleConfig holds style overrides. Unset fields keep the current style.
type StyleConfig struct {
	WindowColor    *Color `toml:"window_color"`
	TitleBarColor  *Color `toml:"title_bar_color"`
	TextColor      *Color `toml:"text_color"`
	ButtonColor    *Color `toml:"button_color"`
	SliderColor    *Color `toml:"slider_color"`
	DragColor      *Color `toml:"drag_color"`
	SeparatorColor *Color `toml:"separator_color"`

	WindowMargin   *float32 `toml:"window_margin"`
	WidgetSpacing  *float32 `toml:"widget_spacing"`
	SliderWidth    *float32 `toml:"slider_width"`
	DragWidth      *float32 `toml:"drag_width"`
	DragGain       *float32 `toml:"drag_gain"`
	CircleSegments *int     `toml:"circle_segments"`
}

// Config is the TOML-loadable GUI setup. Sizes and positions are floats.
// Verbose turns debug logging on: through Options a false value leaves the
// current level alone, Apply sets it either way.
//
//	virtual_size = [2000.0, 1300.0]
//	verbose = false
//
//	[window]
//	title = "Settings"
//	position = [40.0, 40.0]
//	size = [420.0, 600.0]
//
//	[style]
//	button_color = "#464a5aff"
//	drag_gain = 0.02
type Config struct {
	VirtualSize [2]float32   `toml:"virtual_size"`
	Verbose     bool         `toml:"verbose"`
	Window      WindowConfig `toml:"window"`
	Style       StyleConfig  `toml:"style"`
}

// DefaultConfig returns the configuration New uses when none is given.
func DefaultConfig() Config {
	return Config{
		VirtualSize: [2]float32{DefaultVirtualSize.X, DefaultVirtualSize.Y},
		Window: WindowConfig{
			Position: [2]float32{20, 20},
			Size:     [2]float32{420, 600},
		},
	}
}

// LoadConfig decodes a TOML document over DefaultConfig.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("gui: decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads a TOML config from path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("gui: open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) validate() error {
	if c.VirtualSize[0] <= 0 || c.VirtualSize[1] <= 0 {
		return fmt.Errorf("gui: virtual_size must be positive, got %v", c.VirtualSize)
	}
	if c.Window.Size[0] <= 0 || c.Window.Size[1] <= 0 {
		return fmt.Errorf("gui: window size must be positive, got %v", c.Window.Size)
	}
	if n := c.Style.CircleSegments; n != nil && *n < 3 {
		return fmt.Errorf("gui: circle_segments must be at least 3, got %d", *n)
	}
	return nil
}

// Options returns the GUIOptions that build a GUI from the config.
func (c Config) Options() []GUIOption {
	opts := []GUIOption{
		WithVirtualSize(Vec2{X: c.VirtualSize[0], Y: c.VirtualSize[1]}),
		WithWindow(NewWindow(c.Window.Title,
			Vec2{X: c.Window.Position[0], Y: c.Window.Position[1]},
			Vec2{X: c.Window.Size[0], Y: c.Window.Size[1]})),
		WithStyle(c.Style.apply(DefaultStyle())),
	}
	if c.Verbose {
		opts = append(opts, WithVerbose(true))
	}
	return opts
}

// Apply updates an existing GUI: window geometry, virtual size and style
// overrides. The window keeps its drag state.
func (c Config) Apply(g *GUI) {
	SetVerbose(c.Verbose)
	g.virtual = Vec2{X: c.VirtualSize[0], Y: c.VirtualSize[1]}
	g.window.Title = c.Window.Title
	g.window.Position = Vec2{X: c.Window.Position[0], Y: c.Window.Position[1]}
	g.window.Size = Vec2{X: c.Window.Size[0], Y: c.Window.Size[1]}
	g.SetStyle(c.Style.apply(g.Style()))
}

func (sc StyleConfig) apply(s Style) Style {
	setColor := func(dst *uint32, c *Color) {
		if c != nil {
			*dst = uint32(*c)
		}
	}
	setFloat := func(dst *float32, v *float32) {
		if v != nil {
			*dst = *v
		}
	}

	setColor(&s.WindowColor, sc.WindowColor)
	setColor(&s.TitleBarColor, sc.TitleBarColor)
	setColor(&s.TextColor, sc.TextColor)
	setColor(&s.ButtonColor, sc.ButtonColor)
	setColor(&s.SliderColor, sc.SliderColor)
	setColor(&s.DragColor, sc.DragColor)
	setColor(&s.SeparatorColor, sc.SeparatorColor)

	setFloat(&s.WindowMargin, sc.WindowMargin)
	setFloat(&s.WidgetSpacing, sc.WidgetSpacing)
	setFloat(&s.SliderSize.X, sc.SliderWidth)
	setFloat(&s.DragSize.X, sc.DragWidth)
	setFloat(&s.DragGain, sc.DragGain)
	if sc.CircleSegments != nil {
		s.CircleSegments = *sc.CircleSegments
	}
	return s
}
