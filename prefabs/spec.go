package prefabs

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/milk9111/shipscroller/motion"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	ShipSpecFile       = "ship.yaml"
	BackgroundSpecFile = "background.yaml"
	SessionSpecFile    = "session.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type SheetSpec struct {
	Image  string `yaml:"image"`
	FrameW int    `yaml:"frame_w"`
	FrameH int    `yaml:"frame_h"`
}

type ExhaustSpec struct {
	SheetSpec     `yaml:",inline"`
	OffsetX       float64 `yaml:"offset_x"`
	OffsetY       float64 `yaml:"offset_y"`
	MirrorReverse bool    `yaml:"mirror_reverse"`
}

type MotionSpec struct {
	Ceiling     int   `yaml:"ceiling"`
	Speed       int   `yaml:"speed"`
	Margin      *int  `yaml:"margin"`
	ThrustBands []int `yaml:"thrust_bands"`
}

type SpawnSpec struct {
	// FractionX/Y place the sprite's centre as a fraction of the viewport.
	FractionX float64 `yaml:"fraction_x"`
	FractionY float64 `yaml:"fraction_y"`
}

type ShipSpec struct {
	Name        string      `yaml:"name"`
	Sprite      SheetSpec   `yaml:"sprite"`
	Exhaust     ExhaustSpec `yaml:"exhaust"`
	Motion      MotionSpec  `yaml:"motion"`
	Spawn       SpawnSpec   `yaml:"spawn"`
	RenderLayer int         `yaml:"render_layer"`
}

func LoadShipSpec() (*ShipSpec, error) {
	spec, err := LoadSpec[ShipSpec](ShipSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.Sprite.FrameW <= 0 || spec.Sprite.FrameH <= 0 {
		return nil, fmt.Errorf("prefabs: %s: sprite frame must be positive, got %dx%d", ShipSpecFile, spec.Sprite.FrameW, spec.Sprite.FrameH)
	}
	return &spec, nil
}

// Tuning converts the motion section into state machine tuning for a viewport.
func (s *ShipSpec) Tuning(viewportW, viewportH int) motion.Tuning {
	t := motion.DefaultTuning(viewportW, viewportH, s.Sprite.FrameW, s.Sprite.FrameH)
	t.Ceiling = s.Motion.Ceiling
	t.Speed = s.Motion.Speed
	if s.Motion.Margin != nil {
		t.Margin = *s.Motion.Margin
	}
	if len(s.Motion.ThrustBands) > 0 {
		t.ThrustBands = append([]int(nil), s.Motion.ThrustBands...)
	}
	return t.Normalized()
}

// SpawnPosition returns the top-left position that centres the sprite on the spawn point.
func (s *ShipSpec) SpawnPosition(viewportW, viewportH int) (int, int) {
	fx, fy := s.Spawn.FractionX, s.Spawn.FractionY
	if fx <= 0 {
		fx = 0.25
	}
	if fy <= 0 {
		fy = 0.5
	}
	cx := int(float64(viewportW) * fx)
	cy := int(float64(viewportH) * fy)
	return cx - s.Sprite.FrameW/2, cy - s.Sprite.FrameH/2
}

type BackgroundSpec struct {
	Name        string  `yaml:"name"`
	Image       string  `yaml:"image"`
	TileWidth   int     `yaml:"tile_width"`
	TileCount   int     `yaml:"tile_count"`
	Speed       int     `yaml:"speed"`
	Y           float64 `yaml:"y"`
	RenderLayer int     `yaml:"render_layer"`
}

func LoadBackgroundSpec() (*BackgroundSpec, error) {
	spec, err := LoadSpec[BackgroundSpec](BackgroundSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.TileWidth <= 0 {
		return nil, fmt.Errorf("prefabs: %s: tile_width must be positive, got %d", BackgroundSpecFile, spec.TileWidth)
	}
	if spec.Speed <= 0 {
		return nil, fmt.Errorf("prefabs: %s: speed must be positive, got %d", BackgroundSpecFile, spec.Speed)
	}
	if spec.TileCount < 0 {
		return nil, fmt.Errorf("prefabs: %s: tile_count must not be negative, got %d", BackgroundSpecFile, spec.TileCount)
	}
	return &spec, nil
}

// MinTileCount is the smallest count that leaves no seam across viewportW.
func (s *BackgroundSpec) MinTileCount(viewportW int) int {
	if s.TileWidth <= 0 {
		return 1
	}
	n := (viewportW + s.TileWidth + s.TileWidth - 1) / s.TileWidth
	if n < 1 {
		n = 1
	}
	return n
}

type ViewportSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type SessionSpec struct {
	Title       string       `yaml:"title"`
	Viewport    ViewportSpec `yaml:"viewport"`
	WindowScale int          `yaml:"window_scale"`
	TPS         int          `yaml:"tps"`
	OverrunMS   int          `yaml:"overrun_ms"`
	ClearColor  string       `yaml:"clear_color"`
	Script      string       `yaml:"script"`
}

func LoadSessionSpec() (*SessionSpec, error) {
	spec, err := LoadSpec[SessionSpec](SessionSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.Viewport.Width <= 0 || spec.Viewport.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: viewport must be positive, got %dx%d", SessionSpecFile, spec.Viewport.Width, spec.Viewport.Height)
	}
	if spec.TPS <= 0 {
		spec.TPS = 60
	}
	if spec.WindowScale <= 0 {
		spec.WindowScale = 1
	}
	return &spec, nil
}

// Color resolves ClearColor as an SVG colour name, falling back to black.
func (s *SessionSpec) Color() color.Color {
	if c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(s.ClearColor))]; ok {
		return c
	}
	return colornames.Black
}
