package config

import (
	"image/color"

	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in registration order.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int // nominal simulation rate; sim constants are per tick at this rate
}

// LevelConfig selects the level file and the noise seed.
type LevelConfig struct {
	Path string
	Seed int64 // 0 picks a seed from the clock at startup
}

// PaletteConfig holds the vignette's colors. Alarm-driven channels are
// given as a base color plus a per-channel shift at full alarm.
type PaletteConfig struct {
	Background      color.NRGBA
	BackgroundShift [3]float64

	Platform color.NRGBA

	StripeShadow color.NRGBA
	Stripe       color.NRGBA
	StripeShift  [3]float64
	StripePeriod float64 // one shadow plus one colored stripe
	StripeHeight float64
	StripeMaxH   float64 // platforms taller than this get no stripes

	Glow       color.NRGBA
	GlowShift  [3]float64
	GlowHeight float64

	BlobCalm  color.NRGBA
	BlobPanic color.NRGBA
	Highlight color.NRGBA
	// Highlight circle offset and diameter as fractions of the blob radius
	HighlightOffset   float64
	HighlightDiameter float64
}

// HUDConfig contains HUD text configuration
type HUDConfig struct {
	Controls     ControlsText
	StatusFormat string // takes the panic level
	ControlsY    float64
	StatusY      float64
	MarginX      float64
	FontSize     float64
	TextColor    color.NRGBA
}

// ControlsText is the controls line for each kind of input device.
type ControlsText struct {
	Keyboard    string
	Xbox        string
	PlayStation string
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	Duration   float32 // seconds to ease back to 1
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled        bool // overlay visible at startup
	BoxColor       color.NRGBA
	PlatformColor  color.NRGBA
	ContactColor   color.NRGBA
	CandidateColor color.NRGBA
	TextColor      color.NRGBA
}

// Global configuration instances
var C *Config
var Blob sim.BlobTuning
var Panic sim.PanicTuning
var Shake sim.ShakeTuning
var Level LevelConfig
var Palette PaletteConfig
var HUD HUDConfig
var SquashStretch SquashStretchConfig
var Debug DebugConfig

// Shared color constants
var Black = color.NRGBA{A: 255}

// Tuning assembles the simulation constants.
func Tuning() sim.Tuning {
	return sim.Tuning{Blob: Blob, Panic: Panic, Shake: Shake}
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Panic Blob",
		TPS:    60,
	}

	// Simulation constants live with the simulation; config only exposes them.
	t := sim.DefaultTuning()
	Blob = t.Blob
	Panic = t.Panic
	Shake = t.Shake

	Level = LevelConfig{
		Path: "levels/panic.tmx",
	}

	Palette = PaletteConfig{
		Background:      color.NRGBA{R: 240, G: 240, B: 240, A: 255},
		BackgroundShift: [3]float64{-80, -170, -170},

		Platform: color.NRGBA{R: 190, G: 190, B: 190, A: 255},

		StripeShadow: color.NRGBA{R: 30, G: 30, B: 30, A: 140},
		Stripe:       color.NRGBA{R: 250, G: 200, B: 20, A: 170},
		StripeShift:  [3]float64{0, -80, 40},
		StripePeriod: 14,
		StripeHeight: 6,
		StripeMaxH:   20,

		Glow:       color.NRGBA{R: 255, G: 60, B: 60, A: 120},
		GlowShift:  [3]float64{0, 120, 120},
		GlowHeight: 2,

		BlobCalm:  color.NRGBA{R: 20, G: 120, B: 255, A: 255},
		BlobPanic: color.NRGBA{R: 240, G: 60, B: 80, A: 255},
		Highlight: color.NRGBA{R: 255, G: 255, B: 255, A: 120},

		HighlightOffset:   0.25,
		HighlightDiameter: 0.5,
	}

	HUD = HUDConfig{
		Controls: ControlsText{
			Keyboard:    "Move: A/D or ←/→   Jump: Space/W/↑",
			Xbox:        "Move: Left Stick/D-Pad   Jump: A",
			PlayStation: "Move: Left Stick/D-Pad   Jump: Cross",
		},
		StatusFormat: "Emotion: PANIC   Panic Level: %.2f",
		ControlsY:    18,
		StatusY:      38,
		MarginX:      10,
		FontSize:     14,
		TextColor:    Black,
	}

	// Squash/Stretch Config
	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.85,
		JumpScaleY: 1.2,
		LandScaleX: 1.25,
		LandScaleY: 0.8,
		Duration:   0.35,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:        false,
		BoxColor:       color.NRGBA{R: 0, G: 255, B: 0, A: 255},
		PlatformColor:  color.NRGBA{R: 0, G: 100, B: 255, A: 255},
		ContactColor:   color.NRGBA{R: 255, G: 0, B: 0, A: 255},
		CandidateColor: color.NRGBA{R: 255, G: 0, B: 255, A: 60},
		TextColor:      color.NRGBA{R: 255, G: 255, B: 0, A: 255},
	}
}
