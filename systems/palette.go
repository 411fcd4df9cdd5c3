package systems

import (
	"image/color"
	"math"

	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/sim"
)

// BackgroundColor drifts from near white toward red as alarm rises.
func BackgroundColor(alarm float64) color.NRGBA {
	return shift(cfg.Palette.Background, cfg.Palette.BackgroundShift, alarm)
}

// StripeColor is the warm half of a warning stripe pair.
func StripeColor(alarm float64) color.NRGBA {
	return shift(cfg.Palette.Stripe, cfg.Palette.StripeShift, alarm)
}

// GlowColor is the line drawn along the top of the floor.
func GlowColor(alarm float64) color.NRGBA {
	return shift(cfg.Palette.Glow, cfg.Palette.GlowShift, alarm)
}

// BlobColor blends the blob fill from calm to panicked.
func BlobColor(panicLevel float64) color.NRGBA {
	from, to := cfg.Palette.BlobCalm, cfg.Palette.BlobPanic
	return color.NRGBA{
		R: channel(sim.Lerp(float64(from.R), float64(to.R), panicLevel)),
		G: channel(sim.Lerp(float64(from.G), float64(to.G), panicLevel)),
		B: channel(sim.Lerp(float64(from.B), float64(to.B), panicLevel)),
		A: from.A,
	}
}

func shift(base color.NRGBA, delta [3]float64, alarm float64) color.NRGBA {
	return color.NRGBA{
		R: channel(float64(base.R) + delta[0]*alarm),
		G: channel(float64(base.G) + delta[1]*alarm),
		B: channel(float64(base.B) + delta[2]*alarm),
		A: base.A,
	}
}

// channel rounds v to the nearest 8-bit value.
func channel(v float64) uint8 {
	return uint8(math.Round(sim.Clamp(v, 0, 255)))
}
