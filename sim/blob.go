package sim

import (
	"math"

	"github.com/automoto/panicblob/noise"
)

// Blob is the player character: a circle-ish body with a square hitbox.
type Blob struct {
	X, Y   float64 // center
	VX, VY float64

	Radius float64
	Points int

	Wobble     float64
	WobbleFreq float64
	Phase      float64
	PhaseSpeed float64

	// Grounded is true only if the last vertical pass landed on a platform.
	Grounded bool
}

// NewBlob places a blob one pixel above the level's floor.
func NewBlob(l *Level, t BlobTuning) Blob {
	return Blob{
		X:          t.StartX,
		Y:          l.FloorY() - t.Radius - 1,
		Radius:     t.Radius,
		Points:     t.Points,
		Wobble:     t.Wobble,
		WobbleFreq: t.WobbleFreq,
		PhaseSpeed: t.PhaseSpeed,
	}
}

// Box is the blob's collision square, side 2*Radius, centered on it.
func (b *Blob) Box() Rect {
	return Rect{
		X: b.X - b.Radius,
		Y: b.Y - b.Radius,
		W: b.Radius * 2,
		H: b.Radius * 2,
	}
}

// Jump launches a grounded blob. It reports whether the jump happened;
// airborne requests are dropped.
func Jump(b *Blob, e *Emotion, t Tuning) bool {
	if !b.Grounded {
		return false
	}
	b.VY = t.Blob.JumpSpeed
	b.Grounded = false
	e.Jolt(t.Shake.JumpImpulse)
	return true
}

// Animate recomputes the shape parameters from panicLevel and advances the
// animation phase.
func (b *Blob) Animate(panicLevel float64, t BlobTuning, dt float64) {
	b.PhaseSpeed = t.PhaseSpeed + panicLevel*t.PhaseSpeedPanic
	b.Wobble = t.Wobble + panicLevel*t.WobblePanic
	b.WobbleFreq = t.WobbleFreq + panicLevel*t.WobbleFreqPanic

	b.Phase += b.PhaseSpeed * dt
}

// Outline appends the blob's polygon vertices to dst. Each vertex sits at
// the base radius displaced by a 3D noise sample taken around a circle
// (the third axis is the animation phase) plus a panic-scaled jitter.
func Outline(dst []Point, b Blob, field noise.Field, panicLevel, frame float64, t BlobTuning) []Point {
	for i := 0; i < b.Points; i++ {
		a := float64(i) / float64(b.Points) * 2 * math.Pi
		cos, sin := math.Cos(a), math.Sin(a)

		n := field.Noise3D(cos*b.WobbleFreq+t.WobbleOffset, sin*b.WobbleFreq+t.WobbleOffset, b.Phase)
		jitter := (field.Noise2D(float64(i)*t.JitterSpacing, frame*t.JitterTimeRate) - 0.5) * panicLevel * t.Jitter

		r := b.Radius + Lerp(-b.Wobble, b.Wobble, n) + jitter
		dst = append(dst, Point{X: b.X + cos*r, Y: b.Y + sin*r})
	}
	return dst
}
