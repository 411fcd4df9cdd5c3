package sim

import (
	"math"
	"math/rand/v2"

	"github.com/automoto/panicblob/noise"
)

// Emotion is the blob's panic state. Panic and Shake carry over between
// frames; Alarm is recomputed every frame.
type Emotion struct {
	Panic float64 // [0, 1]
	Shake float64 // camera shake amplitude in pixels
	Alarm float64 // panic-gated pulse, colors only
}

// Observe pulls Panic toward the normalized speed of the blob.
func (e *Emotion) Observe(vx, vy float64, t PanicTuning, dt float64) {
	speed := math.Abs(vx) + math.Abs(vy)*t.VerticalWeight
	target := Clamp(speed/t.SpeedScale, 0, 1)
	e.Panic = Lerp(e.Panic, target, smoothing(t.Smoothing, dt))
}

// Pulse recomputes Alarm for the given frame.
func (e *Emotion) Pulse(frame float64, t PanicTuning) {
	e.Alarm = (math.Sin(frame*t.AlarmRate)*0.5 + 0.5) * e.Panic
}

// Settle pulls Shake toward its panic-proportional resting amplitude.
func (e *Emotion) Settle(t ShakeTuning, dt float64) {
	e.Shake = Lerp(e.Shake, e.Panic*t.PanicGain, smoothing(t.Smoothing, dt))
}

// Jolt adds an impulse to the shake amplitude. Impulses are not clamped.
func (e *Emotion) Jolt(amount float64) {
	e.Shake += amount
}

// Absorb converts collision contacts into shake impulses, in the order the
// contacts were resolved.
func (e *Emotion) Absorb(c Contacts, t ShakeTuning) {
	for i := 0; i < c.Walls; i++ {
		e.Jolt(t.WallImpulse * e.Panic)
	}
	if c.Landed && c.Impact > t.HardLandingSpeed {
		e.Jolt(t.LandingImpulse)
	}
	if c.Ceiling {
		e.Jolt(t.CeilingImpulse * e.Panic)
	}
}

// Twitch is the involuntary horizontal intent added at high panic.
func Twitch(field noise.Field, frame, panicLevel float64, t PanicTuning) float64 {
	return (field.Noise1D(frame*t.TwitchRate) - 0.5) * panicLevel * t.TwitchGain
}

// Shudder returns the camera offset for one frame, each axis uniform in
// [-amplitude, amplitude]. The result depends only on its arguments.
func Shudder(amplitude float64, seed, tick uint64) Point {
	if amplitude == 0 {
		return Point{}
	}
	r := rand.New(rand.NewPCG(seed, tick))
	return Point{
		X: (r.Float64()*2 - 1) * amplitude,
		Y: (r.Float64()*2 - 1) * amplitude,
	}
}

// smoothing converts a per-frame smoothing factor into the factor for a
// step of dt frames.
func smoothing(k, dt float64) float64 {
	if dt == 1 {
		return k
	}
	return 1 - math.Pow(1-k, dt)
}
