package sim

import "github.com/automoto/panicblob/noise"

// Clock counts simulation frames. Frame is the fractional frame count used
// for noise and the alarm pulse; Tick counts calls to Advance and, with
// Seed, keys the per-frame camera shake.
type Clock struct {
	Frame float64
	Tick  uint64
	Seed  uint64
}

// Advance moves the clock forward by dt frames.
func (c *Clock) Advance(dt float64) {
	c.Tick++
	c.Frame += dt
}

// Input is one frame's sampled controls.
type Input struct {
	Move int  // right minus left
	Jump bool // jump key went down since the previous frame
}

// World is the complete simulation state.
type World struct {
	Level  *Level
	Noise  noise.Field
	Tuning Tuning

	Clock   Clock
	Blob    Blob
	Emotion Emotion

	// Derived each frame
	Offset   Point // camera shake translation
	Jumped   bool
	Contacts Contacts
}

// NewWorld returns a world with the blob at its start position.
func NewWorld(l *Level, field noise.Field, seed uint64, t Tuning) World {
	return World{
		Level:  l,
		Noise:  field,
		Tuning: t,
		Clock:  Clock{Seed: seed},
		Blob:   NewBlob(l, t.Blob),
	}
}

// Step advances w by dt nominal 60 Hz frames and returns the new state.
// w itself is not modified; the level and noise field are shared.
func Step(w World, in Input, dt float64) World {
	w.Clock.Advance(dt)

	w.Jumped = in.Jump && Jump(&w.Blob, &w.Emotion, w.Tuning)

	w.Emotion.Observe(w.Blob.VX, w.Blob.VY, w.Tuning.Panic, dt)
	w.Emotion.Pulse(w.Clock.Frame, w.Tuning.Panic)
	w.Emotion.Settle(w.Tuning.Shake, dt)
	w.Offset = Shudder(w.Emotion.Shake, w.Clock.Seed, w.Clock.Tick)

	twitch := Twitch(w.Noise, w.Clock.Frame, w.Emotion.Panic, w.Tuning.Panic)
	Integrate(&w.Blob, Intent(in.Move), twitch, w.Tuning.Blob, dt)

	w.Contacts = Resolve(&w.Blob, w.Level, dt)
	w.Emotion.Absorb(w.Contacts, w.Tuning.Shake)

	w.Blob.Animate(w.Emotion.Panic, w.Tuning.Blob, dt)
	return w
}

// Outline returns the blob polygon for the current frame.
func (w *World) Outline(dst []Point) []Point {
	return Outline(dst, w.Blob, w.Noise, w.Emotion.Panic, w.Clock.Frame, w.Tuning.Blob)
}
