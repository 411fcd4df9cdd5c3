package sim

import "math"

// Intent converts a raw horizontal input into {-1, 0, +1}.
func Intent(move int) float64 {
	switch {
	case move > 0:
		return 1
	case move < 0:
		return -1
	}
	return 0
}

// Integrate applies acceleration, friction, the run clamp and gravity to
// the blob's velocity. Position is advanced later by the collision sweep.
func Integrate(b *Blob, intent, twitch float64, t BlobTuning, dt float64) {
	b.VX += t.Accel * (intent + twitch) * dt

	friction := t.FrictionAir
	if b.Grounded {
		friction = t.FrictionGround
	}
	b.VX *= math.Pow(friction, dt)
	b.VX = Clamp(b.VX, -t.MaxRun, t.MaxRun)

	b.VY += t.Gravity * dt
}
