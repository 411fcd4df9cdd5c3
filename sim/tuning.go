package sim

// BlobTuning holds the blob's movement and shape constants.
// Rates are per nominal 60 Hz frame.
type BlobTuning struct {
	StartX float64

	Radius float64
	Points int

	// Shape: base value plus a panic-scaled term
	Wobble          float64
	WobblePanic     float64
	WobbleFreq      float64
	WobbleFreqPanic float64
	PhaseSpeed      float64
	PhaseSpeedPanic float64

	// Per-vertex jitter
	Jitter         float64 // amplitude at full panic
	JitterSpacing  float64 // noise distance between neighbouring vertices
	JitterTimeRate float64 // noise distance per frame
	WobbleOffset   float64 // keeps angle-derived noise coordinates away from the origin

	// Movement
	Accel          float64
	MaxRun         float64
	Gravity        float64
	JumpSpeed      float64
	FrictionAir    float64
	FrictionGround float64
}

// PanicTuning drives the panic estimate and the involuntary twitch.
type PanicTuning struct {
	SpeedScale     float64 // speed at which panic saturates
	VerticalWeight float64 // vertical speed counts this much toward panic
	Smoothing      float64
	AlarmRate      float64 // radians per frame of the alarm pulse
	TwitchRate     float64 // noise distance per frame
	TwitchGain     float64
}

// ShakeTuning controls the screen shake amplitude and its impulses.
type ShakeTuning struct {
	PanicGain        float64 // resting amplitude at full panic
	Smoothing        float64
	WallImpulse      float64 // scaled by panic
	CeilingImpulse   float64 // scaled by panic
	LandingImpulse   float64
	HardLandingSpeed float64
	JumpImpulse      float64
}

// Tuning is the full constant set for a World.
type Tuning struct {
	Blob  BlobTuning
	Panic PanicTuning
	Shake ShakeTuning
}

// DefaultTuning returns the shipped constants.
func DefaultTuning() Tuning {
	return Tuning{
		Blob: BlobTuning{
			StartX: 80,

			Radius: 26,
			Points: 52,

			Wobble:          7,
			WobblePanic:     9,
			WobbleFreq:      1.05,
			WobbleFreqPanic: 0.9,
			PhaseSpeed:      0.012,
			PhaseSpeedPanic: 0.028,

			Jitter:         2.2,
			JitterSpacing:  0.2,
			JitterTimeRate: 0.06,
			WobbleOffset:   100,

			Accel:          0.75,
			MaxRun:         4.8,
			Gravity:        0.7,
			JumpSpeed:      -11.5,
			FrictionAir:    0.992,
			FrictionGround: 0.84,
		},
		Panic: PanicTuning{
			SpeedScale:     6.0,
			VerticalWeight: 0.15,
			Smoothing:      0.08,
			AlarmRate:      0.12,
			TwitchRate:     0.05,
			TwitchGain:     0.6,
		},
		Shake: ShakeTuning{
			PanicGain:        6,
			Smoothing:        0.1,
			WallImpulse:      1.5,
			CeilingImpulse:   1.2,
			LandingImpulse:   3,
			HardLandingSpeed: 5,
			JumpImpulse:      2,
		},
	}
}
