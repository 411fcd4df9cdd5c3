package sim

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/panicblob/noise"
)

func newTestWorld(t *testing.T, field noise.Field) World {
	t.Helper()
	return NewWorld(newTestLevel(t, testPlatforms()), field, 1, DefaultTuning())
}

func TestNewWorld(t *testing.T) {
	w := newTestWorld(t, noise.Constant(0.5))

	if w.Blob.X != 80 || w.Blob.Y != testFloorY-27 {
		t.Errorf("Expected blob at (80, %v), got (%v, %v)", testFloorY-27, w.Blob.X, w.Blob.Y)
	}
	if w.Blob.Grounded || w.Blob.VX != 0 || w.Blob.VY != 0 {
		t.Errorf("Expected a still, airborne blob, got %+v", w.Blob)
	}
	if w.Emotion != (Emotion{}) {
		t.Errorf("Expected calm emotion, got %+v", w.Emotion)
	}
}

// The start position hovers one pixel above the floor: gravity alone does not
// close the gap on the first frame, the second frame lands.
func TestStartSettles(t *testing.T) {
	w := newTestWorld(t, noise.Constant(0.5))

	w = Step(w, Input{}, 1)
	if w.Blob.Grounded {
		t.Errorf("Expected blob airborne after the first frame")
	}
	if !approx(w.Blob.Y, testFloorY-26-0.3) {
		t.Errorf("Expected Y %v after the first frame, got %v", testFloorY-26-0.3, w.Blob.Y)
	}

	w = Step(w, Input{}, 1)
	if !w.Blob.Grounded || !w.Contacts.Landed {
		t.Fatalf("Expected blob grounded after the second frame")
	}
	if w.Blob.Y != testFloorY-26 || w.Blob.VY != 0 {
		t.Errorf("Expected resting at Y %v with VY 0, got Y %v VY %v", testFloorY-26, w.Blob.Y, w.Blob.VY)
	}
}

func TestRestIsIdempotent(t *testing.T) {
	tests := []struct {
		name  string
		field noise.Field
		tol   float64
	}{
		{"Flat field", noise.Constant(0.5), 0},
		{"Perlin field", noise.NewPerlin(5), 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, tt.field)
			w = Step(w, Input{}, 1)
			w = Step(w, Input{}, 1)

			for i := 0; i < 100; i++ {
				w = Step(w, Input{}, 1)
				if !w.Blob.Grounded {
					t.Fatalf("Frame %d: expected blob to stay grounded", i)
				}
				if w.Blob.Y != testFloorY-26 {
					t.Fatalf("Frame %d: expected Y %v, got %v", i, testFloorY-26, w.Blob.Y)
				}
				if math.Abs(w.Blob.X-80) > tt.tol {
					t.Fatalf("Frame %d: expected X within %v of 80, got %v", i, tt.tol, w.Blob.X)
				}
			}
		})
	}
}

func TestStepJump(t *testing.T) {
	w := newTestWorld(t, noise.Constant(0.5))
	w = Step(w, Input{}, 1)
	w = Step(w, Input{}, 1)

	w = Step(w, Input{Jump: true}, 1)
	if !w.Jumped {
		t.Fatalf("Expected the jump to launch")
	}
	if w.Blob.Grounded {
		t.Errorf("Expected blob airborne after jumping")
	}
	// Launch speed plus one frame of gravity.
	if !approx(w.Blob.VY, -10.8) {
		t.Errorf("Expected VY -10.8, got %v", w.Blob.VY)
	}
	if w.Emotion.Shake <= 1.5 {
		t.Errorf("Expected the jump impulse in the shake, got %v", w.Emotion.Shake)
	}

	w = Step(w, Input{Jump: true}, 1)
	if w.Jumped {
		t.Errorf("Expected a jump in mid air to be dropped")
	}
}

func TestStepHardLandingShake(t *testing.T) {
	w := newTestWorld(t, noise.Constant(0.5))
	w.Blob.Y = testFloorY - 26 - 3
	w.Blob.VY = 6

	// Shake as it stands after this frame's smoothing, before contacts.
	want := w.Emotion
	want.Observe(w.Blob.VX, w.Blob.VY, w.Tuning.Panic, 1)
	want.Pulse(1, w.Tuning.Panic)
	want.Settle(w.Tuning.Shake, 1)

	w = Step(w, Input{}, 1)

	if !w.Contacts.Landed || w.Contacts.Impact <= 5 {
		t.Fatalf("Expected a hard landing, got %+v", w.Contacts)
	}
	if w.Contacts.Walls != 0 || w.Contacts.Ceiling {
		t.Fatalf("Expected only the landing, got %+v", w.Contacts)
	}
	if !approx(w.Emotion.Shake, want.Shake+3) {
		t.Errorf("Expected shake %v, got %v", want.Shake+3, w.Emotion.Shake)
	}
}

func TestHorizontalContainment(t *testing.T) {
	w := newTestWorld(t, noise.NewPerlin(99))
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 5000; i++ {
		in := Input{Move: r.IntN(3) - 1, Jump: r.IntN(10) == 0}
		w = Step(w, in, 1)

		if w.Blob.X < w.Blob.Radius || w.Blob.X > testWidth-w.Blob.Radius {
			t.Fatalf("Frame %d: X %v left [%v, %v]", i, w.Blob.X, w.Blob.Radius, testWidth-w.Blob.Radius)
		}
		if w.Blob.Y > testFloorY-w.Blob.Radius {
			t.Fatalf("Frame %d: blob sank into the floor at Y %v", i, w.Blob.Y)
		}
	}
}

func TestPanicMonotonic(t *testing.T) {
	const width = 10000
	l, err := NewLevel(width, testHeight, []Rect{{X: 0, Y: testFloorY, W: width, H: testHeight - testFloorY}})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	w := NewWorld(l, noise.Constant(0.5), 1, DefaultTuning())
	right := Input{Move: 1}

	w = Step(w, right, 1)
	prev := w.Emotion.Panic
	for i := 0; i < 300; i++ {
		w = Step(w, right, 1)
		if w.Contacts.Walls != 0 {
			t.Fatalf("Frame %d: unexpected wall contact", i)
		}
		if w.Emotion.Panic <= prev {
			t.Fatalf("Frame %d: expected panic to rise above %v, got %v", i, prev, w.Emotion.Panic)
		}
		prev = w.Emotion.Panic
	}

	for i := 0; i < 600; i++ {
		w = Step(w, right, 1)
	}

	// Steady ground speed is accel*ground/(1-ground).
	steady := 0.75 * 0.84 / (1 - 0.84)
	if want := steady / 6; math.Abs(w.Emotion.Panic-want) > 1e-6 {
		t.Errorf("Expected panic to settle at %v, got %v", want, w.Emotion.Panic)
	}
}

func TestStepDoesNotMutate(t *testing.T) {
	w := newTestWorld(t, noise.NewPerlin(3))
	before := w

	next := Step(w, Input{Move: 1, Jump: true}, 1)

	if w.Blob != before.Blob || w.Emotion != before.Emotion || w.Clock != before.Clock {
		t.Errorf("Expected Step to leave its argument untouched")
	}
	if next.Clock.Tick != 1 || next.Clock.Frame != 1 {
		t.Errorf("Expected clock at tick 1 frame 1, got %+v", next.Clock)
	}
}

func TestStepDeterministic(t *testing.T) {
	a := newTestWorld(t, noise.NewPerlin(21))
	b := newTestWorld(t, noise.NewPerlin(21))
	r := rand.New(rand.NewPCG(3, 4))

	for i := 0; i < 600; i++ {
		in := Input{Move: r.IntN(3) - 1, Jump: r.IntN(15) == 0}
		a = Step(a, in, 1)
		b = Step(b, in, 1)
		if a.Blob != b.Blob || a.Emotion != b.Emotion || a.Offset != b.Offset {
			t.Fatalf("Frame %d: worlds diverged", i)
		}
	}

	pa := a.Outline(nil)
	pb := b.Outline(nil)
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("Vertex %d differs: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestStepOffsetWithinShake(t *testing.T) {
	w := newTestWorld(t, noise.NewPerlin(8))

	for i := 0; i < 300; i++ {
		w = Step(w, Input{Move: 1, Jump: i%40 == 0}, 1)
		s := w.Emotion.Shake
		if math.Abs(w.Offset.X) > s || math.Abs(w.Offset.Y) > s {
			t.Fatalf("Frame %d: offset %+v exceeds shake %v", i, w.Offset, s)
		}
	}
}
