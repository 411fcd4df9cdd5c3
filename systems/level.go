package systems

import (
	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/sim"
	"github.com/automoto/panicblob/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getLevel returns the level data and the frame clock stored with it.
func getLevel(e *ecs.ECS) (*components.LevelData, *sim.Clock, bool) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return components.Level.Get(levelEntry), components.Clock.Get(levelEntry), true
}

// currentAlarm reads the alarm pulse of the first blob. Zero before one exists.
func currentAlarm(e *ecs.ECS) float64 {
	blobEntry, ok := components.Emotion.First(e.World)
	if !ok {
		return 0
	}
	return components.Emotion.Get(blobEntry).Alarm
}

// cameraOffset returns the shake translation for world-space drawing.
func cameraOffset(e *ecs.ECS) sim.Point {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return sim.Point{}
	}
	return components.Camera.Get(cameraEntry).Offset
}

// DrawBackground fills the screen with the alarm-tinted background.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(BackgroundColor(currentAlarm(e)))
}

// DrawLevel renders the platforms, the warning stripes on thin ledges and
// the glow line above the floor, all shifted by the camera shake.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	levelData, _, ok := getLevel(e)
	if !ok {
		return
	}
	alarm := currentAlarm(e)
	off := cameraOffset(e)
	pal := cfg.Palette

	// All bodies, then all stripes.
	var thin []*components.ObjectData
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.FillRect(screen,
			float32(obj.X+off.X), float32(obj.Y+off.Y),
			float32(obj.W), float32(obj.H),
			pal.Platform, false)
		if components.Platform.Get(entry).Thin {
			thin = append(thin, obj)
		}
	})

	stripe := StripeColor(alarm)
	for _, obj := range thin {
		for _, x := range StripeOffsets(obj.X, obj.W) {
			half := float32(pal.StripePeriod / 2)
			vector.FillRect(screen,
				float32(x+off.X), float32(obj.Y+off.Y),
				half, float32(pal.StripeHeight),
				pal.StripeShadow, false)
			vector.FillRect(screen,
				float32(x+off.X)+half, float32(obj.Y+off.Y),
				half, float32(pal.StripeHeight),
				stripe, false)
		}
	}

	if floorY, ok := floorTop(e); ok {
		vector.FillRect(screen,
			float32(off.X), float32(floorY-pal.GlowHeight+off.Y),
			float32(levelData.Level.Width), float32(pal.GlowHeight),
			GlowColor(alarm), false)
	}
}

// floorTop returns the top edge of the platform tagged as the floor.
func floorTop(e *ecs.ECS) (float64, bool) {
	floorEntry, ok := tags.Floor.First(e.World)
	if !ok {
		return 0, false
	}
	return components.Object.Get(floorEntry).Y, true
}

// StripeOffsets returns the left edge of every stripe pair drawn on a
// platform spanning [x, x+w). The last pair may overrun the right edge.
func StripeOffsets(x, w float64) []float64 {
	period := cfg.Palette.StripePeriod
	if period <= 0 || w <= 0 {
		return nil
	}
	var out []float64
	for sx := x; sx < x+w; sx += period {
		out = append(out, sx)
	}
	return out
}
