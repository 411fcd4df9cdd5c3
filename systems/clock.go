package systems

import (
	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the frame clock and publishes this frame's delta.
// Must run before every other simulation system.
func UpdateClock(e *ecs.ECS) {
	levelEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}

	dt := frameDelta()
	components.Clock.Get(levelEntry).Advance(dt)

	components.Frame.Each(e.World, func(entry *donburi.Entry) {
		components.Frame.Get(entry).DT = dt
	})
}

// frameDelta is the length of one Update in nominal simulation frames.
// It is 1 unless the tick rate has been changed from the configured one.
func frameDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 1
	}
	return float64(cfg.C.TPS) / float64(tps)
}
