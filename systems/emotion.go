package systems

import (
	"github.com/automoto/panicblob/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEmotion pulls panic toward the blob's current speed, recomputes the
// alarm pulse and relaxes the shake amplitude. It reads the velocity left by
// the previous frame's collisions.
func UpdateEmotion(ecs *ecs.ECS) {
	levelData, clock, ok := getLevel(ecs)
	if !ok {
		return
	}
	t := levelData.Tuning

	components.Emotion.Each(ecs.World, func(entry *donburi.Entry) {
		blob := components.Blob.Get(entry)
		emotion := components.Emotion.Get(entry)
		dt := components.Frame.Get(entry).DT

		emotion.Observe(blob.VX, blob.VY, t.Panic, dt)
		emotion.Pulse(clock.Frame, t.Panic)
		emotion.Settle(t.Shake, dt)
	})
}
