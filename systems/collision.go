package systems

import (
	"github.com/automoto/panicblob/components"
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves each blob through the level one axis at a time and
// turns the contacts into shake impulses.
func UpdateCollisions(ecs *ecs.ECS) {
	levelData, _, ok := getLevel(ecs)
	if !ok {
		return
	}

	components.Blob.Each(ecs.World, func(entry *donburi.Entry) {
		blob := components.Blob.Get(entry)
		emotion := components.Emotion.Get(entry)
		frame := components.Frame.Get(entry)

		frame.Contacts = sim.Resolve(blob, levelData.Level, frame.DT)
		emotion.Absorb(frame.Contacts, levelData.Tuning.Shake)
	})
}
