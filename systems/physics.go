package systems

import (
	"github.com/automoto/panicblob/components"
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies the panic twitch, acceleration, friction and
// gravity to each blob's velocity.
func UpdatePhysics(ecs *ecs.ECS) {
	levelData, clock, ok := getLevel(ecs)
	if !ok {
		return
	}
	t := levelData.Tuning

	components.Blob.Each(ecs.World, func(entry *donburi.Entry) {
		blob := components.Blob.Get(entry)
		emotion := components.Emotion.Get(entry)
		frame := components.Frame.Get(entry)

		frame.Twitch = sim.Twitch(levelData.Noise, clock.Frame, emotion.Panic, t.Panic)
		sim.Integrate(blob, sim.Intent(frame.Input.Move), frame.Twitch, t.Blob, frame.DT)
	})
}
