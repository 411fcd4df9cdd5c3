package systems

import (
	"github.com/automoto/panicblob/components"
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera draws this frame's shake offset from the blob's current
// shake amplitude. The offset is not carried over between frames.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	_, clock, ok := getLevel(e)
	if !ok {
		return
	}
	blobEntry, ok := components.Emotion.First(e.World)
	if !ok {
		camera.Offset = sim.Point{}
		return
	}

	shake := components.Emotion.Get(blobEntry).Shake
	camera.Offset = sim.Shudder(shake, clock.Seed, clock.Tick)
}
