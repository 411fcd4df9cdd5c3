package factory

import (
	"github.com/automoto/panicblob/archetypes"
	"github.com/automoto/panicblob/components"
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBlob spawns the blob at the level's start position, calm and at
// rest scale.
func CreateBlob(ecs *ecs.ECS, levelData *components.LevelData) *donburi.Entry {
	blob := archetypes.Blob.Spawn(ecs)

	components.Blob.SetValue(blob, sim.NewBlob(levelData.Level, levelData.Tuning.Blob))
	components.Emotion.SetValue(blob, sim.Emotion{})
	components.Frame.SetValue(blob, components.FrameData{DT: 1})
	components.SquashStretch.SetValue(blob, components.SquashStretchData{
		ScaleX: 1,
		ScaleY: 1,
	})

	return blob
}
