package factory

import (
	"github.com/automoto/panicblob/archetypes"
	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/sim"
	"github.com/automoto/panicblob/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns the drawable entity for platform index of level.
// The collision object is the one the level registered in its space.
func CreatePlatform(ecs *ecs.ECS, level *sim.Level, index int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	components.Object.SetValue(platform, components.ObjectData{Object: level.Object(index)})
	components.Platform.SetValue(platform, components.PlatformData{
		Index: index,
		Thin:  level.Platforms[index].H <= cfg.Palette.StripeMaxH,
	})

	if index == 0 {
		platform.AddComponent(tags.Floor)
	}

	return platform
}
