package archetypes

import (
	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Blob = newArchetype(
		tags.Blob,
		components.Blob,
		components.Emotion,
		components.Frame,
		components.SquashStretch,
	)
	Level = newArchetype(
		components.Level,
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
