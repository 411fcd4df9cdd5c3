package factory

import (
	"github.com/automoto/panicblob/archetypes"
	"github.com/automoto/panicblob/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}

func CreateSettings(ecs *ecs.ECS, debug bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{Debug: debug})
	return settings
}
