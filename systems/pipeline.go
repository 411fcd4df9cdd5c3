package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Simulation returns the per-frame simulation systems in the order one
// frame of the simulation requires. Input polling must be registered
// before them and UpdateSettings after.
func Simulation() []ecs.System {
	return []ecs.System{
		UpdateClock,
		UpdateBlob,
		UpdateEmotion,
		UpdateCamera,
		UpdatePhysics,
		UpdateCollisions,
		UpdateBlobShape,
		UpdateEffects,
	}
}

// Renderers returns the draw passes back to front. DrawHUD is last because
// it ignores the camera shake.
func Renderers() []func(*ecs.ECS, *ebiten.Image) {
	return []func(*ecs.ECS, *ebiten.Image){
		DrawBackground,
		DrawLevel,
		DrawBlob,
		DrawDebug,
		DrawHUD,
	}
}
