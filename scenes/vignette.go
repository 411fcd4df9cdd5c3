package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/leveldata"
	"github.com/automoto/panicblob/noise"
	"github.com/automoto/panicblob/systems"
	"github.com/automoto/panicblob/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// VignetteScene is the single room the blob panics in.
type VignetteScene struct {
	ecs    *ecs.ECS
	layout *leveldata.Layout
	seed   int64
	once   sync.Once
}

// NewVignetteScene creates the scene for a validated layout. The seed keys
// both the noise field and the camera shake.
func NewVignetteScene(layout *leveldata.Layout, seed int64) *VignetteScene {
	return &VignetteScene{layout: layout, seed: seed}
}

func (vs *VignetteScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *VignetteScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

func (vs *VignetteScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input is sampled once, before anything reads it
	ecs.AddSystem(systems.UpdateInput)
	for _, system := range systems.Simulation() {
		ecs.AddSystem(system)
	}
	ecs.AddSystem(systems.UpdateSettings)

	for _, renderer := range systems.Renderers() {
		ecs.AddRenderer(cfg.Default, renderer)
	}

	vs.ecs = ecs

	level, err := factory.CreateLevel(vs.ecs, vs.layout, noise.NewPerlin(vs.seed), uint64(vs.seed), cfg.Tuning())
	if err != nil {
		panic("failed to build level: " + err.Error())
	}
	levelData := components.Level.Get(level)

	factory.CreateCamera(vs.ecs)
	factory.CreateSettings(vs.ecs, cfg.Debug.Enabled)
	factory.CreateBlob(vs.ecs, levelData)

	log.Printf("[level] %s: %d platforms, floor at %.0f, seed %d",
		levelData.Layout.Name, len(levelData.Level.Platforms), levelData.Level.FloorY(), vs.seed)
}
