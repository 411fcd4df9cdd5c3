package factory

import (
	"fmt"

	"github.com/automoto/panicblob/archetypes"
	"github.com/automoto/panicblob/components"
	"github.com/automoto/panicblob/leveldata"
	"github.com/automoto/panicblob/noise"
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the simulation level from a parsed layout, then spawns
// the level entity and one entity per platform. A spawn point in the layout
// overrides the tuned start position.
func CreateLevel(ecs *ecs.ECS, layout *leveldata.Layout, field noise.Field, seed uint64, tuning sim.Tuning) (*donburi.Entry, error) {
	rects := make([]sim.Rect, len(layout.Platforms))
	for i, p := range layout.Platforms {
		rects[i] = sim.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
	}

	lvl, err := sim.NewLevel(float64(layout.Width), float64(layout.Height), rects)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", layout.Name, err)
	}

	if layout.HasSpawn {
		tuning.Blob.StartX = layout.Spawn
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Level:  lvl,
		Layout: layout,
		Noise:  field,
		Tuning: tuning,
	})
	components.Clock.SetValue(level, sim.Clock{Seed: seed})

	for i := range layout.Platforms {
		CreatePlatform(ecs, lvl, i)
	}

	return level, nil
}
