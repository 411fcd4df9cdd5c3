package components

import (
	"github.com/automoto/panicblob/leveldata"
	"github.com/automoto/panicblob/noise"
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level  *sim.Level
	Layout *leveldata.Layout
	Noise  noise.Field
	Tuning sim.Tuning
}

var Level = donburi.NewComponentType[LevelData]()
