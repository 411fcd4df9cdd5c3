package components

import (
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
)

// Blob holds the player body; Emotion its panic state.
var (
	Blob    = donburi.NewComponentType[sim.Blob]()
	Emotion = donburi.NewComponentType[sim.Emotion]()
)
