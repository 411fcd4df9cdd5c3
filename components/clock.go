package components

import (
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
)

var Clock = donburi.NewComponentType[sim.Clock]()
