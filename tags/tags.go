package tags

import (
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
)

var (
	Blob     = donburi.NewTag().SetName("Blob")
	Platform = donburi.NewTag().SetName("Platform")
	Floor    = donburi.NewTag().SetName("Floor")
)

// Resolv tags for physics collision
const (
	ResolvSolid = sim.SolidTag
)
