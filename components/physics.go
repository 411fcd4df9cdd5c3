package components

import (
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
)

// FrameData carries one frame's intermediate results from the update
// systems that produce them to the ones that consume them.
type FrameData struct {
	DT       float64 // nominal frames covered by this update
	Input    sim.Input
	Jumped   bool
	Twitch   float64
	Contacts sim.Contacts
}

var Frame = donburi.NewComponentType[FrameData]()
