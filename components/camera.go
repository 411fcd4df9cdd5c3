package components

import (
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
)

// CameraData is the world-space translation applied before drawing the
// level and the blob. The HUD ignores it.
type CameraData struct {
	Offset sim.Point
}

var Camera = donburi.NewComponentType[CameraData]()
