package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// PlatformData links a platform entity back to its slot in the level.
type PlatformData struct {
	Index int
	Thin  bool // drawn with warning stripes
}

var Platform = donburi.NewComponentType[PlatformData]()
