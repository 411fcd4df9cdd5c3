package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SquashStretchData tracks sprite scale deformation for jump/land feel.
// The tweens are nil while the blob is at rest scale.
type SquashStretchData struct {
	ScaleX, ScaleY float64 // current scale
	TweenX, TweenY *gween.Tween
}

var SquashStretch = donburi.NewComponentType[SquashStretchData]()
