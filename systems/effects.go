package systems

import (
	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the squash/stretch tweens and starts new ones on a
// jump or a hard landing. Purely visual: the collision box never changes.
func UpdateEffects(ecs *ecs.ECS) {
	levelData, _, ok := getLevel(ecs)
	if !ok {
		return
	}
	hardLanding := levelData.Tuning.Shake.HardLandingSpeed

	components.SquashStretch.Each(ecs.World, func(entry *donburi.Entry) {
		ss := components.SquashStretch.Get(entry)
		frame := components.Frame.Get(entry)

		advanceSquashStretch(ss, float32(frame.DT/float64(cfg.C.TPS)))

		switch {
		case frame.Jumped:
			TriggerSquashStretch(ss, cfg.SquashStretch.JumpScaleX, cfg.SquashStretch.JumpScaleY)
		case frame.Contacts.Landed && frame.Contacts.Impact > hardLanding:
			TriggerSquashStretch(ss, cfg.SquashStretch.LandScaleX, cfg.SquashStretch.LandScaleY)
		}
	})
}

// TriggerSquashStretch snaps the scale to (sx, sy) and eases it back to 1.
// A new trigger replaces any tween in flight.
func TriggerSquashStretch(ss *components.SquashStretchData, sx, sy float64) {
	d := cfg.SquashStretch.Duration
	ss.ScaleX, ss.ScaleY = sx, sy
	ss.TweenX = gween.New(float32(sx), 1, d, ease.OutQuad)
	ss.TweenY = gween.New(float32(sy), 1, d, ease.OutQuad)
}

// advanceSquashStretch steps both tweens by seconds and drops them once
// they finish.
func advanceSquashStretch(ss *components.SquashStretchData, seconds float32) {
	if ss.TweenX != nil {
		v, done := ss.TweenX.Update(seconds)
		ss.ScaleX = float64(v)
		if done {
			ss.TweenX = nil
			ss.ScaleX = 1
		}
	}
	if ss.TweenY != nil {
		v, done := ss.TweenY.Update(seconds)
		ss.ScaleY = float64(v)
		if done {
			ss.TweenY = nil
			ss.ScaleY = 1
		}
	}
}
