package systems

import (
	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/sim"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBlob turns this frame's controls into a sim.Input and launches a
// jump on a fresh press while grounded.
func UpdateBlob(ecs *ecs.ECS) {
	levelData, _, ok := getLevel(ecs)
	if !ok {
		return
	}
	in := SampleInput(getOrCreateInput(ecs))

	components.Blob.Each(ecs.World, func(entry *donburi.Entry) {
		blob := components.Blob.Get(entry)
		emotion := components.Emotion.Get(entry)
		frame := components.Frame.Get(entry)

		frame.Input = in
		frame.Jumped = in.Jump && sim.Jump(blob, emotion, levelData.Tuning)
	})
}

// SampleInput maps the action state to the simulation's input. Holding both
// directions cancels out; jump fires only on the frame it goes down.
func SampleInput(input *components.InputData) sim.Input {
	var in sim.Input
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		in.Move++
	}
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		in.Move--
	}
	in.Jump = GetAction(input, cfg.ActionJump).JustPressed
	return in
}

// UpdateBlobShape feeds the panic level back into the blob's wobble and
// advances its animation phase. Runs after collisions.
func UpdateBlobShape(ecs *ecs.ECS) {
	levelData, _, ok := getLevel(ecs)
	if !ok {
		return
	}

	components.Blob.Each(ecs.World, func(entry *donburi.Entry) {
		blob := components.Blob.Get(entry)
		emotion := components.Emotion.Get(entry)
		frame := components.Frame.Get(entry)

		blob.Animate(emotion.Panic, levelData.Tuning.Blob, frame.DT)
	})
}
