package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/fonts"
	"github.com/automoto/panicblob/sim"
	"github.com/automoto/panicblob/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broadphase object and the blob's collision box,
// shades the platforms the broadphase offers near the blob, marks those
// touched this frame and prints the blob's state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	levelData, clock, ok := getLevel(ecs)
	if !ok {
		return
	}
	off := cameraOffset(ecs)

	if space := levelData.Level.Space(); space != nil {
		for _, obj := range space.Objects() {
			if !obj.HasTags(tags.ResolvSolid) {
				continue
			}
			strokeRect(screen, sim.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}, off, cfg.Debug.PlatformColor)
		}
	}

	blobEntry, ok := components.Blob.First(ecs.World)
	if !ok {
		return
	}
	blob := components.Blob.Get(blobEntry)
	emotion := components.Emotion.Get(blobEntry)
	frame := components.Frame.Get(blobEntry)

	// Broadphase candidates around the blob, then actual contacts.
	for _, i := range levelData.Level.Candidates(blob.Box()) {
		p := levelData.Level.Platforms[i]
		vector.FillRect(screen, float32(p.X+off.X), float32(p.Y+off.Y), float32(p.W), float32(p.H), cfg.Debug.CandidateColor, false)
	}
	for _, i := range frame.Contacts.Platforms {
		strokeRect(screen, levelData.Level.Platforms[i], off, cfg.Debug.ContactColor)
	}
	strokeRect(screen, blob.Box(), off, cfg.Debug.BoxColor)

	info := fmt.Sprintf("TPS %.0f  frame %.0f\nvx %.2f vy %.2f  grounded %v\npanic %.3f shake %.2f alarm %.2f\ntwitch %.3f walls %d",
		ebiten.ActualTPS(), clock.Frame,
		blob.VX, blob.VY, blob.Grounded,
		emotion.Panic, emotion.Shake, emotion.Alarm,
		frame.Twitch, frame.Contacts.Walls)
	text.Draw(screen, info, fonts.Debug.Get(), cfg.C.Width-190, 14, cfg.Debug.TextColor)
}

// strokeRect draws a one pixel outline of r shifted by off.
func strokeRect(screen *ebiten.Image, r sim.Rect, off sim.Point, c color.Color) {
	x, y := float32(r.X+off.X), float32(r.Y+off.Y)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
