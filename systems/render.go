package systems

import (
	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames to avoid allocating the outline every draw.
var blobOutline []sim.Point

// DrawBlob renders each blob as a filled noise-perturbed polygon with a
// small highlight, shifted by the camera shake.
func DrawBlob(ecs *ecs.ECS, screen *ebiten.Image) {
	levelData, clock, ok := getLevel(ecs)
	if !ok {
		return
	}
	off := cameraOffset(ecs)

	components.Blob.Each(ecs.World, func(entry *donburi.Entry) {
		blob := components.Blob.Get(entry)
		emotion := components.Emotion.Get(entry)
		ss := components.SquashStretch.Get(entry)

		blobOutline = sim.Outline(blobOutline[:0], *blob, levelData.Noise, emotion.Panic, clock.Frame, levelData.Tuning.Blob)
		if len(blobOutline) < 3 {
			return
		}

		path := &vector.Path{}
		for i, p := range blobOutline {
			p = SquashPoint(p, blob, ss)
			if i == 0 {
				path.MoveTo(float32(p.X+off.X), float32(p.Y+off.Y))
			} else {
				path.LineTo(float32(p.X+off.X), float32(p.Y+off.Y))
			}
		}
		path.Close()

		op := &vector.DrawPathOptions{AntiAlias: true}
		op.ColorScale.ScaleWithColor(BlobColor(emotion.Panic))
		vector.FillPath(screen, path, &vector.FillOptions{}, op)

		r := blob.Radius
		h := SquashPoint(sim.Point{
			X: blob.X - r*cfg.Palette.HighlightOffset,
			Y: blob.Y - r*cfg.Palette.HighlightOffset,
		}, blob, ss)
		vector.FillCircle(screen,
			float32(h.X+off.X), float32(h.Y+off.Y),
			float32(r*cfg.Palette.HighlightDiameter/2),
			cfg.Palette.Highlight, true)
	})
}

// SquashPoint applies the squash/stretch scale to p, anchored at the bottom
// center of the blob so a landing squash stays on the ground.
func SquashPoint(p sim.Point, blob *sim.Blob, ss *components.SquashStretchData) sim.Point {
	sx, sy := ss.ScaleX, ss.ScaleY
	if sx == 0 || sy == 0 {
		return p
	}
	baseY := blob.Y + blob.Radius
	return sim.Point{
		X: blob.X + (p.X-blob.X)*sx,
		Y: baseY + (p.Y-baseY)*sy,
	}
}
