package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file and returns its platform layout. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlatformsGroup:
			for _, o := range og.Objects {
				layout.Platforms = append(layout.Platforms, Platform{
					X:    o.X,
					Y:    o.Y,
					W:    o.Width,
					H:    o.Height,
					Kind: objectKind(o),
				})
			}
		case SpawnGroup:
			if len(og.Objects) > 0 {
				layout.Spawn = og.Objects[0].X
				layout.HasSpawn = true
			}
		}
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}
	return layout, nil
}

// objectKind reads the platform kind from the object's class, falling back
// to the legacy type attribute. Unclassed objects are ledges.
func objectKind(o *tiled.Object) string {
	kind := o.Class
	if kind == "" {
		kind = o.Type //nolint:staticcheck // older TMX files use type=
	}
	if kind == "" {
		return KindLedge
	}
	return strings.ToLower(kind)
}

// Validate checks that the layout can be simulated: at least one platform,
// a floor first, and finite positive sizes throughout.
func (l *Layout) Validate() error {
	if len(l.Platforms) == 0 {
		return ErrNoPlatforms
	}
	if l.Platforms[0].Kind != KindFloor {
		return ErrNoFloor
	}
	for i, p := range l.Platforms {
		for _, v := range []float64{p.X, p.Y, p.W, p.H} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: platform %d has a non-finite coordinate", ErrBadPlatform, i)
			}
		}
		if p.W <= 0 || p.H <= 0 {
			return fmt.Errorf("%w: platform %d is %vx%v", ErrBadPlatform, i, p.W, p.H)
		}
		if i > 0 && p.Kind == KindFloor {
			return fmt.Errorf("%w: platform %d is a second floor", ErrBadPlatform, i)
		}
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: map is %dx%d", ErrBadPlatform, l.Width, l.Height)
	}
	return nil
}
