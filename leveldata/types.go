// Package leveldata parses TMX platform layouts. It has no dependencies on
// ebitengine, donburi, or resolv: pure data only.
package leveldata

import "errors"

// Object group and class names recognised in a level file.
const (
	PlatformsGroup = "Platforms"
	SpawnGroup     = "BlobSpawn"

	KindFloor = "floor"
	KindLedge = "ledge"
)

var (
	ErrNoPlatforms = errors.New("level has no platforms")
	ErrNoFloor     = errors.New("first platform is not a floor")
	ErrBadPlatform = errors.New("invalid platform")
)

// Layout holds the static geometry parsed from a TMX level file.
type Layout struct {
	Name      string
	Width     int // pixels
	Height    int // pixels
	Platforms []Platform

	// Spawn is the blob's start X. HasSpawn is false when the level does
	// not place one.
	Spawn    float64
	HasSpawn bool
}

// Platform is one solid rectangle. Order follows the object order in the
// TMX file; the floor comes first.
type Platform struct {
	X, Y, W, H float64
	Kind       string // KindFloor or KindLedge
}
