package sim

import (
	"errors"
	"math"

	"github.com/solarlune/resolv"
)

// SolidTag marks platform objects in the level's resolv space.
const SolidTag = "solid"

const cellSize = 16

// ErrEmptyLevel is returned when a level is built without platforms.
var ErrEmptyLevel = errors.New("level has no platforms")

// Level is the static set of platforms the blob collides with. Entry 0 is
// the floor. Platform order is significant: overlaps are resolved in it.
type Level struct {
	Width, Height float64
	Platforms     []Rect

	space   *resolv.Space
	objects []*resolv.Object
}

// NewLevel builds a level and its broadphase space. The platforms slice is
// copied and never modified afterwards.
func NewLevel(width, height float64, platforms []Rect) (*Level, error) {
	if len(platforms) == 0 {
		return nil, ErrEmptyLevel
	}

	l := &Level{
		Width:     width,
		Height:    height,
		Platforms: append([]Rect(nil), platforms...),
		space:     resolv.NewSpace(cells(width)*cellSize, cells(height)*cellSize, cellSize, cellSize),
	}

	for i, p := range l.Platforms {
		obj := resolv.NewObject(p.X, p.Y, p.W, p.H, SolidTag)
		obj.SetShape(resolv.NewRectangle(0, 0, p.W, p.H))
		obj.Data = i // index back into Platforms
		l.space.Add(obj)
		l.objects = append(l.objects, obj)
	}

	return l, nil
}

// Floor returns the first platform.
func (l *Level) Floor() Rect {
	return l.Platforms[0]
}

// FloorY is the top edge of the floor.
func (l *Level) FloorY() float64 {
	return l.Floor().Y
}

// Candidates returns, in platform order, the indices of every platform that
// may overlap area. The result is a superset of the overlapping platforms.
func (l *Level) Candidates(area Rect) []int {
	if l.space == nil {
		all := make([]int, len(l.Platforms))
		for i := range all {
			all[i] = i
		}
		return all
	}

	// resolv maps an object to cells by its bounds minus one pixel, so a
	// fractional edge can sit in a cell the object is not registered in.
	probe := resolv.NewObject(area.X-1, area.Y-1, area.W+2, area.H+2)
	l.space.Add(probe)
	defer l.space.Remove(probe)

	check := probe.Check(0, 0, SolidTag)
	if check == nil {
		return nil
	}

	hit := make([]bool, len(l.Platforms))
	for _, obj := range check.Objects {
		if i, ok := obj.Data.(int); ok && i >= 0 && i < len(hit) {
			hit[i] = true
		}
	}

	var out []int
	for i, h := range hit {
		if h {
			out = append(out, i)
		}
	}
	return out
}

// mark flags every candidate for area in near. A snapped box can land
// outside the area first queried, so callers mark again after moving it.
func (l *Level) mark(near []bool, area Rect) {
	for _, i := range l.Candidates(area) {
		near[i] = true
	}
}

func cells(v float64) int {
	return int(math.Ceil(v / cellSize))
}

// Object returns the broadphase object registered for platform i, or nil
// when the level has no space.
func (l *Level) Object(i int) *resolv.Object {
	if i < 0 || i >= len(l.objects) {
		return nil
	}
	return l.objects[i]
}

// Space exposes the broadphase for debug drawing.
func (l *Level) Space() *resolv.Space {
	return l.space
}
