package sim

import (
	"errors"
	"math"
	"testing"
)

const (
	testWidth  = 640
	testHeight = 360
	testFloorY = testHeight - 36
)

func testPlatforms() []Rect {
	return []Rect{
		{X: 0, Y: testFloorY, W: testWidth, H: testHeight - testFloorY},
		{X: 120, Y: testFloorY - 70, W: 120, H: 12},
		{X: 300, Y: testFloorY - 120, W: 90, H: 12},
		{X: 440, Y: testFloorY - 180, W: 130, H: 12},
		{X: 520, Y: testFloorY - 70, W: 90, H: 12},
	}
}

func newTestLevel(t *testing.T, platforms []Rect) *Level {
	t.Helper()
	l, err := NewLevel(testWidth, testHeight, platforms)
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return l
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestOverlap(t *testing.T) {
	b := Rect{X: 100, Y: 100, W: 50, H: 20}

	tests := []struct {
		name string
		a    Rect
		want bool
	}{
		{"Touching left edge", Rect{X: 48, Y: 100, W: 52, H: 52}, false},
		{"Touching right edge", Rect{X: 150, Y: 100, W: 52, H: 52}, false},
		{"Touching top edge", Rect{X: 110, Y: 48, W: 52, H: 52}, false},
		{"Touching bottom edge", Rect{X: 110, Y: 120, W: 52, H: 52}, false},
		{"One pixel into left edge", Rect{X: 49, Y: 100, W: 52, H: 52}, true},
		{"One pixel into top edge", Rect{X: 110, Y: 49, W: 52, H: 52}, true},
		{"Contained", Rect{X: 110, Y: 105, W: 5, H: 5}, true},
		{"Disjoint", Rect{X: 300, Y: 300, W: 5, H: 5}, false},
		{"Corner touch", Rect{X: 150, Y: 120, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, b); got != tt.want {
				t.Errorf("Expected Overlap(a, b) = %v, got %v", tt.want, got)
			}
			if got := Overlap(b, tt.a); got != tt.want {
				t.Errorf("Expected Overlap(b, a) = %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	got := Rect{X: 10, Y: 10, W: 10, H: 10}.Union(Rect{X: 15, Y: 5, W: 20, H: 5})
	want := Rect{X: 10, Y: 5, W: 25, H: 15}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestNewLevelRequiresPlatforms(t *testing.T) {
	_, err := NewLevel(testWidth, testHeight, nil)
	if !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("Expected ErrEmptyLevel, got %v", err)
	}
}

func TestLevelCopiesPlatforms(t *testing.T) {
	platforms := testPlatforms()
	l := newTestLevel(t, platforms)
	platforms[0].Y = 0

	if l.FloorY() != testFloorY {
		t.Errorf("Expected floor at %v, got %v", testFloorY, l.FloorY())
	}
}

func TestCandidates(t *testing.T) {
	l := newTestLevel(t, testPlatforms())

	tests := []struct {
		name string
		area Rect
		want []int
	}{
		{"Empty sky", Rect{X: 600, Y: 0, W: 10, H: 10}, nil},
		{"Upper ledges", Rect{X: 350, Y: 140, W: 150, H: 80}, []int{2, 3}},
		{"Floor only", Rect{X: 20, Y: 300, W: 40, H: 40}, []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Candidates(tt.area)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestCandidatesCoverOverlaps(t *testing.T) {
	l := newTestLevel(t, testPlatforms())

	for x := -40.0; x < testWidth+40; x += 6.5 {
		for y := -40.0; y < testHeight+40; y += 6.5 {
			area := Rect{X: x, Y: y, W: 52, H: 52}
			found := map[int]bool{}
			for _, i := range l.Candidates(area) {
				found[i] = true
			}
			for i, p := range l.Platforms {
				if Overlap(area, p) && !found[i] {
					t.Fatalf("Platform %d overlaps %+v but was not a candidate", i, area)
				}
			}
		}
	}
}

func TestCandidatesWithoutSpace(t *testing.T) {
	l := &Level{Width: testWidth, Height: testHeight, Platforms: testPlatforms()}

	got := l.Candidates(Rect{X: 600, Y: 0, W: 1, H: 1})
	if len(got) != len(l.Platforms) {
		t.Errorf("Expected every platform without a space, got %v", got)
	}
}

func TestLevelObject(t *testing.T) {
	l := newTestLevel(t, testPlatforms())

	obj := l.Object(3)
	if obj == nil {
		t.Fatalf("Expected an object for platform 3")
	}
	if obj.X != 440 || obj.Y != testFloorY-180 || obj.W != 130 || obj.H != 12 {
		t.Errorf("Expected object at the ledge bounds, got (%v, %v, %v, %v)", obj.X, obj.Y, obj.W, obj.H)
	}
	if i, ok := obj.Data.(int); !ok || i != 3 {
		t.Errorf("Expected object data 3, got %v", obj.Data)
	}
	if !obj.HasTags(SolidTag) {
		t.Errorf("Expected object tagged %q", SolidTag)
	}

	if l.Object(-1) != nil || l.Object(len(l.Platforms)) != nil {
		t.Errorf("Expected nil for out-of-range platforms")
	}
}
