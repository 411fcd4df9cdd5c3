package factory

import (
	"errors"
	"testing"

	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/leveldata"
	"github.com/automoto/panicblob/noise"
	"github.com/automoto/panicblob/sim"
	"github.com/automoto/panicblob/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLayout() *leveldata.Layout {
	return &leveldata.Layout{
		Name:   "test",
		Width:  640,
		Height: 360,
		Platforms: []leveldata.Platform{
			{X: 0, Y: 324, W: 640, H: 36, Kind: leveldata.KindFloor},
			{X: 120, Y: 254, W: 120, H: 12, Kind: leveldata.KindLedge},
			{X: 300, Y: 204, W: 90, H: 40, Kind: leveldata.KindLedge},
		},
		Spawn:    150,
		HasSpawn: true,
	}
}

func TestCreateLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	level, err := CreateLevel(e, testLayout(), noise.Constant(0.5), 9, cfg.Tuning())
	if err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}

	levelData := components.Level.Get(level)
	if levelData.Tuning.Blob.StartX != 150 {
		t.Errorf("Expected the spawn to override StartX, got %v", levelData.Tuning.Blob.StartX)
	}
	if levelData.Level.FloorY() != 324 {
		t.Errorf("Expected floor at 324, got %v", levelData.Level.FloorY())
	}
	if clock := components.Clock.Get(level); clock.Seed != 9 || clock.Tick != 0 {
		t.Errorf("Expected a fresh clock seeded 9, got %+v", clock)
	}

	platforms := map[int]components.PlatformData{}
	floors := 0
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		p := components.Platform.Get(entry)
		platforms[p.Index] = *p
		if entry.HasComponent(tags.Floor) {
			floors++
			if p.Index != 0 {
				t.Errorf("Expected only platform 0 tagged floor, got %d", p.Index)
			}
		}
		obj := components.Object.Get(entry)
		if i, ok := obj.Data.(int); !ok || i != p.Index {
			t.Errorf("Expected object data %d, got %v", p.Index, obj.Data)
		}
	})

	if len(platforms) != 3 || floors != 1 {
		t.Fatalf("Expected 3 platforms and 1 floor, got %d and %d", len(platforms), floors)
	}

	wantThin := []bool{false, true, false}
	for i, want := range wantThin {
		if platforms[i].Thin != want {
			t.Errorf("Platform %d: expected thin %v, got %v", i, want, platforms[i].Thin)
		}
	}
}

func TestCreateLevelKeepsStartWithoutSpawn(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	layout := testLayout()
	layout.HasSpawn = false

	level, err := CreateLevel(e, layout, noise.Constant(0.5), 1, cfg.Tuning())
	if err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}
	if got := components.Level.Get(level).Tuning.Blob.StartX; got != cfg.Blob.StartX {
		t.Errorf("Expected StartX %v, got %v", cfg.Blob.StartX, got)
	}
}

func TestCreateLevelEmpty(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	layout := testLayout()
	layout.Platforms = nil

	_, err := CreateLevel(e, layout, noise.Constant(0.5), 1, cfg.Tuning())
	if !errors.Is(err, sim.ErrEmptyLevel) {
		t.Errorf("Expected ErrEmptyLevel, got %v", err)
	}
	if _, ok := components.Level.First(e.World); ok {
		t.Errorf("Expected no level entity after a failed build")
	}
}

func TestCreateBlob(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	level, err := CreateLevel(e, testLayout(), noise.Constant(0.5), 1, cfg.Tuning())
	if err != nil {
		t.Fatalf("CreateLevel: %v", err)
	}

	blob := CreateBlob(e, components.Level.Get(level))

	b := components.Blob.Get(blob)
	if b.X != 150 || b.Y != 324-b.Radius-1 {
		t.Errorf("Expected blob at (150, %v), got (%v, %v)", 324-b.Radius-1, b.X, b.Y)
	}
	if !blob.HasComponent(tags.Blob) {
		t.Errorf("Expected the blob tag")
	}
	if dt := components.Frame.Get(blob).DT; dt != 1 {
		t.Errorf("Expected DT 1 before the first update, got %v", dt)
	}
	if ss := components.SquashStretch.Get(blob); ss.ScaleX != 1 || ss.ScaleY != 1 {
		t.Errorf("Expected rest scale, got (%v, %v)", ss.ScaleX, ss.ScaleY)
	}
}
