package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/panicblob/assets"
	"github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/fonts"
	"github.com/automoto/panicblob/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(scene Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	seed := flag.Int64("seed", config.Level.Seed, "noise and shake seed (0 = from clock)")
	level := flag.String("level", config.Level.Path, "embedded level to load")
	debug := flag.Bool("debug", config.Debug.Enabled, "show the debug overlay at startup")
	flag.Parse()

	config.Level.Path = *level
	config.Debug.Enabled = *debug
	config.Level.Seed = *seed
	if config.Level.Seed == 0 {
		config.Level.Seed = time.Now().UnixNano()
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	layout, err := assets.LoadLayout(config.Level.Path)
	if err != nil {
		paths, _ := assets.LevelPaths()
		log.Fatalf("Failed to load level: %v (embedded levels: %v)", err, paths)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewVignetteScene(layout, config.Level.Seed))); err != nil {
		log.Fatal(err)
	}
}
