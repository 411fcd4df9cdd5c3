package systems

import (
	"fmt"

	"github.com/automoto/panicblob/components"
	cfg "github.com/automoto/panicblob/config"
	"github.com/automoto/panicblob/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the controls line and the panic readout. It ignores the
// camera shake, so it must be registered after every world-space renderer.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	panicLevel := 0.0
	if blobEntry, ok := components.Emotion.First(ecs.World); ok {
		panicLevel = components.Emotion.Get(blobEntry).Panic
	}

	input := getOrCreateInput(ecs)
	face := fonts.HUD.Get()
	x := int(cfg.HUD.MarginX)
	text.Draw(screen, ControlsHint(input.LastInputMethod), face, x, int(cfg.HUD.ControlsY), cfg.HUD.TextColor)
	text.Draw(screen, FormatPanic(panicLevel), face, x, int(cfg.HUD.StatusY), cfg.HUD.TextColor)
}

// ControlsHint returns the controls line for the device used last.
func ControlsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return cfg.HUD.Controls.PlayStation
	case components.InputXbox:
		return cfg.HUD.Controls.Xbox
	default:
		return cfg.HUD.Controls.Keyboard
	}
}

// FormatPanic renders the status line for a panic level.
func FormatPanic(panicLevel float64) string {
	return fmt.Sprintf(cfg.HUD.StatusFormat, panicLevel)
}
