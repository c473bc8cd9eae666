package systems

import (
	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/fonts"
	"github.com/automoto/fpcontroller/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause action. Pausing stops every
// controller, which releases the cursor; resuming starts them again.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(ecs, !GetOrCreatePause(ecs).IsPaused)
	}
}

// SetPaused stops or starts every character controller.
func SetPaused(ecs *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = paused

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Character.Get(e).Controller
		if paused {
			ctrl.Stop()
		} else {
			ctrl.Start()
		}
	})
	log := logging.For("pause")
	log.Info().Bool("paused", paused).Msg("Pause toggled")
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Overlay, false)

	title := "PAUSED"
	titleFace := fonts.Large.Get()
	titleBounds := text.BoundString(titleFace, title) //nolint:staticcheck
	text.Draw(screen, title, titleFace, (width-titleBounds.Dx())/2, height/2, cfg.White) //nolint:staticcheck

	hint := getPauseHint(getOrCreateInput(ecs).LastInputMethod)
	hintFace := fonts.Regular.Get()
	hintBounds := text.BoundString(hintFace, hint) //nolint:staticcheck
	text.Draw(screen, hint, hintFace, (width-hintBounds.Dx())/2, height/2+30, cfg.Yellow) //nolint:staticcheck
}

// getPauseHint names the resume button of the device used last.
func getPauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Start to resume"
	}
	return "Esc to resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
