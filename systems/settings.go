package systems

import (
	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the debug, invert-Y and sensitivity hotkeys. Every
// change is persisted.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	changed := false

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionInvertY).JustPressed {
		settings.InvertY = !settings.InvertY
		changed = true
	}

	step := 0.0
	if GetAction(input, cfg.ActionSensitivityDown).JustPressed {
		step -= cfg.Input.SensitivityStep
	}
	if GetAction(input, cfg.ActionSensitivityUp).JustPressed {
		step += cfg.Input.SensitivityStep
	}
	if step != 0 {
		SetLookSpeed(ecs, settings.LookXSpeed+step, settings.LookYSpeed+step)
		changed = true
	}

	if changed {
		log := logging.For("settings")
		log.Info().
			Bool("debug", settings.Debug).
			Bool("invertY", settings.InvertY).
			Float64("lookX", settings.LookXSpeed).
			Float64("lookY", settings.LookYSpeed).
			Msg("Settings changed")
		SaveCurrentSettings(settings)
	}
}

// SetLookSpeed updates the settings and every controller's look speed.
func SetLookSpeed(ecs *ecs.ECS, x, y float64) {
	settings := GetOrCreateSettings(ecs)
	settings.LookXSpeed = max(x, 0)
	settings.LookYSpeed = max(y, 0)

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		components.Character.Get(e).Controller.SetLookSpeed(settings.LookXSpeed, settings.LookYSpeed)
	})
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the config globals on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			InvertY:    cfg.Input.InvertY,
			LookXSpeed: cfg.Controller.LookXSpeed,
			LookYSpeed: cfg.Controller.LookYSpeed,
		})
	}

	ent, _ := components.Settings.First(ecs.World)
	return components.Settings.Get(ent)
}
