package systems

import (
	"github.com/automoto/fpcontroller/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steps every character controller by one fixed tick.
func UpdatePlayer(ecs *ecs.ECS) {
	StepCharacters(ecs, 1/float64(ebiten.TPS()))
}

// StepCharacters feeds this frame's input snapshot to each controller.
func StepCharacters(ecs *ecs.ECS, dt float64) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)
	state := input.Snapshot(settings.InvertY)

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		components.Character.Get(e).Controller.Step(dt, state)
	})
}
