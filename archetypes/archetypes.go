package archetypes

import (
	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
		components.Camera,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Obstacle,
	)
	Ceiling = newArchetype(
		tags.Ceiling,
		components.Obstacle,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
