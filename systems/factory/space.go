package factory

import (
	"github.com/automoto/fpcontroller/archetypes"
	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/automoto/fpcontroller/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds a collision space covering the level and fills it with
// wall and ceiling entities.
func CreateSpace(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := world.NewSpace(level, cfg.World)
	components.Space.Set(space, spaceData)

	walls, ceilings := world.Build(spaceData, level, cfg.World.UnitScale)
	for _, obj := range walls {
		createObstacle(ecs, obj, 0)
	}
	for _, obj := range ceilings {
		h, _ := world.CeilingHeight(obj)
		createObstacle(ecs, obj, h)
	}
	return space
}

func createObstacle(ecs *ecs.ECS, obj *resolv.Object, ceiling float64) *donburi.Entry {
	a := archetypes.Wall
	if ceiling > 0 {
		a = archetypes.Ceiling
	}
	e := a.Spawn(ecs)
	components.Obstacle.SetValue(e, components.ObstacleData{Object: obj, Ceiling: ceiling})
	return e
}
