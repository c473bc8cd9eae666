package factory

import (
	"fmt"

	"github.com/automoto/fpcontroller/archetypes"
	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/controller"
	"github.com/automoto/fpcontroller/logging"
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/automoto/fpcontroller/world"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places a body at spawn and binds a stopped controller to it.
// The entry is removed again if the controller rejects the configuration.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, spawn leveldata.Spawn, opts ...controller.Option) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	body := world.NewBody(space, spawn.X, spawn.Z, spawn.Yaw, cfg.World)
	body.Object().Data = player

	components.Camera.SetValue(player, components.CameraData{EyeHeight: cfg.World.EyeHeight})
	camera := components.Camera.Get(player)

	opts = append([]controller.Option{controller.WithLogger(logging.For("controller"))}, opts...)
	ctrl, err := controller.New(cfg.Controller, body, camera, opts...)
	if err != nil {
		space.Remove(body.Object())
		ecs.World.Remove(player.Entity())
		return nil, fmt.Errorf("create player at spawn %d: %w", spawn.Index, err)
	}

	components.Character.SetValue(player, components.CharacterData{
		Controller: ctrl,
		Body:       body,
		SpawnIndex: spawn.Index,
	})
	return player, nil
}
