package scenes

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/automoto/fpcontroller/assets"
	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/controller"
	"github.com/automoto/fpcontroller/logging"
	"github.com/automoto/fpcontroller/systems"
	"github.com/automoto/fpcontroller/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoSpawn = errors.New("no player spawn points defined in map")

// WorldScene runs one level with a single first-person character.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	once         sync.Once
}

// NewWorldScene creates a scene for the named level. An empty name picks
// the first bundled level.
func NewWorldScene(sc SceneChanger, levelName string) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelName: levelName}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	input, ok := components.Input.First(ws.ecs.World)
	if !ok || !components.Input.Get(input).Action(cfg.ActionNextLevel).JustPressed {
		return
	}
	if next := ws.nextLevel(); next != "" && ws.sceneChanger != nil {
		systems.SetPaused(ws.ecs, true)
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, next))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	log := logging.For("scene")

	e, err := NewWorldECS(assets.FS(), assets.LevelsDir, ws.levelName)
	if err != nil {
		log.Fatal().Err(err).Str("level", ws.levelName).Msg("Failed to build world")
	}
	ws.ecs = e

	entry, _ := components.Level.First(e.World)
	level := components.Level.Get(entry).CurrentLevel
	ws.levelName = level.Name
	log.Info().Str("level", level.Name).Int("walls", len(level.Walls)).Int("ceilings", len(level.Ceilings)).Msg("Level loaded")

	systems.SetPaused(e, false)
}

// nextLevel returns the level after the current one in name order.
func (ws *WorldScene) nextLevel() string {
	entry, ok := components.Level.First(ws.ecs.World)
	if !ok {
		return ""
	}
	data := components.Level.Get(entry)
	for i, name := range data.Names {
		if name == ws.levelName {
			return data.Names[(i+1)%len(data.Names)]
		}
	}
	return ""
}

// NewWorldECS wires the systems and renderers, loads the level and spawns
// the player at the first spawn point. The controller is left stopped.
func NewWorldECS(fsys fs.FS, dir, levelName string) (*ecs.ECS, error) {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with the pause check
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.HUD, systems.DrawDebug)
	e.AddRenderer(cfg.HUD, systems.DrawPause)

	// Create the level entity and load level data FIRST.
	level, err := factory.CreateLevel(e, fsys, dir, levelName)
	if err != nil {
		return nil, err
	}
	levelData := components.Level.Get(level).CurrentLevel
	if len(levelData.Spawns) == 0 {
		return nil, fmt.Errorf("level %s: %w", levelData.Name, ErrNoSpawn)
	}

	spaceEntry := factory.CreateSpace(e, levelData)
	space := components.Space.Get(spaceEntry)

	if _, err := factory.CreatePlayer(e, space, levelData.Spawns[0],
		controller.WithInputSource(systems.NewInputSource(e)),
	); err != nil {
		return nil, err
	}

	// Seed settings so saved look speeds reach the new controller.
	settings := systems.GetOrCreateSettings(e)
	systems.SetLookSpeed(e, settings.LookXSpeed, settings.LookYSpeed)
	return e, nil
}
