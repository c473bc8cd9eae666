package factory

import (
	"fmt"
	"io/fs"

	"github.com/automoto/fpcontroller/archetypes"
	"github.com/automoto/fpcontroller/components"
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads every level under dir and selects the named one. An
// empty name selects the first level in name order.
func CreateLevel(ecs *ecs.ECS, fsys fs.FS, dir, name string) (*donburi.Entry, error) {
	levels, names, err := leveldata.LoadAllLevels(fsys, dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = names[0]
	}
	current, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q (have %v)", name, names)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
		Levels:       levels,
		Names:        names,
	})
	return level, nil
}
