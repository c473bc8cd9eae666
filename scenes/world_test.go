package scenes

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/fpcontroller/assets"
	"github.com/automoto/fpcontroller/components"
	"github.com/automoto/fpcontroller/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="3" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="walls" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="walls.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="walls" width="3" height="3">
  <data encoding="csv">
1,1,1,
1,0,1,
1,1,1
</data>
 </layer>
</map>
`

func count(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func TestNewWorldECS_BuildsLevel(t *testing.T) {
	e, err := NewWorldECS(assets.FS(), assets.LevelsDir, "tunnels")
	require.NoError(t, err)

	entry, ok := components.Level.First(e.World)
	require.True(t, ok)
	level := components.Level.Get(entry).CurrentLevel
	assert.Equal(t, "tunnels", level.Name)

	assert.Equal(t, len(level.Walls), count(e.World, tags.Wall))
	assert.Equal(t, len(level.Ceilings), count(e.World, tags.Ceiling))
	assert.Equal(t, 1, count(e.World, tags.Player))

	player, ok := tags.Player.First(e.World)
	require.True(t, ok)
	ch := components.Character.Get(player)
	assert.False(t, ch.Controller.Running())
	assert.False(t, ch.Controller.IsCrouching())

	spawn := level.Spawns[0]
	pos := ch.Body.Position()
	assert.InDelta(t, spawn.X, pos.X(), 1e-9)
	assert.InDelta(t, spawn.Z, pos.Z(), 1e-9)
	assert.InDelta(t, spawn.Yaw, ch.Controller.Orientation().Yaw, 1e-9)
	assert.True(t, ch.Body.Grounded())
}

func TestNewWorldECS_DefaultsToFirstLevel(t *testing.T) {
	e, err := NewWorldECS(assets.FS(), assets.LevelsDir, "")
	require.NoError(t, err)

	entry, _ := components.Level.First(e.World)
	assert.Equal(t, "courtyard", components.Level.Get(entry).CurrentLevel.Name)
}

func TestNewWorldECS_UnknownLevel(t *testing.T) {
	_, err := NewWorldECS(assets.FS(), assets.LevelsDir, "nowhere")
	assert.ErrorContains(t, err, "nowhere")
}

func TestNewWorldECS_NoSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/box.tmx": {Data: []byte(noSpawnTMX)}}

	_, err := NewWorldECS(fsys, "levels", "box")
	assert.ErrorIs(t, err, ErrNoSpawn)
}
