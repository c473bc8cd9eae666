package assets

import (
	"testing"

	"github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, names, err := leveldata.LoadAllLevels(FS(), LevelsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"courtyard", "tunnels"}, names)

	for _, name := range names {
		level := levels[name]
		assert.NotEmpty(t, level.Walls, name)
		assert.NotEmpty(t, level.Ceilings, name)
		assert.NotEmpty(t, level.Spawns, name)
	}

	tunnels := levels["tunnels"]
	assert.Equal(t, 20.0, tunnels.Width)
	assert.Equal(t, 15.0, tunnels.Depth)
	assert.InDelta(t, 1.2, tunnels.Ceilings[0].Height, 1e-9)
	assert.Equal(t, 0, tunnels.Spawns[0].Index)
	assert.InDelta(t, 3.5, tunnels.Spawns[0].X, 1e-9)
}

// Every bundled ceiling is either a crawl space, low enough that the
// stand-up check from a crouched camera hits it, or clear of a standing body.
func TestEmbeddedCeilingsAreCrawlSpacesOrClear(t *testing.T) {
	levels, names, err := leveldata.LoadAllLevels(FS(), LevelsDir)
	require.NoError(t, err)

	ctrl := config.DefaultController()
	world := config.DefaultWorld()
	crouchElevation := world.FloorHeight - ctrl.CrouchCenter.Y + ctrl.CrouchHeight/2
	crouchTop := world.FloorHeight + ctrl.CrouchHeight
	standCheckReach := crouchElevation + world.EyeHeight + ctrl.CeilingProbeDistance
	standTop := world.FloorHeight + ctrl.StandHeight

	for _, name := range names {
		for i, c := range levels[name].Ceilings {
			assert.Greater(t, c.Height, crouchTop, "%s ceiling %d", name, i)
			crawl := c.Height <= standCheckReach
			clear := c.Height >= standTop
			assert.True(t, crawl || clear, "%s ceiling %d at %.2f m lets a crouched body stand into it", name, i, c.Height)
		}
	}
}
