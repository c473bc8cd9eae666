package systems

import (
	"testing"

	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/controller"
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/automoto/fpcontroller/systems/factory"
	"github.com/automoto/fpcontroller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:  "room",
		Width: 8,
		Depth: 8,
		Walls: []leveldata.Rect{
			{X: 0, Z: 0, W: 8, D: 1},
			{X: 0, Z: 7, W: 8, D: 1},
			{X: 0, Z: 0, W: 1, D: 8},
			{X: 7, Z: 0, W: 1, D: 8},
		},
		Ceilings: []leveldata.Ceiling{{Rect: leveldata.Rect{X: 5, Z: 1, W: 2, D: 2}, Height: 1.2}},
		Spawns:   []leveldata.Spawn{{X: 3, Z: 3}},
		TileSize: 32,
	}
}

type fakeStore struct {
	items map[string][]byte
	saves int
}

func (s *fakeStore) LoadItem(key string) ([]byte, error) { return s.items[key], nil }

func (s *fakeStore) SaveItem(key string, data []byte) error {
	if s.items == nil {
		s.items = map[string][]byte{}
	}
	s.items[key] = data
	s.saves++
	return nil
}

// newTestWorld builds an ECS with one stopped character and no cursor side effects.
func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()

	var modes []ebiten.CursorModeType
	prev := setCursorMode
	setCursorMode = func(m ebiten.CursorModeType) { modes = append(modes, m) }
	t.Cleanup(func() { setCursorMode = prev })

	prevStore := store
	store = nil
	t.Cleanup(func() { store = prevStore })

	e := ecs.NewECS(donburi.NewWorld())
	level := testLevel()
	space := components.Space.Get(factory.CreateSpace(e, level))
	player, err := factory.CreatePlayer(e, space, level.Spawns[0], controller.WithInputSource(NewInputSource(e)))
	require.NoError(t, err)
	return e, player
}

func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

func TestFactory_CreatesObstacles(t *testing.T) {
	e, _ := newTestWorld(t)

	walls, ceilings := 0, 0
	tags.Wall.Each(e.World, func(*donburi.Entry) { walls++ })
	tags.Ceiling.Each(e.World, func(en *donburi.Entry) {
		ceilings++
		assert.True(t, components.Obstacle.Get(en).IsCeiling())
	})
	assert.Equal(t, 4, walls)
	assert.Equal(t, 1, ceilings)
}

func TestSetPaused_StopsAndStartsControllers(t *testing.T) {
	e, player := newTestWorld(t)
	ctrl := components.Character.Get(player).Controller
	input := getOrCreateInput(e)

	SetPaused(e, false)
	assert.True(t, ctrl.Running())
	assert.True(t, input.Enabled)
	assert.True(t, input.CursorCaptured)

	SetPaused(e, true)
	assert.False(t, ctrl.Running())
	assert.False(t, input.Enabled)
	assert.True(t, GetOrCreatePause(e).IsPaused)
}

func TestUpdatePause_TogglesOnPress(t *testing.T) {
	e, player := newTestWorld(t)
	ctrl := components.Character.Get(player).Controller
	SetPaused(e, false)

	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, ctrl.Running())

	// held, no new press
	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.False(t, ctrl.Running())

	press(e)
	press(e, cfg.ActionPause)
	UpdatePause(e)
	assert.True(t, ctrl.Running())
}

func TestWithPauseCheck(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	calls := 0
	sys := WithPauseCheck(func(*ecs.ECS) { calls++ })

	sys(e)
	GetOrCreatePause(e).IsPaused = true
	sys(e)
	assert.Equal(t, 1, calls)
}

func TestGetPauseHint(t *testing.T) {
	assert.Equal(t, "Esc to resume", getPauseHint(components.InputKeyboard))
	assert.Equal(t, "Start to resume", getPauseHint(components.InputGamepad))
}

func TestStepCharacters_MovesForward(t *testing.T) {
	e, player := newTestWorld(t)
	ch := components.Character.Get(player)
	SetPaused(e, false)

	press(e, cfg.ActionMoveForward)
	StepCharacters(e, 0.1)

	// yaw 0 faces +Z
	pos := ch.Body.Position()
	assert.InDelta(t, 3, pos.X(), 1e-9)
	assert.InDelta(t, 3+cfg.Controller.WalkSpeed*0.1, pos.Z(), 1e-6)
}

func TestStepCharacters_IgnoresInputWhenStopped(t *testing.T) {
	e, player := newTestWorld(t)
	ch := components.Character.Get(player)

	press(e, cfg.ActionMoveForward)
	StepCharacters(e, 0.1)

	assert.InDelta(t, 3, ch.Body.Position().Z(), 1e-9)
}

func TestStepCharacters_CrouchesOnHold(t *testing.T) {
	e, player := newTestWorld(t)
	ch := components.Character.Get(player)
	SetPaused(e, false)

	for i := 0; i < 15; i++ {
		press(e, cfg.ActionCrouch)
		StepCharacters(e, 1.0/60)
	}
	assert.True(t, ch.Controller.IsCrouching())
	assert.Equal(t, cfg.Controller.CrouchHeight, ch.Body.Capsule().Height)
}

func TestUpdateSettings_Hotkeys(t *testing.T) {
	e, player := newTestWorld(t)
	fs := &fakeStore{}
	store = fs
	settings := GetOrCreateSettings(e)
	startX := settings.LookXSpeed
	debug := settings.Debug

	press(e, cfg.ActionToggleDebug)
	UpdateSettings(e)
	assert.Equal(t, !debug, settings.Debug)

	press(e, cfg.ActionInvertY)
	UpdateSettings(e)
	assert.True(t, settings.InvertY)

	press(e, cfg.ActionSensitivityUp)
	UpdateSettings(e)
	assert.InDelta(t, startX+cfg.Input.SensitivityStep, settings.LookXSpeed, 1e-12)
	got := components.Character.Get(player).Controller.Config().LookXSpeed
	assert.InDelta(t, settings.LookXSpeed, got, 1e-12)

	press(e)
	UpdateSettings(e)
	assert.Equal(t, 3, fs.saves)

	saved, err := LoadSettings()
	require.NoError(t, err)
	assert.True(t, saved.InvertY)
	assert.InDelta(t, settings.LookXSpeed, saved.LookXSpeed, 1e-12)
}

func TestSetLookSpeed_ClampsAtZero(t *testing.T) {
	e, _ := newTestWorld(t)

	SetLookSpeed(e, -3, 1)
	settings := GetOrCreateSettings(e)
	assert.Equal(t, 0.0, settings.LookXSpeed)
	assert.Equal(t, 1.0, settings.LookYSpeed)
}

func TestInvertYAppliedToSnapshot(t *testing.T) {
	e, player := newTestWorld(t)
	ch := components.Character.Get(player)
	SetPaused(e, false)
	GetOrCreateSettings(e).InvertY = true

	press(e)
	getOrCreateInput(e).Look = controller.Vec2{0, 1}
	StepCharacters(e, 1.0/60)

	// look up inverted pitches down, which is positive
	assert.Greater(t, ch.Controller.Orientation().Pitch, 0.0)
}

func TestApplyDeadzone(t *testing.T) {
	assert.Equal(t, 0.0, applyDeadzone(0.2, 0.25))
	assert.Equal(t, 0.0, applyDeadzone(-0.25, 0.25))
	assert.InDelta(t, 1.0, applyDeadzone(1, 0.25), 1e-12)
	assert.InDelta(t, -0.5, applyDeadzone(-0.625, 0.25), 1e-12)
	assert.Equal(t, 0.0, applyDeadzone(0.9, 1))
}

func TestMapView_FitsLevel(t *testing.T) {
	v := newMapView(testLevel(), 200, 100)

	// height limited: (100-32)/8
	assert.InDelta(t, 8.5, v.scale, 1e-12)
	x, y := v.toScreen(0, 0)
	assert.InDelta(t, 66, x, 1e-4)
	assert.InDelta(t, 16, y, 1e-4)
	x, y = v.toScreen(8, 8)
	assert.InDelta(t, 134, x, 1e-4)
	assert.InDelta(t, 84, y, 1e-4)
}

func TestDebugLines(t *testing.T) {
	_, player := newTestWorld(t)

	out := debugLines(components.Character.Get(player), components.Camera.Get(player))
	assert.Contains(t, out, "pos (3.00, ")
	assert.Contains(t, out, "crouch standing")
	assert.Contains(t, out, "grounded true")
}
