package systems

import (
	"math"

	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// setCursorMode is swapped out in tests.
var setCursorMode = ebiten.SetCursorMode

// Cursor position last frame, used for mouse look deltas.
var (
	lastCursorX, lastCursorY int
	cursorTracked            bool
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	move, stickLook, ok := getAnalogSticks(gamepadIDs)
	if ok {
		gamepadUsed = true
	}
	input.Move = move

	mouse := mouseDelta(input.CursorCaptured)
	input.Look = mouse.Mul(cfg.Input.MouseSensitivity).Add(stickLook.Mul(cfg.Input.StickLookSpeed))

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// mouseDelta returns the cursor motion since the last frame with Y pointing
// up. Motion is only reported while the cursor is captured.
func mouseDelta(captured bool) controller.Vec2 {
	x, y := ebiten.CursorPosition()
	dx, dy := x-lastCursorX, y-lastCursorY
	tracked := cursorTracked
	lastCursorX, lastCursorY, cursorTracked = x, y, captured
	if !captured || !tracked {
		return controller.Vec2{}
	}
	return controller.Vec2{float64(dx), -float64(dy)}
}

// getAnalogSticks reads both sticks from the first gamepad pushed past the
// deadzone. Movement Y is forward and look Y is up.
func getAnalogSticks(gamepads []ebiten.GamepadID) (move, look controller.Vec2, active bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		lx := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal), deadzone)
		ly := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical), deadzone)
		rx := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal), deadzone)
		ry := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical), deadzone)
		if lx == 0 && ly == 0 && rx == 0 && ry == 0 {
			continue
		}
		return controller.Vec2{lx, -ly}, controller.Vec2{rx, -ry}, true
	}
	return
}

// applyDeadzone zeroes values inside the deadzone and rescales the rest so
// output still spans [-1, 1].
func applyDeadzone(v, deadzone float64) float64 {
	a := math.Abs(v)
	if a <= deadzone || deadzone >= 1 {
		return 0
	}
	return math.Copysign((math.Min(a, 1)-deadzone)/(1-deadzone), v)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}

// InputSource routes a controller's Start and Stop to the shared input
// component and the OS cursor.
type InputSource struct {
	ecs *ecs.ECS
}

func NewInputSource(e *ecs.ECS) *InputSource {
	return &InputSource{ecs: e}
}

func (s *InputSource) Enable() {
	input := getOrCreateInput(s.ecs)
	input.Enabled = true
	input.CursorCaptured = true
	setCursorMode(ebiten.CursorModeCaptured)
}

func (s *InputSource) Disable() {
	input := getOrCreateInput(s.ecs)
	input.Enabled = false
	input.CursorCaptured = false
	setCursorMode(ebiten.CursorModeVisible)
}
