package components

import (
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/controller"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the analog axes polled this frame.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	Move controller.Vec2 // left stick, Y forward
	Look controller.Vec2 // mouse and right stick, Y up

	// Enabled gates what the character sees; set by the controller's
	// Start and Stop through the input source.
	Enabled        bool
	CursorCaptured bool
}

// Action computes the temporal state of an action from the two frames.
func (i *InputData) Action(action cfg.ActionID) ActionState {
	curr := i.Current[action]
	prev := i.Previous[action]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Snapshot builds the controller input for this frame. A disabled source
// yields the zero state.
func (i *InputData) Snapshot(invertY bool) controller.InputState {
	if !i.Enabled {
		return controller.InputState{}
	}

	move := i.Move
	if i.Current[cfg.ActionMoveForward] {
		move[1]++
	}
	if i.Current[cfg.ActionMoveBack] {
		move[1]--
	}
	if i.Current[cfg.ActionMoveRight] {
		move[0]++
	}
	if i.Current[cfg.ActionMoveLeft] {
		move[0]--
	}

	look := i.Look
	if invertY {
		look[1] = -look[1]
	}

	return controller.InputState{
		Movement:      controller.ClampLength(move, 1),
		Look:          look,
		SprintHeld:    i.Current[cfg.ActionSprint],
		JumpRequested: i.Action(cfg.ActionJump).JustPressed,
		CrouchHeld:    i.Current[cfg.ActionCrouch],
	}
}

var Input = donburi.NewComponentType[InputData]()
