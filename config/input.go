package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical controller action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionSprint
	ActionJump
	ActionCrouch
	ActionPause
	ActionToggleDebug
	ActionInvertY
	ActionSensitivityDown
	ActionSensitivityUp
	ActionNextLevel
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Look units per pixel of mouse movement
	MouseSensitivity float64
	// Look units per frame at full right stick deflection
	StickLookSpeed float64
	// Invert vertical look
	InvertY bool
	// Sensitivity change per keypress
	SensitivityStep float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:   0.25,
		MouseSensitivity: 0.1,
		StickLookSpeed:   1.5,
		SensitivityStep:  0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionSprint: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// Left stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftStick,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionCrouch: {
				Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyControlLeft},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionInvertY: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionSensitivityDown: {
				Keys: []ebiten.Key{ebiten.KeyBracketLeft},
			},
			ActionSensitivityUp: {
				Keys: []ebiten.Key{ebiten.KeyBracketRight},
			},
			ActionNextLevel: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// Select / Back button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
		},
	}
}
