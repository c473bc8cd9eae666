package controller

// InputState is the immutable per-frame input snapshot consumed by Step.
type InputState struct {
	Movement Vec2 // [-1,1]²: X strafes right, Y moves forward
	Look     Vec2 // device-scaled look delta: X yaws right, Y pitches up

	SprintHeld    bool // level-triggered
	JumpRequested bool // edge-triggered, true only on the press frame
	CrouchHeld    bool // level-triggered
}
