package controller

import "github.com/automoto/fpcontroller/config"

// applyVertical advances the persisted vertical speed by one frame. Jump only
// fires when grounded and gravity only accrues when airborne, so at most one
// of them applies.
func applyVertical(vertical float64, grounded, jumpRequested bool, dt float64, cfg *config.ControllerConfig) float64 {
	if !grounded {
		return vertical - cfg.Gravity*dt
	}
	if jumpRequested && cfg.CanJump {
		return cfg.JumpImpulse
	}
	return vertical
}
