package controller

import "github.com/automoto/fpcontroller/config"

// Velocity is split so the horizontal part can be rebuilt every frame while
// the vertical part carries over.
type Velocity struct {
	Horizontal Vec3 // Y is always zero
	Vertical   float64
}

// Combined returns the full velocity vector.
func (v Velocity) Combined() Vec3 {
	return v.Horizontal.Add(Up.Mul(v.Vertical))
}

func moveSpeed(sprintHeld bool, cfg *config.ControllerConfig) float64 {
	if cfg.CanSprint && sprintHeld {
		return cfg.SprintSpeed
	}
	return cfg.WalkSpeed
}

// planarVelocity maps the movement axis onto the yaw basis.
func planarVelocity(in InputState, yaw float64, cfg *config.ControllerConfig) Vec3 {
	speed := moveSpeed(in.SprintHeld, cfg)
	forward, right := YawBasis(yaw)
	return forward.Mul(in.Movement.Y() * speed).Add(right.Mul(in.Movement.X() * speed))
}
