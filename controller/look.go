package controller

import (
	"github.com/automoto/fpcontroller/config"
	"github.com/go-gl/mathgl/mgl64"
)

// Orientation holds the look angles in degrees. Positive pitch looks down.
type Orientation struct {
	Pitch float64
	Yaw   float64
}

// applyLook turns the look delta into a clamped pitch and a wrapped yaw.
func applyLook(o Orientation, look Vec2, cfg *config.ControllerConfig) Orientation {
	o.Pitch = mgl64.Clamp(o.Pitch-look.Y()*cfg.LookYSpeed, -cfg.UpperLookLimit, cfg.LowerLookLimit)
	o.Yaw = WrapDegrees(o.Yaw + look.X()*cfg.LookXSpeed)
	return o
}
