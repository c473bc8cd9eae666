package components

import (
	"github.com/automoto/fpcontroller/controller"
	"github.com/yohamta/donburi"
)

// CameraData is the first-person view attached to a character. It sits
// EyeHeight metres above the body origin and only rotates on pitch.
type CameraData struct {
	Pitch     float64
	EyeHeight float64
}

func (c *CameraData) SetPitch(degrees float64) { c.Pitch = degrees }

func (c *CameraData) Offset() controller.Vec3 {
	return controller.Vec3{0, c.EyeHeight, 0}
}

var Camera = donburi.NewComponentType[CameraData]()
