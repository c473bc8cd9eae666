package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObstacleData links a wall or ceiling entity to its footprint in the space.
type ObstacleData struct {
	*resolv.Object
	Ceiling float64 // underside height in metres, zero for full-height walls
}

func (o *ObstacleData) IsCeiling() bool { return o.Ceiling > 0 }

var Obstacle = donburi.NewComponentType[ObstacleData]()
