package components

import (
	"github.com/automoto/fpcontroller/controller"
	"github.com/automoto/fpcontroller/world"
	"github.com/yohamta/donburi"
)

// CharacterData binds a controller to the body it drives.
type CharacterData struct {
	Controller *controller.Controller
	Body       *world.Body
	SpawnIndex int
}

var Character = donburi.NewComponentType[CharacterData]()
