package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Wall    = donburi.NewTag().SetName("Wall")
	Ceiling = donburi.NewTag().SetName("Ceiling")
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvCeiling   = "ceiling"
	ResolvCharacter = "character"
)
