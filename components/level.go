package components

import (
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Levels       map[string]*leveldata.Level
	Names        []string // sorted level names
}

var Level = donburi.NewComponentType[LevelData]()
