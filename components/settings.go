package components

import "github.com/yohamta/donburi"

// SettingsData holds the player preferences that can change at runtime.
type SettingsData struct {
	Debug      bool
	InvertY    bool
	LookXSpeed float64
	LookYSpeed float64
}

var Settings = donburi.NewComponentType[SettingsData]()
