package systems

import (
	"encoding/json"

	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/logging"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the player preferences stored on disk
type SavedSettings struct {
	LookXSpeed   float64 `json:"lookXSpeed"`
	LookYSpeed   float64 `json:"lookYSpeed"`
	InvertY      bool    `json:"invertY"`
	DebugOverlay bool    `json:"debugOverlay"`
}

// itemStore is the part of gdata.Manager used here.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log := logging.For("persistence")
		log.Warn().Err(err).Msg("Could not initialize persistence")
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}
	log := logging.For("persistence")

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("Could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn().Err(err).Msg("Could not parse saved settings")
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}
	log := logging.For("persistence")

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Msg("Could not serialize settings")
		return err
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Warn().Err(err).Msg("Could not save settings")
		return err
	}
	log.Debug().Interface("settings", s).Msg("Settings saved")
	return nil
}

// SaveCurrentSettings saves the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		LookXSpeed:   s.LookXSpeed,
		LookYSpeed:   s.LookYSpeed,
		InvertY:      s.InvertY,
		DebugOverlay: s.Debug,
	})
}

// ApplySavedSettingsGlobal writes loaded settings over the config globals.
// Used during startup before the world scene builds its controllers.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.LookXSpeed >= 0 {
		cfg.Controller.LookXSpeed = saved.LookXSpeed
	}
	if saved.LookYSpeed >= 0 {
		cfg.Controller.LookYSpeed = saved.LookYSpeed
	}
	cfg.Input.InvertY = saved.InvertY
	cfg.Debug.Overlay = saved.DebugOverlay

	log := logging.For("persistence")
	log.Info().
		Float64("lookX", saved.LookXSpeed).
		Float64("lookY", saved.LookYSpeed).
		Bool("invertY", saved.InvertY).
		Msg("Applied saved settings")
}
