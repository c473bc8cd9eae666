package main

import (
	"image"
	"os"

	"github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/fonts"
	"github.com/automoto/fpcontroller/logging"
	"github.com/automoto/fpcontroller/scenes"
	"github.com/automoto/fpcontroller/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, config.Debug.Level)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flags := pflag.CommandLine
	configDir := flags.String("config-dir", ".", "directory containing "+config.FileName+".json")
	flags.String("log-level", config.Log.Level, "log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	debug := flags.Bool("debug", config.Debug.Overlay, "show the debug overlay")
	flags.String("level", "", "level to load (defaults to the first bundled level)")
	pflag.Parse()

	if err := config.BindFlags(flags); err != nil {
		log := logging.Setup(config.Log.Level, os.Stderr)
		log.Fatal().Err(err).Msg("Invalid flags")
	}
	loadErr := config.Load(*configDir)

	log := logging.Setup(config.Log.Level, os.Stderr)
	if loadErr != nil {
		log.Fatal().Err(loadErr).Str("dir", *configDir).Msg("Failed to load config")
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(config.FileName); err == nil {
		if saved, err := systems.LoadSettings(); err == nil && saved != nil {
			systems.ApplySavedSettingsGlobal(saved)
		}
	}
	if flags.Changed("debug") {
		config.Debug.Overlay = *debug
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load fonts")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("Game exited with error")
	}
}
