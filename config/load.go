package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the base name of the optional tunables file.
const FileName = "fpcontroller"

// Load reads tunables from fpcontroller.json in configDir, applies FPC_*
// environment overrides and stores the result in the global config structs.
// A missing file leaves the defaults in place.
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	viper.SetEnvPrefix("FPC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return apply()
}

// BindFlags binds command-line flags onto their config keys so they win over
// the file and the environment.
func BindFlags(fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"log.level":     "log-level",
		"debug.overlay": "debug",
		"debug.level":   "level",
	}
	for key, name := range bindings {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}
	return nil
}

func setDefaults() {
	ctrl := DefaultController()
	viper.SetDefault("controller.canSprint", ctrl.CanSprint)
	viper.SetDefault("controller.canJump", ctrl.CanJump)
	viper.SetDefault("controller.canCrouch", ctrl.CanCrouch)
	viper.SetDefault("controller.walkSpeed", ctrl.WalkSpeed)
	viper.SetDefault("controller.sprintSpeed", ctrl.SprintSpeed)
	viper.SetDefault("controller.lookXSpeed", ctrl.LookXSpeed)
	viper.SetDefault("controller.lookYSpeed", ctrl.LookYSpeed)
	viper.SetDefault("controller.upperLookLimit", ctrl.UpperLookLimit)
	viper.SetDefault("controller.lowerLookLimit", ctrl.LowerLookLimit)
	viper.SetDefault("controller.jumpImpulse", ctrl.JumpImpulse)
	viper.SetDefault("controller.gravity", ctrl.Gravity)
	viper.SetDefault("controller.standHeight", ctrl.StandHeight)
	setVec3Default("controller.standCenter", ctrl.StandCenter)
	viper.SetDefault("controller.crouchHeight", ctrl.CrouchHeight)
	setVec3Default("controller.crouchCenter", ctrl.CrouchCenter)
	viper.SetDefault("controller.timeToCrouch", ctrl.TimeToCrouch)
	viper.SetDefault("controller.crouchEasing", ctrl.CrouchEasing)
	viper.SetDefault("controller.ceilingProbeDistance", ctrl.CeilingProbeDistance)

	world := DefaultWorld()
	viper.SetDefault("world.unitScale", world.UnitScale)
	viper.SetDefault("world.cellSize", world.CellSize)
	viper.SetDefault("world.floorHeight", world.FloorHeight)
	viper.SetDefault("world.bodyRadius", world.BodyRadius)
	viper.SetDefault("world.eyeHeight", world.EyeHeight)
	viper.SetDefault("world.rayStep", world.RayStep)
	viper.SetDefault("world.skin", world.Skin)

	viper.SetDefault("input.mouseSensitivity", 0.1)
	viper.SetDefault("input.stickLookSpeed", 1.5)
	viper.SetDefault("input.analogDeadzone", 0.25)
	viper.SetDefault("input.invertY", false)

	viper.SetDefault("log.level", "INFO")
	viper.SetDefault("debug.overlay", true)
	viper.SetDefault("debug.level", "")
}

func setVec3Default(key string, v Vec3) {
	viper.SetDefault(key+".x", v.X)
	viper.SetDefault(key+".y", v.Y)
	viper.SetDefault(key+".z", v.Z)
}

// tunables mirrors the nested sections of the config file.
type tunables struct {
	Controller ControllerConfig
	World      WorldConfig
}

func apply() error {
	var t tunables
	if err := viper.Unmarshal(&t); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	Controller = t.Controller
	World = t.World
	Input.MouseSensitivity = viper.GetFloat64("input.mouseSensitivity")
	Input.StickLookSpeed = viper.GetFloat64("input.stickLookSpeed")
	Input.AnalogDeadzone = viper.GetFloat64("input.analogDeadzone")
	Input.InvertY = viper.GetBool("input.invertY")
	Log.Level = viper.GetString("log.level")
	Debug.Overlay = viper.GetBool("debug.overlay")
	Debug.Level = viper.GetString("debug.level")
	return nil
}
