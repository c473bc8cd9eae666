package config

import "image/color"

// Vec3 is a plain vector used by tunables that describe capsule geometry.
type Vec3 struct {
	X float64
	Y float64
	Z float64
}

// ControllerConfig contains every tunable of the first-person controller
type ControllerConfig struct {
	// Feature toggles
	CanSprint bool
	CanJump   bool
	CanCrouch bool

	// Movement (metres per second)
	WalkSpeed   float64
	SprintSpeed float64

	// Look (degrees per unit of look input)
	LookXSpeed     float64
	LookYSpeed     float64
	UpperLookLimit float64 // Max degrees above the horizon
	LowerLookLimit float64 // Max degrees below the horizon

	// Vertical motion
	JumpImpulse float64 // Upward speed set on jump
	Gravity     float64 // Downward acceleration, m/s²

	// Capsule geometry
	StandHeight  float64
	StandCenter  Vec3
	CrouchHeight float64
	CrouchCenter Vec3

	// Crouch transition
	TimeToCrouch         float64 // Seconds for a full transition
	CrouchEasing         string  // Name of the easing curve, see controller.EasingByName
	CeilingProbeDistance float64 // Metres probed above the camera before standing up
}

// WorldConfig contains collision world configuration
type WorldConfig struct {
	UnitScale   float64 // Collision space units per metre
	CellSize    int     // Collision space cell size in units
	FloorHeight float64 // Height of the floor plane in metres
	BodyRadius  float64 // Half width of the character footprint in metres
	EyeHeight   float64 // Camera height relative to the body origin
	RayStep     float64 // Sample spacing for overhead probes in metres
	Skin        float64 // Contact tolerance in metres
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool   // Draw the debug HUD
	Level   string // Level to load, empty selects the first one
}

// LogConfig contains logging options
type LogConfig struct {
	Level string
}

// Config holds general application configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Controller ControllerConfig
var World WorldConfig
var Debug DebugConfig
var Log LogConfig

// Colors used by the debug view
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue   = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Orange     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGreen = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Background = color.RGBA{R: 24, G: 24, B: 32, A: 255}
	Overlay    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	WallGrey   = color.RGBA{R: 110, G: 110, B: 120, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "fpcontroller",
	}

	Controller = DefaultController()

	World = DefaultWorld()

	Debug = DebugConfig{
		Overlay: true,
	}

	Log = LogConfig{
		Level: "INFO",
	}
}

// DefaultController returns the stock controller tunables.
func DefaultController() ControllerConfig {
	return ControllerConfig{
		CanSprint: true,
		CanJump:   true,
		CanCrouch: true,

		WalkSpeed:   3.0,
		SprintSpeed: 6.0,

		LookXSpeed:     2.0,
		LookYSpeed:     2.0,
		UpperLookLimit: 80.0,
		LowerLookLimit: 80.0,

		JumpImpulse: 8.0,
		Gravity:     30.0,

		StandHeight:  2.0,
		StandCenter:  Vec3{},
		CrouchHeight: 0.5,
		CrouchCenter: Vec3{Y: 0.5},

		TimeToCrouch:         0.25,
		CrouchEasing:         "linear",
		CeilingProbeDistance: 1.0,
	}
}

// DefaultWorld returns the stock collision world settings.
func DefaultWorld() WorldConfig {
	return WorldConfig{
		UnitScale:   32.0, // One 32px tile is one metre
		CellSize:    16,
		FloorHeight: 0.0,
		BodyRadius:  0.4,
		EyeHeight:   0.6,
		RayStep:     0.05,
		Skin:        0.001,
	}
}
