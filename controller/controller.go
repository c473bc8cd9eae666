// Package controller implements a first-person character controller. Each
// Step turns one input snapshot into camera pitch, body yaw, a velocity, an
// optional crouch transition and a single collision-resolved move of the body.
package controller

import (
	"fmt"
	"math"

	"github.com/automoto/fpcontroller/config"
	"github.com/rs/zerolog"
)

// Controller owns the per-character look, velocity and crouch state.
type Controller struct {
	cfg    config.ControllerConfig
	body   Body
	camera Camera
	input  InputSource
	log    zerolog.Logger

	orientation Orientation
	velocity    Velocity
	crouch      *Crouch
	running     bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle and crouch events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithInputSource sets the device enabled on Start and disabled on Stop.
func WithInputSource(src InputSource) Option {
	return func(c *Controller) {
		c.input = src
	}
}

// New validates cfg and binds the controller to its body and camera. The
// body is reset to the standing capsule and the controller starts stopped.
func New(cfg config.ControllerConfig, body Body, camera Camera, opts ...Option) (*Controller, error) {
	if body == nil {
		return nil, ErrNoBody
	}
	if camera == nil {
		return nil, ErrNoCamera
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	easing, err := EasingByName(cfg.CrouchEasing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	stand := Capsule{Height: cfg.StandHeight, Center: vec3(cfg.StandCenter)}
	crouch := Capsule{Height: cfg.CrouchHeight, Center: vec3(cfg.CrouchCenter)}

	c := &Controller{
		cfg:    cfg,
		body:   body,
		camera: camera,
		log:    zerolog.Nop(),
		crouch: NewCrouch(stand, crouch, cfg.TimeToCrouch, cfg.CeilingProbeDistance, easing),
	}
	for _, opt := range opts {
		opt(c)
	}

	body.SetCapsule(stand)
	c.orientation = Orientation{Yaw: WrapDegrees(body.Yaw())}
	camera.SetPitch(c.orientation.Pitch)
	return c, nil
}

// Validate checks the tunables for values the controller cannot run with.
func Validate(cfg config.ControllerConfig) error {
	nonNegative := map[string]float64{
		"walk speed":             cfg.WalkSpeed,
		"sprint speed":           cfg.SprintSpeed,
		"look x speed":           cfg.LookXSpeed,
		"look y speed":           cfg.LookYSpeed,
		"upper look limit":       cfg.UpperLookLimit,
		"lower look limit":       cfg.LowerLookLimit,
		"jump impulse":           cfg.JumpImpulse,
		"gravity":                cfg.Gravity,
		"ceiling probe distance": cfg.CeilingProbeDistance,
	}
	finite := map[string]float64{
		"stand height":    cfg.StandHeight,
		"crouch height":   cfg.CrouchHeight,
		"time to crouch":  cfg.TimeToCrouch,
		"stand center x":  cfg.StandCenter.X,
		"stand center y":  cfg.StandCenter.Y,
		"stand center z":  cfg.StandCenter.Z,
		"crouch center x": cfg.CrouchCenter.X,
		"crouch center y": cfg.CrouchCenter.Y,
		"crouch center z": cfg.CrouchCenter.Z,
	}
	for name, v := range nonNegative {
		finite[name] = v
	}
	for name, v := range finite {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, name, v)
		}
	}
	for name, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfig, name, v)
		}
	}
	if cfg.StandHeight <= 0 || cfg.CrouchHeight <= 0 {
		return fmt.Errorf("%w: capsule heights must be positive", ErrInvalidConfig)
	}
	if cfg.TimeToCrouch <= 0 {
		return fmt.Errorf("%w: time to crouch must be positive, got %v", ErrInvalidConfig, cfg.TimeToCrouch)
	}
	return nil
}

// Start enables the input source and resumes stepping. A transition that was
// in flight when Stop was called continues from where it left off.
func (c *Controller) Start() {
	if c.running {
		return
	}
	if c.input != nil {
		c.input.Enable()
	}
	c.running = true
	c.log.Info().Msg("controller started")
}

// Stop disables the input source and suspends stepping.
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	if c.input != nil {
		c.input.Disable()
	}
	c.running = false
	c.log.Info().Msg("controller stopped")
}

// Step runs one frame. It does nothing while stopped.
func (c *Controller) Step(dt float64, in InputState) {
	if !c.running {
		return
	}

	c.orientation = applyLook(c.orientation, in.Look, &c.cfg)
	c.camera.SetPitch(c.orientation.Pitch)
	c.body.SetYaw(c.orientation.Yaw)

	c.velocity.Horizontal = planarVelocity(in, c.orientation.Yaw, &c.cfg)

	grounded := c.body.Grounded()
	c.velocity.Vertical = applyVertical(c.velocity.Vertical, grounded, in.JumpRequested, dt, &c.cfg)
	if grounded && in.JumpRequested && c.cfg.CanJump {
		c.log.Debug().Float64("impulse", c.cfg.JumpImpulse).Msg("jump")
	}

	switch c.crouch.Update(dt, c.cfg.CanCrouch && in.CrouchHeld, c.body, c.camera) {
	case CrouchStarted:
		c.log.Debug().Stringer("phase", c.crouch.Phase()).Msg("crouch transition started")
	case CrouchDenied:
		c.log.Debug().Msg("stand up blocked overhead")
	case CrouchCompleted:
		c.log.Debug().Stringer("phase", c.crouch.Phase()).Msg("crouch transition finished")
	}

	integrate(c.body, c.velocity, dt)
}

func (c *Controller) Running() bool            { return c.running }
func (c *Controller) Orientation() Orientation { return c.orientation }
func (c *Controller) Velocity() Velocity       { return c.velocity }
func (c *Controller) IsCrouching() bool        { return c.crouch.IsCrouching() }
func (c *Controller) IsTransitioning() bool    { return c.crouch.IsTransitioning() }
func (c *Controller) CrouchPhase() CrouchPhase { return c.crouch.Phase() }

// Config returns a copy of the active tunables.
func (c *Controller) Config() config.ControllerConfig { return c.cfg }

// SetLookSpeed replaces the look sensitivities. Negative values are clamped to zero.
func (c *Controller) SetLookSpeed(x, y float64) {
	c.cfg.LookXSpeed = max(x, 0)
	c.cfg.LookYSpeed = max(y, 0)
}
