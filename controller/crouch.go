package controller

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// completionEpsilon absorbs rounding when many float steps should sum to the duration.
const completionEpsilon = 1e-9

// CrouchPhase is the externally visible crouch state.
type CrouchPhase int

const (
	Standing CrouchPhase = iota
	Crouching
	TransitioningToCrouch
	TransitioningToStand
)

func (p CrouchPhase) String() string {
	switch p {
	case Standing:
		return "standing"
	case Crouching:
		return "crouching"
	case TransitioningToCrouch:
		return "to-crouch"
	case TransitioningToStand:
		return "to-stand"
	default:
		return "unknown"
	}
}

// CrouchEvent reports what a crouch update did.
type CrouchEvent int

const (
	CrouchIdle CrouchEvent = iota
	CrouchStarted
	CrouchDenied
	CrouchAdvanced
	CrouchCompleted
)

// Crouch is the timed capsule transition between the stand and crouch shapes.
// A transition runs to completion once started; requests made meanwhile are dropped.
type Crouch struct {
	crouching     bool
	transitioning bool

	elapsed  float64
	duration float64
	source   Capsule
	target   Capsule

	stand  Capsule
	crouch Capsule
	probe  float64
	easing ease.TweenFunc
	tween  *gween.Tween
}

// NewCrouch returns a standing crouch state machine.
func NewCrouch(stand, crouch Capsule, duration, probe float64, easing ease.TweenFunc) *Crouch {
	if easing == nil {
		easing = ease.Linear
	}
	return &Crouch{
		stand:    stand,
		crouch:   crouch,
		duration: duration,
		probe:    probe,
		easing:   easing,
	}
}

func (c *Crouch) IsCrouching() bool    { return c.crouching }
func (c *Crouch) IsTransitioning() bool { return c.transitioning }

// Phase combines the two flags into a single state.
func (c *Crouch) Phase() CrouchPhase {
	switch {
	case c.transitioning && c.crouching:
		return TransitioningToStand
	case c.transitioning:
		return TransitioningToCrouch
	case c.crouching:
		return Crouching
	default:
		return Standing
	}
}

// Progress returns the linear fraction of the running transition, or 0 at rest.
func (c *Crouch) Progress() float64 {
	if !c.transitioning {
		return 0
	}
	return mgl64.Clamp(c.elapsed/c.duration, 0, 1)
}

// Request starts a transition toward the opposite shape. Standing up is only
// allowed when the overhead probe from the camera finds nothing. Requests
// during a transition are ignored.
func (c *Crouch) Request(body Body, camera Camera) CrouchEvent {
	if c.transitioning {
		return CrouchIdle
	}

	target := c.crouch
	if c.crouching {
		origin := body.Position().Add(camera.Offset())
		if body.Raycast(origin, Up, c.probe) {
			return CrouchDenied
		}
		target = c.stand
	}

	c.source = body.Capsule()
	c.target = target
	c.elapsed = 0
	c.transitioning = true
	c.tween = gween.New(0, 1, float32(c.duration), c.easing)
	return CrouchStarted
}

// Advance moves a running transition forward by dt and writes the
// interpolated shape to the body. On completion the target shape is written
// exactly.
func (c *Crouch) Advance(dt float64, body Body) CrouchEvent {
	if !c.transitioning {
		return CrouchIdle
	}

	c.elapsed += dt
	if c.elapsed >= c.duration-completionEpsilon {
		body.SetCapsule(c.target)
		c.crouching = !c.crouching
		c.transitioning = false
		c.elapsed = 0
		c.tween = nil
		return CrouchCompleted
	}

	t, _ := c.tween.Set(float32(c.elapsed))
	body.SetCapsule(Capsule{
		Height: Lerp(c.source.Height, c.target.Height, float64(t)),
		Center: LerpVec3(c.source.Center, c.target.Center, float64(t)),
	})
	return CrouchAdvanced
}

// Update runs one frame: a held request starts a transition when at rest and
// the same frame counts as the transition's first step.
func (c *Crouch) Update(dt float64, held bool, body Body, camera Camera) CrouchEvent {
	started := CrouchIdle
	if held && !c.transitioning {
		started = c.Request(body, camera)
		if started == CrouchDenied {
			return CrouchDenied
		}
	}

	ev := c.Advance(dt, body)
	if started == CrouchStarted && ev != CrouchCompleted {
		return CrouchStarted
	}
	return ev
}
