package controller

import "github.com/automoto/fpcontroller/config"

type ray struct {
	origin    Vec3
	direction Vec3
	distance  float64
}

// fakeBody records every call and moves without collision.
type fakeBody struct {
	grounded bool
	blocked  bool
	capsule  Capsule
	position Vec3
	yaw      float64

	moves    []Vec3
	capsules []Capsule
	rays     []ray
}

func (b *fakeBody) Grounded() bool { return b.grounded }

func (b *fakeBody) Move(d Vec3) {
	b.moves = append(b.moves, d)
	b.position = b.position.Add(d)
}

func (b *fakeBody) Capsule() Capsule { return b.capsule }

func (b *fakeBody) SetCapsule(c Capsule) {
	b.capsule = c
	b.capsules = append(b.capsules, c)
}

func (b *fakeBody) Raycast(origin, direction Vec3, maxDistance float64) bool {
	b.rays = append(b.rays, ray{origin: origin, direction: direction, distance: maxDistance})
	return b.blocked
}

func (b *fakeBody) Position() Vec3       { return b.position }
func (b *fakeBody) Yaw() float64         { return b.yaw }
func (b *fakeBody) SetYaw(deg float64)   { b.yaw = deg }
func (b *fakeBody) lastMove() Vec3       { return b.moves[len(b.moves)-1] }
func (b *fakeBody) lastCapsule() Capsule { return b.capsules[len(b.capsules)-1] }

type fakeCamera struct {
	pitch  float64
	offset Vec3
}

func (c *fakeCamera) SetPitch(deg float64) { c.pitch = deg }
func (c *fakeCamera) Offset() Vec3         { return c.offset }

type fakeInput struct {
	enabled  int
	disabled int
}

func (s *fakeInput) Enable()  { s.enabled++ }
func (s *fakeInput) Disable() { s.disabled++ }

func testConfig() config.ControllerConfig {
	return config.DefaultController()
}

func standCapsule() Capsule  { return Capsule{Height: 2} }
func crouchCapsule() Capsule { return Capsule{Height: 0.5, Center: Vec3{0, 0.5, 0}} }
