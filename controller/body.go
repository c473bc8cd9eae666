package controller

// Capsule is the collider shape of the character. Center is relative to the
// body origin.
type Capsule struct {
	Height float64
	Center Vec3
}

// Body is the physics-side collaborator that owns position, collision and the
// collider geometry.
type Body interface {
	// Grounded reports whether the last Move left the capsule resting on a
	// walkable surface.
	Grounded() bool
	// Move sweeps the capsule by displacement and resolves collisions.
	Move(displacement Vec3)
	Capsule() Capsule
	SetCapsule(Capsule)
	// Raycast reports whether anything lies within maxDistance of origin along direction.
	Raycast(origin, direction Vec3, maxDistance float64) bool
	Position() Vec3
	Yaw() float64
	SetYaw(degrees float64)
}

// Camera receives the look pitch. Offset is the camera position relative to
// the body origin and is used as the overhead probe origin.
type Camera interface {
	SetPitch(degrees float64)
	Offset() Vec3
}

// InputSource is a device the controller enables on Start and disables on Stop.
type InputSource interface {
	Enable()
	Disable()
}
