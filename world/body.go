package world

import (
	"math"

	"github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/controller"
	"github.com/automoto/fpcontroller/tags"
	"github.com/solarlune/resolv"
)

// Body is a character capsule living in a resolv space. Its footprint is a
// square object in the space; elevation and capsule shape are kept here.
type Body struct {
	obj *resolv.Object
	cfg config.WorldConfig

	elevation float64 // origin height in metres
	capsule   controller.Capsule
	yaw       float64
	grounded  bool
}

// NewBody places a body on the floor at (x, z) metres and adds its footprint to space.
func NewBody(space *resolv.Space, x, z, yaw float64, cfg config.WorldConfig) *Body {
	size := 2 * cfg.BodyRadius * cfg.UnitScale
	obj := resolv.NewObject((x-cfg.BodyRadius)*cfg.UnitScale, (z-cfg.BodyRadius)*cfg.UnitScale, size, size, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	space.Add(obj)

	return &Body{
		obj:       obj,
		cfg:       cfg,
		elevation: cfg.FloorHeight,
		yaw:       controller.WrapDegrees(yaw),
		grounded:  true,
	}
}

// Object returns the footprint object.
func (b *Body) Object() *resolv.Object { return b.obj }

func (b *Body) Grounded() bool              { return b.grounded }
func (b *Body) Capsule() controller.Capsule { return b.capsule }
func (b *Body) Yaw() float64                { return b.yaw }
func (b *Body) SetYaw(degrees float64)      { b.yaw = controller.WrapDegrees(degrees) }

// Bottom and Top are the capsule extents in metres.
func (b *Body) Bottom() float64 { return b.bottomAt(b.elevation) }
func (b *Body) Top() float64    { return b.Bottom() + b.capsule.Height }

func (b *Body) bottomAt(elevation float64) float64 {
	return elevation + b.capsule.Center.Y() - b.capsule.Height/2
}

// Position returns the body origin: the footprint centre at the current elevation.
func (b *Body) Position() controller.Vec3 {
	scale := b.cfg.UnitScale
	return controller.Vec3{
		(b.obj.X + b.obj.W/2) / scale,
		b.elevation,
		(b.obj.Y + b.obj.H/2) / scale,
	}
}

// SetCapsule replaces the collider shape. A grounded body keeps its bottom on
// the floor; an airborne one is only pushed up if the new shape reaches below it.
func (b *Body) SetCapsule(c controller.Capsule) {
	b.capsule = c
	floor := b.cfg.FloorHeight
	if b.grounded || b.Bottom() < floor {
		b.elevation = floor - c.Center.Y() + c.Height/2
	}
}

// Move slides the footprint along X then Z, stopping at the first wall or
// low ceiling, then moves vertically against the floor and any ceiling overhead.
func (b *Body) Move(d controller.Vec3) {
	scale := b.cfg.UnitScale
	b.sweep(d.X()*scale, 0)
	b.sweep(0, d.Z()*scale)
	b.moveVertical(d.Y())
}

// sweep splits a long axis move into cell-sized steps so thin walls are not skipped.
func (b *Body) sweep(dx, dy float64) {
	limit := float64(b.cfg.CellSize)
	if limit <= 0 {
		limit = math.Inf(1)
	}
	for dx != 0 || dy != 0 {
		sx := math.Max(-limit, math.Min(limit, dx))
		sy := math.Max(-limit, math.Min(limit, dy))
		mx, my := b.slide(sx, sy)
		if mx != sx || my != sy {
			return
		}
		dx -= sx
		dy -= sy
	}
}

// slide moves by at most (dx, dy) space units and returns the distance covered.
func (b *Body) slide(dx, dy float64) (float64, float64) {
	skin := b.cfg.Skin * b.cfg.UnitScale

	for _, tag := range []string{tags.ResolvSolid, tags.ResolvCeiling} {
		check := b.obj.Check(dx, dy, tag)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tag) {
			if tag == tags.ResolvCeiling && !b.blockedByCeiling(o) {
				continue
			}
			contact := check.ContactWithObject(o)
			switch {
			case dx > 0 && spansY(b.obj, o, skin) && contact.X() >= -skin && contact.X() < dx:
				dx = math.Max(contact.X(), 0)
			case dx < 0 && spansY(b.obj, o, skin) && contact.X() <= skin && contact.X() > dx:
				dx = math.Min(contact.X(), 0)
			case dy > 0 && spansX(b.obj, o, skin) && contact.Y() >= -skin && contact.Y() < dy:
				dy = math.Max(contact.Y(), 0)
			case dy < 0 && spansX(b.obj, o, skin) && contact.Y() <= skin && contact.Y() > dy:
				dy = math.Min(contact.Y(), 0)
			}
		}
	}

	b.obj.X += dx
	b.obj.Y += dy
	b.obj.Update()
	return dx, dy
}

// blockedByCeiling reports whether a ceiling hangs lower than the capsule top.
func (b *Body) blockedByCeiling(o *resolv.Object) bool {
	h, ok := CeilingHeight(o)
	return ok && h < b.Top()-b.cfg.Skin
}

// spansX and spansY report overlap deeper than skin on one axis.
func spansX(a, b *resolv.Object, skin float64) bool {
	return a.X < b.X+b.W-skin && a.X+a.W > b.X+skin
}

func spansY(a, b *resolv.Object, skin float64) bool {
	return a.Y < b.Y+b.H-skin && a.Y+a.H > b.Y+skin
}

func (b *Body) moveVertical(dy float64) {
	elevation := b.elevation + dy

	if dy > 0 {
		if limit, ok := b.ceilingOverhead(); ok {
			top := elevation + b.capsule.Center.Y() + b.capsule.Height/2
			if top > limit {
				elevation -= top - limit
			}
		}
	}

	floor := b.cfg.FloorHeight
	bottom := b.bottomAt(elevation)
	b.grounded = false
	switch {
	case dy <= 0 && bottom <= floor+b.cfg.Skin:
		elevation += floor - bottom
		b.grounded = true
	case bottom < floor:
		elevation += floor - bottom
	}
	b.elevation = elevation
}

// ceilingOverhead returns the lowest ceiling above the capsule top that
// overlaps the footprint.
func (b *Body) ceilingOverhead() (float64, bool) {
	check := b.obj.Check(0, 0, tags.ResolvCeiling)
	if check == nil {
		return 0, false
	}
	top := b.Top()
	skin := b.cfg.Skin * b.cfg.UnitScale
	lowest, found := math.Inf(1), false
	for _, o := range check.ObjectsByTags(tags.ResolvCeiling) {
		if !spansX(b.obj, o, skin) || !spansY(b.obj, o, skin) {
			continue
		}
		h, ok := CeilingHeight(o)
		if !ok || h < top-b.cfg.Skin {
			continue
		}
		if h < lowest {
			lowest, found = h, true
		}
	}
	return lowest, found
}

// Raycast samples the ray every RayStep metres and reports a hit on a wall
// footprint, on a ceiling at or above its underside, or below the floor.
func (b *Body) Raycast(origin, direction controller.Vec3, maxDistance float64) bool {
	if direction.Len() == 0 || maxDistance < 0 {
		return false
	}
	dir := direction.Normalize()
	step := b.cfg.RayStep
	if step <= 0 {
		step = maxDistance
	}

	for t := 0.0; ; t += step {
		if t > maxDistance {
			t = maxDistance
		}
		if b.solidAt(origin.Add(dir.Mul(t))) {
			return true
		}
		if t >= maxDistance {
			return false
		}
	}
}

func (b *Body) solidAt(p controller.Vec3) bool {
	if p.Y() < b.cfg.FloorHeight {
		return true
	}
	space := b.obj.Space
	if space == nil {
		return false
	}

	x, y := p.X()*b.cfg.UnitScale, p.Z()*b.cfg.UnitScale
	cell := space.Cell(space.WorldToSpace(x, y))
	if cell == nil {
		return false
	}
	for _, o := range cell.Objects {
		if o == b.obj || !containsPoint(o, x, y) {
			continue
		}
		if o.HasTags(tags.ResolvSolid) {
			return true
		}
		if h, ok := CeilingHeight(o); ok && p.Y() >= h {
			return true
		}
	}
	return false
}
