// Package world hosts the character in a resolv collision space. The floor
// plane X/Z maps onto the space's X/Y axes; elevation is tracked separately.
package world

import (
	"math"

	"github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/automoto/fpcontroller/tags"
	"github.com/solarlune/resolv"
)

// CeilingData is attached to ceiling objects as their Data.
type CeilingData struct {
	Height float64 // underside elevation in metres
}

// NewSpace creates a space sized to the level.
func NewSpace(level *leveldata.Level, cfg config.WorldConfig) *resolv.Space {
	w := int(math.Ceil(level.Width * cfg.UnitScale))
	h := int(math.Ceil(level.Depth * cfg.UnitScale))
	return resolv.NewSpace(w, h, cfg.CellSize, cfg.CellSize)
}

// Build adds the level's walls and ceilings to space and returns the created
// objects.
func Build(space *resolv.Space, level *leveldata.Level, scale float64) (walls, ceilings []*resolv.Object) {
	for _, r := range level.Walls {
		obj := newRectObject(r, scale, tags.ResolvSolid)
		space.Add(obj)
		walls = append(walls, obj)
	}
	for _, c := range level.Ceilings {
		obj := newRectObject(c.Rect, scale, tags.ResolvCeiling)
		obj.Data = &CeilingData{Height: c.Height}
		space.Add(obj)
		ceilings = append(ceilings, obj)
	}
	return walls, ceilings
}

func newRectObject(r leveldata.Rect, scale float64, tag string) *resolv.Object {
	x, y := r.X*scale, r.Z*scale
	w, h := r.W*scale, r.D*scale
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	return obj
}

// CeilingHeight returns the underside elevation of a ceiling object.
func CeilingHeight(obj *resolv.Object) (float64, bool) {
	data, ok := obj.Data.(*CeilingData)
	if !ok {
		return 0, false
	}
	return data.Height, true
}

func containsPoint(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}
