package systems

import (
	"image/color"
	"math"

	"github.com/automoto/fpcontroller/components"
	cfg "github.com/automoto/fpcontroller/config"
	"github.com/automoto/fpcontroller/controller"
	"github.com/automoto/fpcontroller/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const mapMargin = 16

// mapView maps level metres onto the screen, X right and Z down.
type mapView struct {
	scale   float64 // pixels per metre
	originX float64
	originY float64
}

// newMapView fits the whole level into the screen, centred.
func newMapView(level *leveldata.Level, width, height int) mapView {
	w := float64(width - 2*mapMargin)
	h := float64(height - 2*mapMargin)
	if level.Width <= 0 || level.Depth <= 0 || w <= 0 || h <= 0 {
		return mapView{scale: 1}
	}
	scale := math.Min(w/level.Width, h/level.Depth)
	return mapView{
		scale:   scale,
		originX: (float64(width) - level.Width*scale) / 2,
		originY: (float64(height) - level.Depth*scale) / 2,
	}
}

func (v mapView) toScreen(x, z float64) (float32, float32) {
	return float32(v.originX + x*v.scale), float32(v.originY + z*v.scale)
}

func (v mapView) rect(screen *ebiten.Image, r leveldata.Rect, fill bool, clr color.Color) {
	x, y := v.toScreen(r.X, r.Z)
	w, h := float32(r.W*v.scale), float32(r.D*v.scale)
	if fill {
		vector.FillRect(screen, x, y, w, h, clr, false)
		return
	}
	vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
}

// DrawLevel renders a top-down map of the level with each character's
// footprint and facing.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	view := newMapView(level, screen.Bounds().Dx(), screen.Bounds().Dy())

	view.rect(screen, leveldata.Rect{W: level.Width, D: level.Depth}, false, cfg.White)
	for _, c := range level.Ceilings {
		view.rect(screen, c.Rect, true, cfg.DarkBlue)
	}
	for _, w := range level.Walls {
		view.rect(screen, w, true, cfg.WallGrey)
	}

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		drawCharacter(screen, view, components.Character.Get(e))
	})
}

func drawCharacter(screen *ebiten.Image, view mapView, ch *components.CharacterData) {
	pos := ch.Body.Position()
	radius := cfg.World.BodyRadius

	clr := cfg.LightGreen
	if ch.Controller.IsCrouching() || ch.Controller.IsTransitioning() {
		clr = cfg.Orange
	}
	view.rect(screen, leveldata.Rect{X: pos.X() - radius, Z: pos.Z() - radius, W: 2 * radius, D: 2 * radius}, true, clr)

	forward, _ := controller.YawBasis(ch.Body.Yaw())
	x0, y0 := view.toScreen(pos.X(), pos.Z())
	x1, y1 := view.toScreen(pos.X()+forward.X()*radius*3, pos.Z()+forward.Z()*radius*3)
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, cfg.Yellow, true)
}
