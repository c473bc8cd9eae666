package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/fpcontroller/components"
	"github.com/automoto/fpcontroller/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug prints the controller state of every character in the corner
// of the screen while the debug overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&b, "look %.2f/%.2f  invertY %t\n", settings.LookXSpeed, settings.LookYSpeed, settings.InvertY)

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		b.WriteString(debugLines(components.Character.Get(e), components.Camera.Get(e)))
	})

	face := fonts.Regular.Get()
	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		text.Draw(screen, line, face, 4, lineHeight*(i+1), color.White) //nolint:staticcheck
	}
}

func debugLines(ch *components.CharacterData, cam *components.CameraData) string {
	ctrl := ch.Controller
	o := ctrl.Orientation()
	v := ctrl.Velocity()
	pos := ch.Body.Position()
	capsule := ch.Body.Capsule()

	var b strings.Builder
	fmt.Fprintf(&b, "pos (%.2f, %.2f, %.2f)\n", pos.X(), pos.Y(), pos.Z())
	fmt.Fprintf(&b, "yaw %.1f  pitch %.1f  camera %.1f\n", o.Yaw, o.Pitch, cam.Pitch)
	fmt.Fprintf(&b, "vel (%.2f, %.2f, %.2f)\n", v.Horizontal.X(), v.Vertical, v.Horizontal.Z())
	fmt.Fprintf(&b, "grounded %t  running %t\n", ch.Body.Grounded(), ctrl.Running())
	fmt.Fprintf(&b, "crouch %s  capsule h=%.3f cy=%.3f\n", ctrl.CrouchPhase(), capsule.Height, capsule.Center.Y())
	return b.String()
}
