// Package leveldata parses TMX levels into collision geometry in metres.
// It has no dependencies on ebitengine, donburi or resolv, only plain data.
package leveldata

// Level holds all collision-relevant data parsed from a TMX level file.
// Tile columns map to world X and tile rows to world Z; one tile is one metre.
type Level struct {
	Name     string
	Walls    []Rect
	Ceilings []Ceiling
	Spawns   []Spawn
	Width    float64 // metres along X
	Depth    float64 // metres along Z
	TileSize int     // pixels per metre in the source map
}

// Rect is an axis-aligned footprint on the floor plane.
type Rect struct {
	X, Z, W, D float64
}

// Contains reports whether the point lies inside the footprint.
func (r Rect) Contains(x, z float64) bool {
	return x >= r.X && x < r.X+r.W && z >= r.Z && z < r.Z+r.D
}

// Ceiling is an overhang whose underside sits Height metres above the floor.
type Ceiling struct {
	Rect
	Height float64
}

// Spawn is a player start position with a facing yaw in degrees.
type Spawn struct {
	X, Z  float64
	Yaw   float64
	Index int
}
