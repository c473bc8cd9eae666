package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	WallLayer     = "walls"
	CeilingGroup  = "Ceilings"
	SpawnGroup    = "PlayerSpawn"
	heightProp    = "height"
	yawProp       = "yaw"
	spawnIndexKey = "spawnIndex"
)

// LoadLevel parses a TMX file and returns its walls, ceilings and spawn
// points. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile width must be positive", tmxPath)
	}

	unit := float64(levelMap.TileWidth)
	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    float64(levelMap.Width),
		Depth:    float64(levelMap.Height*levelMap.TileHeight) / unit,
		TileSize: levelMap.TileWidth,
	}
	depthPerRow := float64(levelMap.TileHeight) / unit

	// Every non-empty tile of the wall layer is a full-height wall
	for _, layer := range levelMap.Layers {
		if layer.Name != WallLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.Walls = append(level.Walls, Rect{
					X: float64(x),
					Z: float64(y) * depthPerRow,
					W: 1,
					D: depthPerRow,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case CeilingGroup:
			for _, o := range og.Objects {
				height := o.Properties.GetFloat(heightProp)
				if height <= 0 {
					return nil, fmt.Errorf("load TMX %s: ceiling %d needs a positive %q property", tmxPath, o.ID, heightProp)
				}
				level.Ceilings = append(level.Ceilings, Ceiling{
					Rect: Rect{
						X: o.X / unit,
						Z: o.Y / unit,
						W: o.Width / unit,
						D: o.Height / unit,
					},
					Height: height,
				})
			}
		case SpawnGroup:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, Spawn{
					X:     o.X / unit,
					Z:     o.Y / unit,
					Yaw:   o.Properties.GetFloat(yawProp),
					Index: o.Properties.GetInt(spawnIndexKey),
				})
			}
		}
	}

	sort.SliceStable(level.Spawns, func(i, j int) bool {
		return level.Spawns[i].Index < level.Spawns[j].Index
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// one, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
