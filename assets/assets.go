// Package assets embeds the bundled levels.
package assets

import (
	"embed"
	"io/fs"
)

// LevelsDir is the directory inside FS holding the .tmx levels.
const LevelsDir = "levels"

//go:embed levels/*.tmx
var levelFS embed.FS

// FS returns the embedded asset filesystem.
func FS() fs.FS { return levelFS }
