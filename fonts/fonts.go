// Package fonts rasterises the HUD typefaces.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Large   FontName = "large"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts       = map[FontName]font.Face{}
	mu          sync.Mutex
	defaultOnce sync.Once
)

// LoadFontWithSize parses ttf and registers a face of the given point size.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	mu.Lock()
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	mu.Unlock()
	return nil
}

// LoadDefaults registers Go Regular as the Regular and Large faces.
func LoadDefaults() error {
	if err := LoadFontWithSize(Regular, goregular.TTF, 12); err != nil {
		return err
	}
	return LoadFontWithSize(Large, goregular.TTF, 20)
}

func getFont(name FontName) font.Face {
	defaultOnce.Do(func() {
		mu.Lock()
		empty := len(fonts) == 0
		mu.Unlock()
		if empty {
			if err := LoadDefaults(); err != nil {
				panic(err)
			}
		}
	})

	mu.Lock()
	defer mu.Unlock()
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
