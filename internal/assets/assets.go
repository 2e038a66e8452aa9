// Package assets caches models and fonts loaded from disk and maps colour
// names used in scene and config files to raylib colours.
package assets

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var manager *Manager

type Manager struct {
	models map[string]rl.Model
	fonts  map[string]rl.Font
}

// Color name mapping for scene files
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// ParseColor accepts a colour name or a "#RRGGBB" / "#RRGGBBAA" hex code.
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return rl.White, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.White, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return rl.Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ColorName returns the scene-file name for c, or its hex code.
func ColorName(c rl.Color) string {
	for name, known := range colorByName {
		if known == c {
			return name
		}
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func Init() {
	manager = &Manager{
		models: make(map[string]rl.Model),
		fonts:  make(map[string]rl.Font),
	}
}

func LoadModel(path string) rl.Model {
	if manager == nil {
		Init()
	}

	if model, exists := manager.models[path]; exists {
		return model
	}

	model := rl.LoadModel(path)
	manager.models[path] = model
	return model
}

// LoadFont loads a TTF/OTF font at the given base size, caching by path.
// Returns false if the file could not be loaded.
func LoadFont(path string, size int32) (rl.Font, bool) {
	if manager == nil {
		Init()
	}

	if font, exists := manager.fonts[path]; exists {
		return font, true
	}

	font := rl.LoadFontEx(path, size, nil)
	if !rl.IsFontValid(font) {
		return rl.GetFontDefault(), false
	}
	manager.fonts[path] = font
	return font, true
}

func Unload() {
	if manager == nil {
		return
	}

	for _, model := range manager.models {
		rl.UnloadModel(model)
	}

	for _, font := range manager.fonts {
		rl.UnloadFont(font)
	}

	manager.models = make(map[string]rl.Model)
	manager.fonts = make(map[string]rl.Font)
}
