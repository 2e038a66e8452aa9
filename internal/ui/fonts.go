package ui

import (
	"sort"
	"strings"

	"examine3d/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// FontLoader loads a font file at the given base size.
type FontLoader func(path string, size int32) (rl.Font, bool)

// Fonts maps the font names used by examinable items to loaded fonts.
// Names are case-insensitive.
type Fonts struct {
	load  FontLoader
	size  int32
	fonts map[string]rl.Font
	log   zerolog.Logger
}

// NewFonts returns a registry that loads through the asset manager.
func NewFonts(size int32, log zerolog.Logger) *Fonts {
	return newFonts(assets.LoadFont, size, log)
}

func newFonts(load FontLoader, size int32, log zerolog.Logger) *Fonts {
	if size <= 0 {
		size = 48
	}
	return &Fonts{
		load:  load,
		size:  size,
		fonts: make(map[string]rl.Font),
		log:   log,
	}
}

// Load registers every name/path pair that loads, logging the rest.
func (f *Fonts) Load(paths map[string]string) {
	names := make([]string, 0, len(paths))
	for name := range paths {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		font, ok := f.load(paths[name], f.size)
		if !ok {
			f.log.Warn().Str("font", name).Str("path", paths[name]).Msg("failed to load font")
			continue
		}
		f.fonts[strings.ToLower(name)] = font
		f.log.Debug().Str("font", name).Msg("loaded font")
	}
}

func (f *Fonts) HasFont(name string) bool {
	_, ok := f.fonts[strings.ToLower(name)]
	return ok
}

// Font returns the named font, or raylib's default font when the name is
// empty or unknown.
func (f *Fonts) Font(name string) rl.Font {
	if font, ok := f.fonts[strings.ToLower(name)]; ok {
		return font
	}
	return rl.GetFontDefault()
}

// Names lists the registered font names in sorted order.
func (f *Fonts) Names() []string {
	out := make([]string, 0, len(f.fonts))
	for name := range f.fonts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
