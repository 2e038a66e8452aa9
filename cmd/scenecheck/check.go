package main

import (
	"strings"

	"examine3d/internal/config"
	"examine3d/internal/examine"
	"examine3d/internal/world"

	"github.com/rs/zerolog"
)

// nameSet answers HasSound and HasFont from the names configured in
// examine.cfg.json.
type nameSet map[string]bool

func newNameSet(m map[string]string) nameSet {
	s := make(nameSet, len(m))
	for name := range m {
		s[strings.ToLower(name)] = true
	}
	return s
}

func (s nameSet) has(name string) bool      { return s[strings.ToLower(name)] }
func (s nameSet) HasSound(name string) bool { return s.has(name) }
func (s nameSet) HasFont(name string) bool  { return s.has(name) }

// PlaySound satisfies examine.SoundPlayer; nothing is played here.
func (s nameSet) PlaySound(string) {}

type sceneReport struct {
	Items    int
	Problems []error
}

func checkScene(path string, cfg config.Config, log zerolog.Logger) (sceneReport, error) {
	w := world.New(log)
	w.Models = world.NullModels{}
	if _, err := w.LoadScene(path); err != nil {
		return sceneReport{}, err
	}

	svc := &examine.Services{
		Sounds: newNameSet(cfg.Audio.Sounds),
		Fonts:  newNameSet(cfg.UI.Fonts),
		Log:    zerolog.Nop(),
	}
	items, _ := examine.BindScene(w.Scene, svc)
	w.Scene.Start()

	report := sceneReport{Items: len(items)}
	for _, it := range items {
		report.Problems = append(report.Problems, it.Problems()...)
	}
	return report, nil
}
