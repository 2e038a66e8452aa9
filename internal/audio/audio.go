// Package audio plays the short pickup and drop sounds used while examining
// items. Sounds are addressed by handle, the names used in examine.cfg.json
// and on Examinable components.
package audio

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// device is the part of the raylib audio API the bank needs.
type device interface {
	Init()
	Close()
	Load(path string) (rl.Sound, bool)
	Unload(s rl.Sound)
	Play(s rl.Sound, volume float32)
	Stop(s rl.Sound)
	IsPlaying(s rl.Sound) bool
}

type raylibDevice struct{}

func (raylibDevice) Init()  { rl.InitAudioDevice() }
func (raylibDevice) Close() { rl.CloseAudioDevice() }

func (raylibDevice) Load(path string) (rl.Sound, bool) {
	s := rl.LoadSound(path)
	return s, rl.IsSoundValid(s)
}

func (raylibDevice) Unload(s rl.Sound) { rl.UnloadSound(s) }

func (raylibDevice) Play(s rl.Sound, volume float32) {
	rl.SetSoundVolume(s, volume)
	rl.SetSoundPan(s, 0.5)
	rl.PlaySound(s)
}

func (raylibDevice) Stop(s rl.Sound)           { rl.StopSound(s) }
func (raylibDevice) IsPlaying(s rl.Sound) bool { return rl.IsSoundPlaying(s) }

type source struct {
	path  string
	sound rl.Sound
}

// Bank holds loaded sounds keyed by handle. Handles are case-insensitive
// because viper lowercases the keys of the sounds map.
type Bank struct {
	mu      sync.Mutex
	dev     device
	log     zerolog.Logger
	sources map[string]*source
	enabled bool
	volume  float32
	open    bool
}

// NewBank returns a bank backed by the raylib audio device. Call Init
// before loading sounds.
func NewBank(log zerolog.Logger) *Bank {
	return newBank(raylibDevice{}, log)
}

func newBank(dev device, log zerolog.Logger) *Bank {
	return &Bank{
		dev:     dev,
		log:     log,
		sources: make(map[string]*source),
		enabled: true,
		volume:  1,
	}
}

func normalize(handle string) string {
	return strings.ToLower(strings.TrimSpace(handle))
}

// Init opens the audio device.
func (b *Bank) Init() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.open {
		return
	}
	b.dev.Init()
	b.open = true
}

// Close unloads every sound and shuts the device down.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, src := range b.sources {
		b.dev.Unload(src.sound)
	}
	b.sources = make(map[string]*source)
	if b.open {
		b.dev.Close()
		b.open = false
	}
}

// SetEnabled mutes or unmutes playback. Muting stops sounds already playing.
func (b *Bank) SetEnabled(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.enabled = on
	if on {
		return
	}
	for _, src := range b.sources {
		if b.dev.IsPlaying(src.sound) {
			b.dev.Stop(src.sound)
		}
	}
}

// SetVolume sets the playback volume, clamped to [0, 1].
func (b *Bank) SetVolume(v float32) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	b.mu.Lock()
	b.volume = v
	b.mu.Unlock()
}

// Load reads the sound at path and registers it under handle, replacing
// any sound already registered there.
func (b *Bank) Load(handle, path string) error {
	key := normalize(handle)
	if key == "" {
		return fmt.Errorf("sound %q: empty handle", path)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.open {
		return fmt.Errorf("sound %q: audio device not initialized", handle)
	}
	s, ok := b.dev.Load(path)
	if !ok {
		return fmt.Errorf("sound %q: failed to load %s", handle, path)
	}
	if old, exists := b.sources[key]; exists {
		b.dev.Unload(old.sound)
	}
	b.sources[key] = &source{path: path, sound: s}
	return nil
}

// LoadAll loads every handle/path pair, logging and skipping failures.
// It returns the number of sounds loaded.
func (b *Bank) LoadAll(sounds map[string]string) int {
	handles := make([]string, 0, len(sounds))
	for h := range sounds {
		handles = append(handles, h)
	}
	sort.Strings(handles)

	loaded := 0
	for _, h := range handles {
		if err := b.Load(h, sounds[h]); err != nil {
			b.log.Warn().Err(err).Msg("skipping sound")
			continue
		}
		loaded++
	}
	b.log.Info().Int("loaded", loaded).Int("configured", len(sounds)).Msg("sounds ready")
	return loaded
}

// HasSound reports whether handle resolves to a loaded sound.
func (b *Bank) HasSound(handle string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.sources[normalize(handle)]
	return ok
}

// PlaySound plays handle from the start. Unknown handles are logged and
// ignored; an empty handle is ignored silently.
func (b *Bank) PlaySound(handle string) {
	key := normalize(handle)
	if key == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.enabled {
		return
	}
	src, ok := b.sources[key]
	if !ok {
		b.log.Debug().Str("sound", handle).Msg("unknown sound handle")
		return
	}
	if b.dev.IsPlaying(src.sound) {
		b.dev.Stop(src.sound)
	}
	b.dev.Play(src.sound, b.volume)
}

// Handles lists the loaded handles in sorted order.
func (b *Bank) Handles() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.sources))
	for h := range b.sources {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
