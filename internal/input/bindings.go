package input

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Binding is a single key or mouse button.
type Binding struct {
	Name    string
	Key     int32
	Mouse   rl.MouseButton
	IsMouse bool
}

var mouseLabels = map[rl.MouseButton]string{
	rl.MouseButtonLeft:   "LMB",
	rl.MouseButtonRight:  "RMB",
	rl.MouseButtonMiddle: "MMB",
}

// Label is the short name shown in on-screen prompts.
func (b Binding) Label() string {
	if b.IsMouse {
		if l, ok := mouseLabels[b.Mouse]; ok {
			return l
		}
	}
	return b.Name
}

// Bindings maps each action to its binding.
type Bindings map[Action]Binding

var mouseNames = map[string]rl.MouseButton{
	"mouse0":      rl.MouseButtonLeft,
	"mouse1":      rl.MouseButtonRight,
	"mouse2":      rl.MouseButtonMiddle,
	"mouseleft":   rl.MouseButtonLeft,
	"mouseright":  rl.MouseButtonRight,
	"mousemiddle": rl.MouseButtonMiddle,
}

var keyNames = map[string]int32{
	"space":        rl.KeySpace,
	"escape":       rl.KeyEscape,
	"enter":        rl.KeyEnter,
	"tab":          rl.KeyTab,
	"backspace":    rl.KeyBackspace,
	"leftshift":    rl.KeyLeftShift,
	"rightshift":   rl.KeyRightShift,
	"leftcontrol":  rl.KeyLeftControl,
	"rightcontrol": rl.KeyRightControl,
	"leftalt":      rl.KeyLeftAlt,
	"up":           rl.KeyUp,
	"down":         rl.KeyDown,
	"left":         rl.KeyLeft,
	"right":        rl.KeyRight,
	"f1":           rl.KeyF1,
	"f2":           rl.KeyF2,
	"f3":           rl.KeyF3,
	"f4":           rl.KeyF4,
}

// ParseBinding converts a key name such as "E", "LeftShift" or "Mouse0"
// into a Binding. Names are case-insensitive.
func ParseBinding(name string) (Binding, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Binding{}, fmt.Errorf("empty key name")
	}
	if btn, ok := mouseNames[n]; ok {
		return Binding{Name: name, Mouse: btn, IsMouse: true}, nil
	}
	if key, ok := keyNames[n]; ok {
		return Binding{Name: name, Key: key}, nil
	}
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'a' && c <= 'z':
			return Binding{Name: name, Key: rl.KeyA + int32(c-'a')}, nil
		case c >= '0' && c <= '9':
			return Binding{Name: name, Key: rl.KeyZero + int32(c-'0')}, nil
		}
	}
	return Binding{}, fmt.Errorf("unknown key name %q", name)
}

// DefaultBindings returns the stock layout: E to examine, hold the left
// mouse button to rotate, Q to drop, WASD to move.
func DefaultBindings() Bindings {
	defaults := map[string]string{
		string(ActionInteract): "E",
		string(ActionRotate):   "Mouse0",
		string(ActionDrop):     "Q",
		string(ActionForward):  "W",
		string(ActionBack):     "S",
		string(ActionLeft):     "A",
		string(ActionRight):    "D",
		string(ActionJump):     "Space",
		string(ActionRun):      "LeftShift",
		string(ActionCrouch):   "C",
	}
	b, err := ParseBindings(defaults)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseBindings builds Bindings from action→key-name pairs.
// Returns an error naming the first action whose key cannot be parsed.
func ParseBindings(names map[string]string) (Bindings, error) {
	b := make(Bindings, len(names))
	for action, keyName := range names {
		binding, err := ParseBinding(keyName)
		if err != nil {
			return nil, fmt.Errorf("binding %q: %w", action, err)
		}
		b[Action(action)] = binding
	}
	return b, nil
}

// Merge returns a copy of b with every binding in overrides applied.
func (b Bindings) Merge(overrides Bindings) Bindings {
	out := make(Bindings, len(b)+len(overrides))
	for a, v := range b {
		out[a] = v
	}
	for a, v := range overrides {
		out[a] = v
	}
	return out
}
