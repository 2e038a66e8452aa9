package engine

import (
	"fmt"
	"sort"
)

// ScriptFactory creates a Component from JSON props.
type ScriptFactory func(props Props) Component

// ScriptSerializer converts a Component back to props for JSON saving.
type ScriptSerializer func(c Component) map[string]any

type scriptEntry struct {
	factory    ScriptFactory
	serializer ScriptSerializer
}

var scriptRegistry = map[string]scriptEntry{}

// RegisterScript registers a named script with a factory and optional serializer.
// The serializer is used when saving the scene back to JSON.
func RegisterScript(name string, factory ScriptFactory, serializer ScriptSerializer) {
	if _, exists := scriptRegistry[name]; exists {
		panic(fmt.Sprintf("script %q already registered", name))
	}
	scriptRegistry[name] = scriptEntry{factory: factory, serializer: serializer}
}

// CreateScript looks up a registered script by name and creates it with the given props.
func CreateScript(name string, props map[string]any) Component {
	entry, ok := scriptRegistry[name]
	if !ok {
		return nil
	}
	return entry.factory(Props(props))
}

// SerializeScript tries to serialize a component by checking all registered scripts.
// Returns (name, props, true) if found, ("", nil, false) otherwise.
func SerializeScript(c Component) (string, map[string]any, bool) {
	for name, entry := range scriptRegistry {
		if entry.serializer == nil {
			continue
		}
		props := entry.serializer(c)
		if props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// GetRegisteredScripts returns a sorted list of all registered script names.
func GetRegisteredScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Props is the decoded JSON property bag handed to script factories.
// Numbers arrive as float64 from encoding/json.
type Props map[string]any

func (p Props) Float(key string, fallback float32) float32 {
	if v, ok := p[key].(float64); ok {
		return float32(v)
	}
	return fallback
}

func (p Props) Int(key string, fallback int) int {
	if v, ok := p[key].(float64); ok {
		return int(v)
	}
	return fallback
}

func (p Props) Bool(key string, fallback bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return fallback
}

func (p Props) String(key string, fallback string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return fallback
}

// Floats returns a numeric array prop, or nil if absent or malformed.
func (p Props) Floats(key string) []float32 {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]float32, 0, len(raw))
	for _, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return nil
		}
		out = append(out, float32(f))
	}
	return out
}

// Strings returns a string array prop, skipping non-string entries.
func (p Props) Strings(key string) []string {
	raw, ok := p[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
