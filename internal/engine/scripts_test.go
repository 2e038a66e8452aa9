package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock script for testing
type MockScript struct {
	BaseComponent
	Speed  float32
	Health int
}

func mockFactory(props Props) Component {
	return &MockScript{
		Speed:  props.Float("speed", 0),
		Health: props.Int("health", 0),
	}
}

func mockSerializer(c Component) map[string]any {
	s, ok := c.(*MockScript)
	if !ok {
		return nil
	}
	return map[string]any{
		"speed":  s.Speed,
		"health": s.Health,
	}
}

func TestRegisterScript(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}

	RegisterScript("MockScript", mockFactory, mockSerializer)

	_, exists := scriptRegistry["MockScript"]
	assert.True(t, exists)
}

func TestRegisterScriptDuplicate(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}

	RegisterScript("Duplicate", mockFactory, mockSerializer)

	assert.Panics(t, func() {
		RegisterScript("Duplicate", mockFactory, mockSerializer)
	})
}

func TestCreateScript(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}

	RegisterScript("MockScript", mockFactory, mockSerializer)

	component := CreateScript("MockScript", map[string]any{
		"speed":  float64(10.5),
		"health": float64(100),
	})
	require.NotNil(t, component)

	script, ok := component.(*MockScript)
	require.True(t, ok)
	assert.Equal(t, float32(10.5), script.Speed)
	assert.Equal(t, 100, script.Health)
}

func TestCreateScriptNotFound(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}

	assert.Nil(t, CreateScript("DoesNotExist", nil))
}

func TestSerializeScript(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}

	RegisterScript("MockScript", mockFactory, mockSerializer)

	name, props, ok := SerializeScript(&MockScript{Speed: 15.0, Health: 200})
	require.True(t, ok)

	assert.Equal(t, "MockScript", name)
	assert.Equal(t, float32(15.0), props["speed"])
	assert.Equal(t, 200, props["health"])

	_, _, ok = SerializeScript(&BaseComponent{})
	assert.False(t, ok)
}

func TestGetRegisteredScripts(t *testing.T) {
	scriptRegistry = map[string]scriptEntry{}

	RegisterScript("ScriptC", mockFactory, mockSerializer)
	RegisterScript("ScriptA", mockFactory, mockSerializer)
	RegisterScript("ScriptB", mockFactory, mockSerializer)

	assert.Equal(t, []string{"ScriptA", "ScriptB", "ScriptC"}, GetRegisteredScripts())
}

func TestPropsAccessors(t *testing.T) {
	props := Props{
		"zoom":     float64(1.5),
		"count":    float64(3),
		"invert":   true,
		"name":     "Key",
		"offset":   []any{float64(1), float64(2), float64(3)},
		"children": []any{"A", 7.0, "B"},
		"broken":   []any{"x"},
	}

	assert.Equal(t, float32(1.5), props.Float("zoom", 0))
	assert.Equal(t, float32(9), props.Float("missing", 9))
	assert.Equal(t, 3, props.Int("count", 0))
	assert.True(t, props.Bool("invert", false))
	assert.Equal(t, "Key", props.String("name", ""))
	assert.Equal(t, []float32{1, 2, 3}, props.Floats("offset"))
	assert.Nil(t, props.Floats("broken"))
	assert.Equal(t, []string{"A", "B"}, props.Strings("children"))
}
