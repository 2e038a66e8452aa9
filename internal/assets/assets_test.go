package assets

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Gold")
	require.NoError(t, err)
	assert.Equal(t, rl.Gold, c)

	c, err = ParseColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, rl.Color{R: 255, G: 128, B: 0, A: 255}, c)

	c, err = ParseColor("#10203040")
	require.NoError(t, err)
	assert.Equal(t, rl.Color{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)
}

func TestParseColorRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "Chartreuse", "#12345", "#GGGGGG"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}

func TestColorNameRoundTrip(t *testing.T) {
	assert.Equal(t, "SkyBlue", ColorName(rl.SkyBlue))

	custom := rl.Color{R: 1, G: 2, B: 3, A: 4}
	back, err := ParseColor(ColorName(custom))
	require.NoError(t, err)
	assert.Equal(t, custom, back)
}
