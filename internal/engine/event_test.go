package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventInvokesInOrder(t *testing.T) {
	var e Event
	var got []int
	e.AddListener(func() { got = append(got, 1) })
	e.AddListener(nil)
	e.AddListener(func() { got = append(got, 2) })

	e.Invoke()
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, e.Listeners())

	e.RemoveAllListeners()
	e.Invoke()
	assert.Len(t, got, 2)
}
