package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCaret_TogglesEveryPeriod(t *testing.T) {
	c := NewCaret(500*time.Millisecond, 60)
	assert.True(t, c.Visible())

	for i := 0; i < 29; i++ {
		c.Update()
	}
	assert.True(t, c.Visible(), "still visible one tick before the period ends")

	c.Update()
	assert.False(t, c.Visible())

	for i := 0; i < 30; i++ {
		c.Update()
	}
	assert.True(t, c.Visible())
}

func TestCaret_Restart(t *testing.T) {
	c := NewCaret(500*time.Millisecond, 60)
	for i := 0; i < 45; i++ {
		c.Update()
	}
	assert.False(t, c.Visible())

	c.Restart()
	assert.True(t, c.Visible())
	for i := 0; i < 29; i++ {
		c.Update()
	}
	assert.True(t, c.Visible())
}

func TestCaret_ShortPeriodTogglesEveryTick(t *testing.T) {
	c := NewCaret(time.Millisecond, 60)

	c.Update()
	assert.False(t, c.Visible())
	c.Update()
	assert.True(t, c.Visible())
}
