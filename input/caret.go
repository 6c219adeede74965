package input

import "time"

// Caret blinks the cursor of the focused field. It counts game ticks, so Update
// has to run exactly once per tick.
type Caret struct {
	period  int
	elapsed int
	visible bool
}

// NewCaret toggles visibility every period at the given tick rate. Periods shorter
// than one tick toggle on every tick.
func NewCaret(period time.Duration, ticksPerSecond int) *Caret {
	ticks := int(period.Seconds() * float64(ticksPerSecond))
	return &Caret{
		period:  max(ticks, 1),
		visible: true,
	}
}

func (c *Caret) Update() {
	c.elapsed++
	if c.elapsed >= c.period {
		c.visible = !c.visible
		c.elapsed = 0
	}
}

func (c *Caret) Visible() bool {
	return c.visible
}

// Restart shows the caret and starts a full period, as after a focus change.
func (c *Caret) Restart() {
	c.elapsed = 0
	c.visible = true
}
