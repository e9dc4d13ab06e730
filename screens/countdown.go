package screens

import (
	"fmt"
	"time"

	"github.com/jask/winstack/core"
	"github.com/jask/winstack/widgets"
)

// Countdown counts ticks down to zero and then asks to be closed.
type Countdown struct {
	total     int
	remaining int
	paused    bool
	interval  time.Duration
}

func NewCountdown(ticks int) *Countdown {
	ticks = max(1, ticks)
	return &Countdown{total: ticks, remaining: ticks}
}

func (c *Countdown) Title() string { return "countdown" }
func (c *Countdown) Scope() string { return scopeCountdown }

func (c *Countdown) Remaining() int { return c.remaining }

func (c *Countdown) Render(t *core.Terminal) error {
	return paint(t, func(width, height int) string {
		state := fmt.Sprintf("closing in %d ticks", c.remaining)
		if c.paused {
			state += " (paused)"
		}
		if c.interval > 0 {
			state += fmt.Sprintf("\ninterval %s", c.interval)
		}
		body := state + "\n" + widgets.Bar(c.total-c.remaining, c.total, max(1, width-6))
		return widgets.Box{Title: "Countdown", Body: body, Hint: footer(scopeCountdown, width)}.Render(width, height)
	})
}

func (c *Countdown) HandleInput(input any) core.EventResult {
	switch {
	case pressed(input, actionPause, scopeCountdown):
		c.paused = !c.paused
	case pressed(input, actionReset, scopeCountdown):
		c.remaining = c.total
	}
	return core.Keep()
}

func (c *Countdown) HandleTick(interval time.Duration) core.EventResult {
	c.interval = interval
	if !c.paused && c.remaining > 0 {
		c.remaining--
	}
	return core.Keep()
}

func (c *Countdown) ShouldClose() bool { return c.remaining <= 0 }
