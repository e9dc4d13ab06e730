package screens

import "time"

// TickControl adjusts the coordinator tick rate. *core.Manager implements it.
type TickControl interface {
	TickRate() time.Duration
	SetTickRate(d time.Duration)
}

// Clock hands the tick-rate commands a coordinator that does not exist yet
// when the commands are built. Bind it once core.Open has returned.
type Clock struct {
	tc TickControl
}

func (c *Clock) Bind(tc TickControl) { c.tc = tc }

func (c *Clock) Bound() bool { return c != nil && c.tc != nil }

// Scale multiplies the tick rate by num/den and returns the rate in effect
// afterwards.
func (c *Clock) Scale(num, den int64) time.Duration {
	d := c.tc.TickRate() * time.Duration(num) / time.Duration(den)
	c.tc.SetTickRate(d)
	return c.tc.TickRate()
}
