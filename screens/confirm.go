package screens

import (
	"time"

	"github.com/jask/winstack/core"
	"github.com/jask/winstack/widgets"
)

// Confirm is a yes/no dialog that owns the window it guards. Answering yes
// drops that window with the dialog; no or esc hands it back to the stack.
type Confirm struct {
	prompt string
	owner  core.Window
}

// NewConfirm takes ownership of owner, which must already be off the stack.
// The usual way to get there is core.Replace(NewConfirm(prompt, self)).
func NewConfirm(prompt string, owner core.Window) *Confirm {
	return &Confirm{prompt: prompt, owner: owner}
}

func (c *Confirm) Title() string { return "confirm" }
func (c *Confirm) Scope() string { return scopeConfirm }

func (c *Confirm) Render(t *core.Terminal) error {
	return paint(t, func(width, height int) string {
		return widgets.Card(c.prompt+"\n\n"+footer(scopeConfirm, width-6), width, height)
	})
}

func (c *Confirm) HandleInput(input any) core.EventResult {
	switch {
	case pressed(input, actionYes, scopeConfirm):
		return core.Remove()
	case pressed(input, actionNo, scopeConfirm), pressed(input, actionDismiss, scopeConfirm):
		return c.giveBack()
	}
	return core.Keep()
}

func (c *Confirm) giveBack() core.EventResult {
	if c.owner == nil {
		return core.Remove()
	}
	owner := c.owner
	c.owner = nil
	return core.Replace(owner)
}

func (c *Confirm) HandleTick(time.Duration) core.EventResult { return core.Keep() }

func (c *Confirm) ShouldClose() bool { return false }
