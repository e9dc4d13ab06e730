package screens

import (
	"time"

	"github.com/jask/winstack/core"
	"github.com/jask/winstack/widgets"
)

// Notice shows a short message and closes on any key or after a number of
// ticks.
type Notice struct {
	title string
	text  string
	ticks int
}

func NewNotice(title, text string, ticks int) *Notice {
	return &Notice{title: title, text: text, ticks: max(1, ticks)}
}

func (n *Notice) Title() string { return n.title }
func (n *Notice) Text() string  { return n.text }

func (n *Notice) Render(t *core.Terminal) error {
	return paint(t, func(width, height int) string {
		return widgets.Card(n.title+"\n\n"+n.text, width, height)
	})
}

func (n *Notice) HandleInput(any) core.EventResult { return core.Remove() }

func (n *Notice) HandleTick(time.Duration) core.EventResult {
	n.ticks--
	return core.Keep()
}

func (n *Notice) ShouldClose() bool { return n.ticks <= 0 }
