package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/jask/winstack/core"
	"github.com/jask/winstack/widgets"
)

// Menu is the root demo window. Quitting hands the menu to a Confirm, which
// either drops it or puts it back.
type Menu struct {
	commands  *Commands
	countdown int
	ticks     int
	interval  time.Duration
}

// NewMenu builds the root window. A nil commands gives an empty palette.
func NewMenu(countdownTicks int, commands *Commands) *Menu {
	if commands == nil {
		commands = NewCommands()
	}
	return &Menu{commands: commands, countdown: max(1, countdownTicks)}
}

func (m *Menu) Commands() *Commands { return m.commands }

func (m *Menu) Title() string { return "menu" }
func (m *Menu) Scope() string { return scopeMenu }

func (m *Menu) Render(t *core.Terminal) error {
	return paint(t, func(width, height int) string {
		lines := []string{
			"Every key opens a window on top of this one.",
			"",
			fmt.Sprintf("ticks seen: %d", m.ticks),
		}
		if m.interval > 0 {
			lines = append(lines, fmt.Sprintf("tick rate:  %s", m.interval))
		}
		return widgets.Box{Title: "winstack", Body: strings.Join(lines, "\n"), Hint: footer(scopeMenu, width)}.Render(width, height)
	})
}

func (m *Menu) HandleInput(input any) core.EventResult {
	switch {
	case pressed(input, actionOpenCountdown, scopeMenu):
		return core.Spawn(NewCountdown(m.countdown))
	case pressed(input, actionOpenPalette, scopeMenu):
		return core.Spawn(NewPalette(m.commands))
	case pressed(input, actionQuit, scopeMenu):
		return core.Replace(NewConfirm("Quit winstack?", m))
	}
	return core.Keep()
}

func (m *Menu) HandleTick(interval time.Duration) core.EventResult {
	m.ticks++
	m.interval = interval
	return core.Keep()
}

func (m *Menu) ShouldClose() bool { return false }

// noticeTicks keeps command notices on screen for a couple of seconds at the
// default rate.
const noticeTicks = 8

// DemoCommands is the palette registry used by the winstack binary. Each
// command answers with a window of its own rather than touching the window
// that opened the palette.
func DemoCommands(clock *Clock, countdownTicks int) *Commands {
	noClock := func() (bool, string) {
		if !clock.Bound() {
			return true, "no coordinator attached"
		}
		return false, ""
	}
	rate := func(num, den int64) func() core.Window {
		return func() core.Window {
			d := clock.Scale(num, den)
			return NewNotice("Tick rate", "tick rate "+d.String(), noticeTicks)
		}
	}
	return NewCommands(
		Command{
			ID:          "countdown",
			Name:        "Countdown",
			Description: "open a self-closing countdown",
			Run:         func() core.Window { return NewCountdown(countdownTicks) },
		},
		Command{
			ID:          "tick.faster",
			Name:        "Tick faster",
			Description: "halve the tick interval",
			Disabled:    noClock,
			Run:         rate(1, 2),
		},
		Command{
			ID:          "tick.slower",
			Name:        "Tick slower",
			Description: "double the tick interval",
			Disabled:    noClock,
			Run:         rate(2, 1),
		},
		Command{
			ID:          "about",
			Name:        "About",
			Description: "what this demo shows",
			Run: func() core.Window {
				return NewNotice("About", "winstack: a modal window stack over one terminal", noticeTicks)
			},
		},
	)
}
