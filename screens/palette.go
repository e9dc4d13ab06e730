package screens

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/winstack/core"
	"github.com/jask/winstack/widgets"
)

// Palette searches a command registry. Choosing a command that returns a
// window replaces the palette with it.
type Palette struct {
	commands *Commands
	input    textinput.Model
	results  []CommandResult
	selected int
	status   string
}

func NewPalette(commands *Commands) *Palette {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	p := &Palette{commands: commands, input: inp}
	p.refresh()
	return p
}

func (p *Palette) Title() string { return "command palette" }
func (p *Palette) Scope() string { return scopeCommand }

func (p *Palette) Query() string { return p.input.Value() }

func (p *Palette) Results() []CommandResult { return p.results }

func (p *Palette) Render(t *core.Terminal) error {
	return paint(t, func(width, height int) string {
		var sb strings.Builder
		sb.WriteString(p.input.View())
		sb.WriteString("\n")
		for i, r := range p.results {
			cursor := "  "
			if i == p.selected {
				cursor = "> "
			}
			line := cursor + r.Name
			if r.Disabled && r.Reason != "" {
				line += fmt.Sprintf(" (%s)", r.Reason)
			} else if r.Desc != "" {
				line += "  " + r.Desc
			}
			sb.WriteString("\n" + line)
		}
		if len(p.results) == 0 {
			sb.WriteString("\n  no matching commands")
		}
		if p.status != "" {
			sb.WriteString("\n\n" + p.status)
		}
		return widgets.Box{Title: "Command Palette", Body: sb.String(), Hint: footer(scopeCommand, width)}.Render(width, height)
	})
}

func (p *Palette) HandleInput(input any) core.EventResult {
	switch {
	case pressed(input, actionDismiss, scopeCommand):
		return core.Remove()
	case pressed(input, actionUp, scopeCommand):
		if p.selected > 0 {
			p.selected--
		}
		return core.Keep()
	case pressed(input, actionDown, scopeCommand):
		if p.selected < len(p.results)-1 {
			p.selected++
		}
		return core.Keep()
	case pressed(input, actionRun, scopeCommand):
		return p.run()
	}
	if msg, ok := input.(tea.KeyMsg); ok {
		p.input, _ = p.input.Update(msg)
		p.refresh()
	}
	return core.Keep()
}

func (p *Palette) run() core.EventResult {
	if len(p.results) == 0 {
		return core.Keep()
	}
	w, reason, ok := p.commands.Run(p.results[p.selected].CommandID)
	if !ok {
		p.status = reason
		return core.Keep()
	}
	if w != nil {
		return core.Replace(w)
	}
	return core.Remove()
}

func (p *Palette) refresh() {
	p.results = p.commands.Search(p.input.Value())
	p.selected = min(p.selected, max(0, len(p.results)-1))
	p.status = ""
}

func (p *Palette) HandleTick(time.Duration) core.EventResult { return core.Keep() }

func (p *Palette) ShouldClose() bool { return false }
