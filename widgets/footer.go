package widgets

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/winstack/core"
)

var (
	colorAccent lipgloss.Color = "#89b4fa"
	colorMuted  lipgloss.Color = "#a6adc8"

	keyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	descStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Footer renders key hints for bindings, clipped to width. Bindings without
// keys are skipped.
func Footer(bindings []core.KeyBinding, width int) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, "  ")
	if line == "" {
		line = descStyle.Render("no shortcuts")
	}
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
