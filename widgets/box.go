package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box is a bordered panel with a title line and an optional hint footer.
type Box struct {
	Title string
	Body  string
	Hint  string
}

func (b Box) Render(width, height int) string {
	if width <= 2 || height <= 2 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("[" + b.Title + "]\n")
	sb.WriteString(b.Body)
	if b.Hint != "" {
		sb.WriteString("\n\n" + hintStyle.Render(b.Hint))
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		MaxWidth(width).
		Height(max(1, height-2)).
		MaxHeight(height)
	return style.Render(sb.String())
}

var hintStyle = lipgloss.NewStyle().Faint(true)

// Card centres a bordered dialog in a width x height canvas.
func Card(body string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// Bar renders a filled/empty progress bar of the given width.
func Bar(done, total, width int) string {
	if width <= 0 || total <= 0 {
		return ""
	}
	filled := min(width, max(0, done*width/total))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
