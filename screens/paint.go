package screens

import (
	"github.com/jask/winstack/core"
	"github.com/jask/winstack/internal/terminal"
	"github.com/jask/winstack/widgets"
)

// paint draws the string produced by view, sized to the frame.
func paint(t *core.Terminal, view func(width, height int) string) error {
	return t.Draw(func(f core.Frame) {
		w, h := f.Size()
		terminal.DrawText(f, 0, 0, view(w, h))
	})
}

func footer(scope string, width int) string {
	return widgets.Footer(Keys.BindingsForScope(scope), max(0, width-4))
}
