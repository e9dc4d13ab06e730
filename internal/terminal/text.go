package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/jask/winstack/core"
)

// DrawText paints s into f starting at (x, y). Escape sequences are stripped,
// lines wrap at '\n' and are clipped to the frame. It returns the number of
// rows written.
func DrawText(f core.Frame, x, y int, s string) int {
	width, height := f.Size()
	rows := 0
	for i, line := range strings.Split(ansi.Strip(s), "\n") {
		row := y + i
		if row >= height {
			break
		}
		rows++
		if row < 0 {
			continue
		}
		col := x
		for _, r := range strings.TrimRight(line, "\r") {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			if col+w > width {
				break
			}
			if col >= 0 {
				f.SetCell(col, row, r)
			}
			col += w
		}
	}
	return rows
}

// TextWidth reports the display width of s ignoring escape sequences.
func TextWidth(s string) int {
	return ansi.StringWidth(s)
}

// Grid is an in-memory Frame. ANSIBackend draws into it and tests use it to
// inspect rendered output.
type Grid struct {
	width, height int
	cells         []rune
}

func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height, cells: make([]rune, width*height)}
	g.Clear()
	return g
}

func (g *Grid) Size() (int, int) { return g.width, g.height }

func (g *Grid) SetCell(x, y int, r rune) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = r
}

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

// Lines returns the grid rows with trailing blanks trimmed.
func (g *Grid) Lines() []string {
	out := make([]string, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = strings.TrimRight(string(g.cells[y*g.width:(y+1)*g.width]), " ")
	}
	return out
}

func (g *Grid) String() string {
	return strings.TrimRight(strings.Join(g.Lines(), "\n"), "\n")
}
