package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/jask/winstack/core"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// ANSIBackend writes frames as plain ANSI text to out. Raw mode is entered on
// fd through x/term; a negative fd, or one that is not a terminal, cannot
// enter raw mode.
type ANSIBackend struct {
	out      io.Writer
	fd       int
	state    *term.State
	alt      bool
	width    int
	height   int
	restored bool
}

func NewANSIBackend(out io.Writer, fd int) *ANSIBackend {
	return &ANSIBackend{out: out, fd: fd}
}

// SetSize fixes the frame size instead of querying the terminal.
func (b *ANSIBackend) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b *ANSIBackend) Init(mode core.Mode) error {
	if mode.RawMode {
		if b.fd < 0 || !term.IsTerminal(b.fd) {
			return fmt.Errorf("raw mode: fd %d is not a terminal", b.fd)
		}
		state, err := term.MakeRaw(b.fd)
		if err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		b.state = state
	}
	if mode.AlternateScreen {
		if _, err := io.WriteString(b.out, seqAltScreenEnter); err != nil {
			b.leaveRaw()
			return fmt.Errorf("alternate screen: %w", err)
		}
		b.alt = true
	}
	b.restored = false
	return nil
}

func (b *ANSIBackend) size() (int, int) {
	if b.width > 0 && b.height > 0 {
		return b.width, b.height
	}
	if b.fd >= 0 {
		if w, h, err := term.GetSize(b.fd); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return fallbackWidth, fallbackHeight
}

func (b *ANSIBackend) Draw(fn func(core.Frame)) error {
	grid := NewGrid(b.size())
	fn(grid)

	w := bufio.NewWriter(b.out)
	w.WriteString(seqHome)
	w.WriteString(seqClear)
	lines := grid.Lines()
	for i := len(lines) - 1; i >= 0 && lines[i] == ""; i-- {
		lines = lines[:i]
	}
	w.WriteString(strings.Join(lines, "\r\n"))
	w.WriteString(seqSGR0)
	return w.Flush()
}

func (b *ANSIBackend) ShowCursor() error {
	_, err := io.WriteString(b.out, seqCursorShow)
	return err
}

func (b *ANSIBackend) HideCursor() error {
	_, err := io.WriteString(b.out, seqCursorHide)
	return err
}

// Restore leaves the alternate screen, then raw mode. Repeated calls are
// no-ops.
func (b *ANSIBackend) Restore() error {
	if b.restored {
		return nil
	}
	b.restored = true
	var err error
	if b.alt {
		b.alt = false
		_, err = io.WriteString(b.out, seqAltScreenExit)
	}
	if rerr := b.leaveRaw(); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

func (b *ANSIBackend) leaveRaw() error {
	if b.state == nil {
		return nil
	}
	state := b.state
	b.state = nil
	if err := term.Restore(b.fd, state); err != nil {
		return fmt.Errorf("restore raw mode: %w", err)
	}
	return nil
}
