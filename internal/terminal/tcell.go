package terminal

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/jask/winstack/core"
)

// TcellBackend renders through a tcell screen. tcell enters raw mode and the
// alternate screen on Init regardless of Mode; only cursor visibility is
// honoured separately.
type TcellBackend struct {
	screen  tcell.Screen
	resized atomic.Bool
	cursorX int
	cursorY int
	done    bool
}

// NewTcellBackend creates a backend on the controlling terminal.
func NewTcellBackend() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new tcell screen: %w", err)
	}
	return NewTcellBackendWithScreen(screen), nil
}

// NewTcellBackendWithScreen wraps an existing screen, for example a
// simulation screen in tests.
func NewTcellBackendWithScreen(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

func (b *TcellBackend) Init(core.Mode) error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init tcell screen: %w", err)
	}
	b.screen.Clear()
	return nil
}

func (b *TcellBackend) Draw(fn func(core.Frame)) error {
	if b.done {
		return errors.New("tcell screen finalized")
	}
	if b.resized.Swap(false) {
		b.screen.Sync()
	}
	b.screen.Clear()
	fn(tcellFrame{screen: b.screen})
	b.screen.Show()
	return nil
}

// SetCursor moves the cursor shown by ShowCursor.
func (b *TcellBackend) SetCursor(x, y int) {
	b.cursorX, b.cursorY = x, y
}

func (b *TcellBackend) ShowCursor() error {
	if !b.done {
		b.screen.ShowCursor(b.cursorX, b.cursorY)
	}
	return nil
}

func (b *TcellBackend) HideCursor() error {
	if !b.done {
		b.screen.HideCursor()
	}
	return nil
}

// Restore finalises the screen, leaving raw mode and the alternate screen.
func (b *TcellBackend) Restore() error {
	if b.done {
		return nil
	}
	b.done = true
	b.screen.Fini()
	return nil
}

// Screen exposes the tcell screen for windows that draw with styles.
func (b *TcellBackend) Screen() tcell.Screen { return b.screen }

// Source returns the key decoder reading from this screen.
func (b *TcellBackend) Source() core.Source { return &TcellSource{backend: b} }

type tcellFrame struct {
	screen tcell.Screen
}

func (f tcellFrame) Size() (int, int) { return f.screen.Size() }

func (f tcellFrame) SetCell(x, y int, r rune) {
	f.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
}

// TcellSource publishes decoded keys and resize redraws from a tcell screen.
// It ends when the screen is finalised or its context is cancelled.
type TcellSource struct {
	backend *TcellBackend
}

func (s *TcellSource) Run(ctx context.Context, out core.Publisher) error {
	screen := s.backend.screen
	stop := context.AfterFunc(ctx, func() {
		// Wake PollEvent so the loop can observe cancellation.
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		var next core.Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			key, ok := KeyFromTcell(ev)
			if !ok {
				continue
			}
			next = core.Input(key)
		case *tcell.EventResize:
			s.backend.resized.Store(true)
			next = core.Redraw()
		default:
			continue
		}
		if err := out.Publish(ctx, next); err != nil {
			if errors.Is(err, core.ErrChannelClosed) || ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}
