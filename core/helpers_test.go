package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	calls   []string
	mode    Mode
	initErr error
	hideErr error
	drawErr error
	cells   map[[2]int]rune
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{cells: map[[2]int]rune{}}
}

func (b *fakeBackend) Init(mode Mode) error {
	b.calls = append(b.calls, "init")
	b.mode = mode
	return b.initErr
}

func (b *fakeBackend) Draw(fn func(Frame)) error {
	b.calls = append(b.calls, "draw")
	if b.drawErr != nil {
		return b.drawErr
	}
	fn(b)
	return nil
}

func (b *fakeBackend) ShowCursor() error {
	b.calls = append(b.calls, "show")
	return nil
}

func (b *fakeBackend) HideCursor() error {
	b.calls = append(b.calls, "hide")
	return b.hideErr
}

func (b *fakeBackend) Restore() error {
	b.calls = append(b.calls, "restore")
	return nil
}

func (b *fakeBackend) Size() (int, int) { return 20, 5 }

func (b *fakeBackend) SetCell(x, y int, r rune) { b.cells[[2]int{x, y}] = r }

// scriptWindow records every call into a shared trace.
type scriptWindow struct {
	name      string
	trace     *[]string
	onTick    func(w *scriptWindow, interval time.Duration) EventResult
	onInput   func(w *scriptWindow, input any) EventResult
	closed    bool
	renderErr error
	panics    bool
	releases  int
}

func newScript(name string, trace *[]string) *scriptWindow {
	return &scriptWindow{name: name, trace: trace}
}

func (w *scriptWindow) Title() string { return w.name }

func (w *scriptWindow) Render(t *Terminal) error {
	*w.trace = append(*w.trace, "render:"+w.name)
	if w.panics {
		panic("render " + w.name)
	}
	if w.renderErr != nil {
		return w.renderErr
	}
	return t.Draw(func(f Frame) { f.SetCell(0, 0, rune(w.name[0])) })
}

func (w *scriptWindow) HandleInput(input any) EventResult {
	*w.trace = append(*w.trace, fmt.Sprintf("input:%s:%v", w.name, input))
	if w.onInput != nil {
		return w.onInput(w, input)
	}
	return Keep()
}

func (w *scriptWindow) HandleTick(interval time.Duration) EventResult {
	*w.trace = append(*w.trace, "tick:"+w.name)
	if w.onTick != nil {
		return w.onTick(w, interval)
	}
	return Keep()
}

func (w *scriptWindow) ShouldClose() bool { return w.closed }

func (w *scriptWindow) Close() error {
	w.releases++
	*w.trace = append(*w.trace, "release:"+w.name)
	return nil
}

// closeOn closes the window when it receives the given input.
func closeOn(key string) func(w *scriptWindow, input any) EventResult {
	return func(w *scriptWindow, input any) EventResult {
		if input == key {
			w.closed = true
		}
		return Keep()
	}
}

// newTestManager builds a manager whose timer never fires during a test.
func newTestManager(t *testing.T, b *fakeBackend, initial Window, opts ...Option) *Manager {
	t.Helper()
	opts = append([]Option{WithTickRate(time.Hour)}, opts...)
	m, err := Open(b, DefaultSettings(), initial, opts...)
	require.NoError(t, err)
	return m
}

func publish(t *testing.T, m *Manager, events ...Event) {
	t.Helper()
	for _, ev := range events {
		require.NoError(t, m.Publisher().Publish(context.Background(), ev))
	}
}

func runWithTimeout(t *testing.T, m *Manager) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.Run(ctx)
}
