package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// StackObserver is notified after every stack mutation. depth is the stack
// size after the change.
type StackObserver interface {
	WindowPushed(w Window, depth int)
	WindowPopped(w Window, depth int)
}

// Manager owns the render target, the window stack and the event channel,
// and runs the dispatch loop.
type Manager struct {
	term      *Terminal
	stack     Stack
	events    *Channel
	ticker    *TickSource
	tickRate  time.Duration
	queueSize int
	escape    func(top Window, input any) bool
	sources   []Source
	observers []StackObserver
	log       logrus.FieldLogger
	running   bool
	closed    bool
}

// New builds a manager around an already acquired terminal. The manager takes
// ownership of term and of initial.
func New(term *Terminal, initial Window, opts ...Option) (*Manager, error) {
	if term == nil {
		return nil, fmt.Errorf("new window manager: nil terminal")
	}
	if initial == nil {
		return nil, fmt.Errorf("new window manager: nil initial window")
	}
	m := &Manager{
		term:      term,
		tickRate:  DefaultTickRate,
		queueSize: DefaultQueueSize,
		log:       discardLogger(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("new window manager: %w", err)
		}
	}
	m.events = NewChannel(m.queueSize)
	m.ticker = NewTickSource(m.tickRate, m.events)
	m.Push(initial)
	return m, nil
}

// Open acquires a terminal from backend using settings and builds a manager on
// it. A backend that cannot enter the requested modes yields a *SetupError
// and no window is ever rendered.
func Open(b Backend, s Settings, initial Window, opts ...Option) (*Manager, error) {
	if initial == nil {
		return nil, fmt.Errorf("open window manager: nil initial window")
	}
	base := []Option{}
	if s.TickRate > 0 {
		base = append(base, WithTickRate(s.TickRate))
	}
	if s.QueueSize > 0 {
		base = append(base, WithQueueSize(s.QueueSize))
	}
	term, err := NewTerminal(b, s.Mode())
	if err != nil {
		return nil, err
	}
	m, err := New(term, initial, append(base, opts...)...)
	if err != nil {
		_ = term.Close()
		return nil, err
	}
	return m, nil
}

// Push places w on top of the stack. It is the next window rendered.
func (m *Manager) Push(w Window) {
	if w == nil {
		return
	}
	depth := m.stack.Push(w)
	m.log.WithFields(logrus.Fields{"window": WindowName(w), "depth": depth}).Debug("window pushed")
	for _, o := range m.observers {
		o.WindowPushed(w, depth)
	}
}

func (m *Manager) pop(reason string) {
	w, ok := m.stack.Pop()
	if !ok {
		return
	}
	depth := m.stack.Depth()
	entry := m.log.WithFields(logrus.Fields{"window": WindowName(w), "depth": depth, "reason": reason})
	if err := release(w); err != nil {
		entry.WithError(err).Warn("window release failed")
	}
	entry.Debug("window popped")
	for _, o := range m.observers {
		o.WindowPopped(w, depth)
	}
}

func (m *Manager) Top() Window { return m.stack.Top() }

func (m *Manager) Depth() int { return m.stack.Depth() }

// Publisher returns the producer side of the event channel for external
// input sources.
func (m *Manager) Publisher() Publisher { return m.events }

func (m *Manager) Terminal() *Terminal { return m.term }

// SetTickRate changes the tick interval from the next timer cycle on.
func (m *Manager) SetTickRate(d time.Duration) { m.ticker.SetInterval(d) }

func (m *Manager) TickRate() time.Duration { return m.ticker.Interval() }

// Run drives the loop until the stack is empty, the channel is closed, ctx
// ends, or a window fails to render. Teardown always happens before Run
// returns, including when a window panics. Run can be called once.
func (m *Manager) Run(ctx context.Context) (err error) {
	if m.running || m.closed {
		return ErrManagerClosed
	}
	m.running = true

	runCtx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return m.ticker.Run(gctx) })
	for _, src := range m.sources {
		g.Go(func() error { return src.Run(gctx, m.events) })
	}

	defer func() {
		cancel()
		m.events.Close()
		closeErr := m.Close()
		waitErr := g.Wait()
		if errors.Is(waitErr, context.Canceled) {
			waitErr = nil
		}
		switch {
		case err != nil && waitErr != nil && ctx.Err() == nil && errors.Is(err, context.Canceled):
			err = fmt.Errorf("input source: %w", waitErr)
		case err != nil:
		case closeErr != nil:
			err = fmt.Errorf("restore terminal: %w", closeErr)
		case waitErr != nil:
			err = fmt.Errorf("input source: %w", waitErr)
		}
		m.log.WithError(err).Debug("window manager stopped")
	}()

	return m.loop(gctx)
}

// Close pops and releases every remaining window, then restores the terminal.
// Only the first call has an effect.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.events.Close()
	if !m.stack.Empty() {
		m.log.WithField("windows", m.stack.Names()).Debug("closing open windows")
	}
	for !m.stack.Empty() {
		m.pop("shutdown")
	}
	return m.term.Close()
}
