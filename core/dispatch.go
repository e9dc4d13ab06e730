package core

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// loop is the Running state. It returns when the stack is empty (Terminated)
// or on the first fatal error.
func (m *Manager) loop(ctx context.Context) error {
	for !m.stack.Empty() {
		top := m.stack.Top()

		// Closed windows unwind without a render or an event wait.
		if top.ShouldClose() {
			m.pop("should close")
			continue
		}

		if err := top.Render(m.term); err != nil {
			return &RenderError{Window: WindowName(top), Err: err}
		}

		ev, err := m.events.Recv(ctx)
		if err != nil {
			if errors.Is(err, ErrChannelClosed) {
				m.log.Debug("event channel closed")
				return nil
			}
			return err
		}

		result, ok := m.dispatch(top, ev)
		if !ok {
			continue
		}
		m.apply(result)
	}
	return nil
}

// dispatch routes ev to the top window. Events without a window-visible
// analog are dropped and report ok=false.
func (m *Manager) dispatch(top Window, ev Event) (EventResult, bool) {
	switch ev.Kind {
	case KindTick:
		interval := ev.Interval
		if interval <= 0 {
			interval = m.ticker.Interval()
		}
		return top.HandleTick(interval), true
	case KindInput:
		if m.escape != nil && m.escape(top, ev.Input) {
			m.log.WithField("window", WindowName(top)).Debug("escape policy closed window")
			return Remove(), true
		}
		return top.HandleInput(ev.Input), true
	default:
		m.log.WithFields(logrus.Fields{"kind": ev.Kind.String()}).Debug("event dropped")
		return EventResult{}, false
	}
}

// apply pops before pushing so Remove with Child replaces the handled window.
func (m *Manager) apply(r EventResult) {
	if r.Remove {
		m.pop("removed")
	}
	if r.Child != nil {
		m.Push(r.Child)
	}
}
