package core

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Option configures a Manager.
type Option func(*Manager) error

// Settings are the backend-construction parameters accepted by Open.
type Settings struct {
	TickRate        time.Duration
	ShowCursor      bool
	RawMode         bool
	AlternateScreen bool
	QueueSize       int
}

func DefaultSettings() Settings {
	return Settings{
		TickRate:   DefaultTickRate,
		ShowCursor: true,
		QueueSize:  DefaultQueueSize,
	}
}

func (s Settings) Mode() Mode {
	return Mode{RawMode: s.RawMode, AlternateScreen: s.AlternateScreen, ShowCursor: s.ShowCursor}
}

// WithTickRate sets the initial tick interval.
func WithTickRate(d time.Duration) Option {
	return func(m *Manager) error {
		if d <= 0 {
			return fmt.Errorf("tick rate must be positive, got %s", d)
		}
		m.tickRate = d
		return nil
	}
}

// WithQueueSize bounds the event channel.
func WithQueueSize(size int) Option {
	return func(m *Manager) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		m.queueSize = size
		return nil
	}
}

// WithEscapeKey installs a coordinator-level close policy. When match reports
// true for an input event, the top window is popped without seeing it.
func WithEscapeKey(match func(top Window, input any) bool) Option {
	return func(m *Manager) error {
		m.escape = match
		return nil
	}
}

// WithSource adds an input source started by Run.
func WithSource(src Source) Option {
	return func(m *Manager) error {
		if src == nil {
			return fmt.Errorf("nil input source")
		}
		m.sources = append(m.sources, src)
		return nil
	}
}

// WithObserver registers a hook for stack mutations.
func WithObserver(o StackObserver) Option {
	return func(m *Manager) error {
		if o == nil {
			return fmt.Errorf("nil stack observer")
		}
		m.observers = append(m.observers, o)
		return nil
	}
}

// WithLogger routes coordinator logs. The default logger discards output so
// nothing is written over the terminal being drawn.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Manager) error {
		if log == nil {
			return fmt.Errorf("nil logger")
		}
		m.log = log
		return nil
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
