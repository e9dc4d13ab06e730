package core

import (
	"fmt"
	"io"
	"time"
)

// Window is one interactive screen or dialog on the stack. A window owns its
// own state and only borrows the terminal for the duration of Render.
type Window interface {
	Render(t *Terminal) error
	HandleInput(input any) EventResult
	HandleTick(interval time.Duration) EventResult
	ShouldClose() bool
}

// Titled windows report a human readable name for logs and the journal.
type Titled interface {
	Title() string
}

// Scoped windows report the key scope used by a KeyRegistry.
type Scoped interface {
	Scope() string
}

// EventResult tells the dispatcher how to mutate the stack after a window
// handled an event. Remove pops the window that produced the result; Child is
// pushed afterwards. Both together replace the window.
type EventResult struct {
	Remove bool
	Child  Window
}

func Keep() EventResult { return EventResult{} }

func Remove() EventResult { return EventResult{Remove: true} }

func Spawn(child Window) EventResult { return EventResult{Child: child} }

func Replace(child Window) EventResult { return EventResult{Remove: true, Child: child} }

// Mutates reports whether applying the result changes the stack.
func (r EventResult) Mutates() bool {
	return r.Remove || r.Child != nil
}

// WindowName returns the window title, or its Go type when it has none.
func WindowName(w Window) string {
	if w == nil {
		return ""
	}
	if t, ok := w.(Titled); ok {
		if title := t.Title(); title != "" {
			return title
		}
	}
	return fmt.Sprintf("%T", w)
}

// ScopeOf returns the window scope, or "window" for unscoped windows.
func ScopeOf(w Window) string {
	if s, ok := w.(Scoped); ok {
		if scope := s.Scope(); scope != "" {
			return scope
		}
	}
	return "window"
}

// release closes windows that hold resources. It is called exactly once per
// popped window.
func release(w Window) error {
	if c, ok := w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
