package core

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelClosed is returned by Publish and Recv once the event channel
	// has been closed. The dispatcher treats it as a normal shutdown.
	ErrChannelClosed = errors.New("event channel closed")

	// ErrManagerClosed is returned by Run on a manager that already ran or
	// was closed.
	ErrManagerClosed = errors.New("window manager closed")

	// ErrTerminalClosed is returned by Draw after the terminal was restored.
	ErrTerminalClosed = errors.New("terminal closed")
)

// SetupError reports that the backend could not enter a requested mode. No
// window has been rendered when it is returned.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("terminal setup: %s: %v", e.Op, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// RenderError reports a failed draw. It aborts the loop.
type RenderError struct {
	Window string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Window, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
