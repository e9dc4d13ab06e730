package core

// Mode selects which terminal modes the backend enters while the coordinator
// is alive.
type Mode struct {
	RawMode         bool
	AlternateScreen bool
	ShowCursor      bool
}

// Frame is the drawable surface handed to a Draw callback.
type Frame interface {
	Size() (width, height int)
	SetCell(x, y int, r rune)
}

// Backend is the terminal collaborator. The coordinator never writes escape
// sequences itself.
type Backend interface {
	// Init enters raw mode and the alternate screen as requested. On failure
	// it undoes whatever it entered itself.
	Init(mode Mode) error
	Draw(fn func(Frame)) error
	ShowCursor() error
	HideCursor() error
	// Restore leaves the modes entered by Init.
	Restore() error
}

// Terminal is the render target shared by every window. It is owned by one
// Manager and handed to Window.Render for the duration of a draw.
type Terminal struct {
	backend      Backend
	mode         Mode
	cursorHidden bool
	closed       bool
	frames       uint64
}

// NewTerminal acquires the backend: modes first, then cursor visibility.
func NewTerminal(b Backend, mode Mode) (*Terminal, error) {
	if err := b.Init(mode); err != nil {
		return nil, &SetupError{Op: "init", Err: err}
	}
	t := &Terminal{backend: b, mode: mode}
	if !mode.ShowCursor {
		if err := b.HideCursor(); err != nil {
			_ = b.Restore()
			return nil, &SetupError{Op: "hide cursor", Err: err}
		}
		t.cursorHidden = true
	}
	return t, nil
}

// Draw runs fn against a fresh frame and presents it.
func (t *Terminal) Draw(fn func(Frame)) error {
	if t.closed {
		return ErrTerminalClosed
	}
	if err := t.backend.Draw(fn); err != nil {
		return err
	}
	t.frames++
	return nil
}

func (t *Terminal) Mode() Mode { return t.mode }

// Frames counts successful draws.
func (t *Terminal) Frames() uint64 { return t.frames }

// Backend exposes the underlying backend for windows that need
// backend-specific drawing.
func (t *Terminal) Backend() Backend { return t.backend }

// Close releases the terminal in reverse acquisition order: backend modes,
// then cursor visibility. Only the first call has an effect.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	restoreErr := t.backend.Restore()
	if t.cursorHidden {
		if err := t.backend.ShowCursor(); err != nil && restoreErr == nil {
			return err
		}
	}
	return restoreErr
}
