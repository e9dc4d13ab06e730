package core

// Stack holds the open windows, bottom first. Only the top window is rendered
// or sent events; the ones below wait untouched until everything above them
// is gone.
type Stack struct {
	windows []Window
}

// Push places w on top and returns the new depth. A nil window is ignored.
func (s *Stack) Push(w Window) int {
	if w != nil {
		s.windows = append(s.windows, w)
	}
	return len(s.windows)
}

// Pop detaches the top window. The caller owns it afterwards and is
// responsible for releasing it.
func (s *Stack) Pop() (Window, bool) {
	n := len(s.windows)
	if n == 0 {
		return nil, false
	}
	w := s.windows[n-1]
	s.windows[n-1] = nil
	s.windows = s.windows[:n-1]
	return w, true
}

// Top is the active window, or nil when the stack is empty.
func (s *Stack) Top() Window {
	if len(s.windows) == 0 {
		return nil
	}
	return s.windows[len(s.windows)-1]
}

func (s *Stack) Depth() int  { return len(s.windows) }
func (s *Stack) Empty() bool { return len(s.windows) == 0 }

// Names lists the windows bottom first, for logs.
func (s *Stack) Names() []string {
	names := make([]string, len(s.windows))
	for i, w := range s.windows {
		names[i] = WindowName(w)
	}
	return names
}
