package terminal

// Escape sequences written by ANSIBackend.
const (
	seqClear          = "\x1b[2J\x1b[H"
	seqHome           = "\x1b[H"
	seqCursorHide     = "\x1b[?25l"
	seqCursorShow     = "\x1b[?25h"
	seqAltScreenEnter = "\x1b[?1049h"
	seqAltScreenExit  = "\x1b[?1049l"
	seqSGR0           = "\x1b[0m"
)
