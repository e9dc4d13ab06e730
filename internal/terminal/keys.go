package terminal

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
)

var tcellKeys = map[tcell.Key]tea.KeyType{
	tcell.KeyEscape:     tea.KeyEsc,
	tcell.KeyEnter:      tea.KeyEnter,
	tcell.KeyTab:        tea.KeyTab,
	tcell.KeyBacktab:    tea.KeyShiftTab,
	tcell.KeyBackspace:  tea.KeyBackspace,
	tcell.KeyBackspace2: tea.KeyBackspace,
	tcell.KeyUp:         tea.KeyUp,
	tcell.KeyDown:       tea.KeyDown,
	tcell.KeyLeft:       tea.KeyLeft,
	tcell.KeyRight:      tea.KeyRight,
	tcell.KeyHome:       tea.KeyHome,
	tcell.KeyEnd:        tea.KeyEnd,
	tcell.KeyPgUp:       tea.KeyPgUp,
	tcell.KeyPgDn:       tea.KeyPgDown,
	tcell.KeyDelete:     tea.KeyDelete,
	tcell.KeyInsert:     tea.KeyInsert,
	tcell.KeyF1:         tea.KeyF1,
	tcell.KeyF2:         tea.KeyF2,
	tcell.KeyF3:         tea.KeyF3,
	tcell.KeyF4:         tea.KeyF4,
	tcell.KeyF5:         tea.KeyF5,
	tcell.KeyF6:         tea.KeyF6,
	tcell.KeyF7:         tea.KeyF7,
	tcell.KeyF8:         tea.KeyF8,
	tcell.KeyF9:         tea.KeyF9,
	tcell.KeyF10:        tea.KeyF10,
	tcell.KeyF11:        tea.KeyF11,
	tcell.KeyF12:        tea.KeyF12,
}

// KeyFromTcell converts a tcell key event. ok is false for keys with no
// bubbletea equivalent.
func KeyFromTcell(ev *tcell.EventKey) (tea.KeyMsg, bool) {
	k := ev.Key()
	alt := ev.Modifiers()&tcell.ModAlt != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	if t, ok := tcellKeys[k]; ok {
		return tea.KeyMsg{Type: t, Alt: alt}, true
	}
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if ctrl {
			if t, ok := ctrlLetter(r); ok {
				return tea.KeyMsg{Type: t, Alt: alt}, true
			}
		}
		return runeKey(r, alt), true
	case ctrl && k >= 'A' && k <= 'Z':
		// Newer tcell reports ctrl+letter as the upper-case letter with ModCtrl.
		return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(k-'A'), Alt: alt}, true
	case k >= 1 && k <= 26:
		// Older tcell uses the ASCII control codes.
		return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(k-1), Alt: alt}, true
	}
	return tea.KeyMsg{}, false
}

func ctrlLetter(r rune) (tea.KeyType, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return tea.KeyCtrlA + tea.KeyType(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return tea.KeyCtrlA + tea.KeyType(r-'A'), true
	}
	return 0, false
}

func runeKey(r rune, alt bool) tea.KeyMsg {
	if r == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}, Alt: alt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: alt}
}

var csiKeys = map[string]tea.KeyType{
	"A":  tea.KeyUp,
	"B":  tea.KeyDown,
	"C":  tea.KeyRight,
	"D":  tea.KeyLeft,
	"H":  tea.KeyHome,
	"F":  tea.KeyEnd,
	"Z":  tea.KeyShiftTab,
	"2~": tea.KeyInsert,
	"3~": tea.KeyDelete,
	"5~": tea.KeyPgUp,
	"6~": tea.KeyPgDown,
}

// DecodeKeys splits one read from a raw-mode terminal into key messages.
// A lone ESC byte is the escape key; ESC followed by a printable rune is that
// rune with Alt. Unrecognised sequences are skipped.
func DecodeKeys(b []byte) []tea.KeyMsg {
	var out []tea.KeyMsg
	for len(b) > 0 {
		c := b[0]
		switch {
		case c == 0x1b:
			n, key, ok := decodeEscape(b)
			if ok {
				out = append(out, key)
			}
			b = b[n:]
		case c == '\r' || c == '\n':
			out = append(out, tea.KeyMsg{Type: tea.KeyEnter})
			b = b[1:]
		case c == 0x7f || c == 0x08:
			out = append(out, tea.KeyMsg{Type: tea.KeyBackspace})
			b = b[1:]
		case c < 0x20:
			out = append(out, tea.KeyMsg{Type: tea.KeyType(c)})
			b = b[1:]
		default:
			r, size := utf8.DecodeRune(b)
			if r != utf8.RuneError {
				out = append(out, runeKey(r, false))
			}
			b = b[size:]
		}
	}
	return out
}

func decodeEscape(b []byte) (int, tea.KeyMsg, bool) {
	if len(b) == 1 {
		return 1, tea.KeyMsg{Type: tea.KeyEsc}, true
	}
	if b[1] == '[' || b[1] == 'O' {
		// CSI / SS3: parameters then a final byte in 0x40..0x7e.
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				t, ok := csiKeys[string(b[2:i+1])]
				return i + 1, tea.KeyMsg{Type: t}, ok
			}
		}
		return len(b), tea.KeyMsg{}, false
	}
	if b[1] == 0x1b {
		return 1, tea.KeyMsg{Type: tea.KeyEsc}, true
	}
	r, size := utf8.DecodeRune(b[1:])
	if r == utf8.RuneError || r < 0x20 {
		return 1, tea.KeyMsg{Type: tea.KeyEsc}, true
	}
	return 1 + size, runeKey(r, true), true
}
