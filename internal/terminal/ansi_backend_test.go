package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/winstack/core"
)

func TestANSIBackendLifecycle(t *testing.T) {
	var out bytes.Buffer
	b := NewANSIBackend(&out, -1)
	b.SetSize(10, 3)

	term, err := core.NewTerminal(b, core.Mode{AlternateScreen: true})
	require.NoError(t, err)
	require.NoError(t, term.Draw(func(f core.Frame) {
		DrawText(f, 0, 0, "hi\nthere")
	}))
	require.NoError(t, term.Close())
	require.NoError(t, term.Close())

	got := out.String()
	require.True(t, strings.HasPrefix(got, seqAltScreenEnter+seqCursorHide), "got %q", got)
	require.Contains(t, got, "hi\r\nthere")
	require.True(t, strings.HasSuffix(got, seqAltScreenExit+seqCursorShow), "got %q", got)
	require.Equal(t, 1, strings.Count(got, seqAltScreenExit))
}

func TestANSIBackendShowCursorLeavesCursorAlone(t *testing.T) {
	var out bytes.Buffer
	b := NewANSIBackend(&out, -1)

	term, err := core.NewTerminal(b, core.Mode{ShowCursor: true})
	require.NoError(t, err)
	require.NoError(t, term.Close())
	require.Empty(t, out.String())
}

func TestANSIBackendRawModeNeedsTerminal(t *testing.T) {
	var out bytes.Buffer
	b := NewANSIBackend(&out, -1)

	_, err := core.NewTerminal(b, core.Mode{RawMode: true, AlternateScreen: true})
	var setupErr *core.SetupError
	require.ErrorAs(t, err, &setupErr)
	require.Equal(t, "init", setupErr.Op)
	require.Empty(t, out.String(), "alternate screen must not be entered")
}

func TestANSIBackendFallbackSize(t *testing.T) {
	b := NewANSIBackend(&bytes.Buffer{}, -1)
	w, h := b.size()
	require.Equal(t, 80, w)
	require.Equal(t, 24, h)
}
