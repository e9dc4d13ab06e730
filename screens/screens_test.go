package screens

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/winstack/core"
	"github.com/jask/winstack/internal/terminal"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

type fakeClock struct{ rate time.Duration }

func (c *fakeClock) TickRate() time.Duration     { return c.rate }
func (c *fakeClock) SetTickRate(d time.Duration) { c.rate = d }

func newTerm(t *testing.T) (*core.Terminal, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	b := terminal.NewANSIBackend(&out, -1)
	b.SetSize(60, 12)
	term, err := core.NewTerminal(b, core.Mode{ShowCursor: true})
	require.NoError(t, err)
	return term, &out
}

func TestCountdownClosesItself(t *testing.T) {
	c := NewCountdown(2)
	require.False(t, c.ShouldClose())
	c.HandleTick(time.Second)
	require.Equal(t, 1, c.Remaining())

	c.HandleInput(runes(" "))
	c.HandleTick(time.Second)
	require.Equal(t, 1, c.Remaining(), "paused countdown must not advance")

	c.HandleInput(key(tea.KeySpace))
	c.HandleInput(runes("r"))
	require.Equal(t, 2, c.Remaining())
	c.HandleTick(time.Second)
	c.HandleTick(time.Second)
	require.True(t, c.ShouldClose())
}

type transition struct {
	op     string
	window string
	depth  int
}

// stackLog records stack mutations seen by the coordinator.
type stackLog struct{ trace []transition }

func (l *stackLog) WindowPushed(w core.Window, depth int) {
	l.trace = append(l.trace, transition{"push", core.WindowName(w), depth})
}

func (l *stackLog) WindowPopped(w core.Window, depth int) {
	l.trace = append(l.trace, transition{"pop", core.WindowName(w), depth})
}

func TestConfirmOwnsTheWindowItGuards(t *testing.T) {
	owner := NewCountdown(3)

	c := NewConfirm("sure?", owner)
	require.Equal(t, core.Keep(), c.HandleInput(runes("x")))
	require.Equal(t, core.Remove(), c.HandleInput(runes("y")))

	c = NewConfirm("sure?", owner)
	r := c.HandleInput(runes("n"))
	require.True(t, r.Remove)
	require.Same(t, owner, r.Child)

	c = NewConfirm("sure?", owner)
	r = c.HandleInput(key(tea.KeyEsc))
	require.Same(t, owner, r.Child)
}

func TestConfirmWithoutOwnerJustCloses(t *testing.T) {
	c := NewConfirm("sure?", nil)
	require.Equal(t, core.Remove(), c.HandleInput(runes("n")))
	require.Equal(t, core.Remove(), NewConfirm("sure?", nil).HandleInput(runes("y")))
}

func TestMenuSpawnsChildren(t *testing.T) {
	m := NewMenu(3, DemoCommands(&Clock{}, 3))

	r := m.HandleInput(runes("c"))
	require.False(t, r.Remove)
	require.IsType(t, &Countdown{}, r.Child)

	r = m.HandleInput(runes("p"))
	require.IsType(t, &Palette{}, r.Child)

	r = m.HandleInput(runes("q"))
	require.True(t, r.Remove, "the menu hands itself to the quit dialog")
	confirm, ok := r.Child.(*Confirm)
	require.True(t, ok)
	require.Same(t, m, confirm.HandleInput(runes("n")).Child)
	require.False(t, m.ShouldClose())
}

func TestNoticeClosesOnKeyOrTimeout(t *testing.T) {
	n := NewNotice("About", "hello", 2)
	require.Equal(t, core.Remove(), n.HandleInput(runes("x")))

	n = NewNotice("About", "hello", 2)
	n.HandleTick(time.Second)
	require.False(t, n.ShouldClose())
	n.HandleTick(time.Second)
	require.True(t, n.ShouldClose())
}

func TestCommandSearchRanking(t *testing.T) {
	cmds := DemoCommands(&Clock{}, 3)
	require.Equal(t, 4, cmds.Len())

	all := cmds.Search("")
	require.Len(t, all, 4)
	// Tick commands are disabled until a coordinator is bound.
	require.Equal(t, "About", all[0].Name)
	require.Equal(t, "Countdown", all[1].Name)
	require.True(t, all[2].Disabled)
	require.True(t, all[3].Disabled)

	require.Equal(t, "Countdown", cmds.Search("count")[0].Name)
	require.Equal(t, "Countdown", cmds.Search("cuntdown")[0].Name)
	require.Empty(t, cmds.Search("zzzz"))

	hits := cmds.Search("interval")
	require.Len(t, hits, 2)
}

func TestTickCommandsAnswerWithNotice(t *testing.T) {
	clock := &Clock{}
	cmds := DemoCommands(clock, 3)
	_, reason, ok := cmds.Run("tick.faster")
	require.False(t, ok)
	require.Equal(t, "no coordinator attached", reason)

	_, reason, ok = cmds.Run("missing")
	require.False(t, ok)
	require.Contains(t, reason, "unknown command")

	fake := &fakeClock{rate: time.Second}
	clock.Bind(fake)
	w, _, ok := cmds.Run("tick.faster")
	require.True(t, ok)
	require.Equal(t, 500*time.Millisecond, fake.rate)
	notice, isNotice := w.(*Notice)
	require.True(t, isNotice)
	require.Equal(t, "tick rate 500ms", notice.Text())

	w, _, ok = cmds.Run("tick.slower")
	require.True(t, ok)
	require.Equal(t, time.Second, fake.rate)
	require.Equal(t, "tick rate 1s", w.(*Notice).Text())
}

func TestPaletteTypingFiltersAndReplaces(t *testing.T) {
	p := NewPalette(DemoCommands(&Clock{}, 3))

	for _, r := range "about" {
		require.Equal(t, core.Keep(), p.HandleInput(runes(string(r))))
	}
	require.Equal(t, "about", p.Query())
	require.Len(t, p.Results(), 1)

	r := p.HandleInput(key(tea.KeyEnter))
	require.True(t, r.Remove, "palette is replaced by the command's window")
	require.IsType(t, &Notice{}, r.Child)
}

func TestPaletteDisabledCommandKeepsPalette(t *testing.T) {
	p := NewPalette(DemoCommands(&Clock{}, 3))
	for _, r := range "faster" {
		p.HandleInput(runes(string(r)))
	}
	require.Equal(t, core.Keep(), p.HandleInput(key(tea.KeyEnter)))
	require.Equal(t, core.Remove(), p.HandleInput(key(tea.KeyEsc)))
}

func TestWindowsRender(t *testing.T) {
	term, out := newTerm(t)
	m := NewMenu(3, DemoCommands(&Clock{}, 3))
	windows := []core.Window{
		m,
		NewCountdown(3),
		NewPalette(m.Commands()),
		NewConfirm("Quit winstack?", nil),
		NewNotice("About", "hello", 1),
	}
	for _, w := range windows {
		out.Reset()
		require.NoError(t, w.Render(term))
		require.NotEmpty(t, out.String(), core.WindowName(w))
	}
	out.Reset()
	require.NoError(t, m.Render(term))
	require.Contains(t, out.String(), "p commands")
}

// The quit flow moves the menu through the stack by value only: declining
// puts the same menu back, accepting leaves nothing to render.
func TestMenuQuitFlowThroughManager(t *testing.T) {
	var out bytes.Buffer
	b := terminal.NewANSIBackend(&out, -1)
	b.SetSize(60, 12)
	clock := &Clock{}
	menu := NewMenu(3, DemoCommands(clock, 3))
	log := &stackLog{}
	m, err := core.Open(b, core.DefaultSettings(), menu, core.WithTickRate(time.Hour), core.WithObserver(log))
	require.NoError(t, err)
	clock.Bind(m)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	keys := []tea.KeyMsg{runes("p"), key(tea.KeyEsc), runes("q"), runes("n"), runes("q"), runes("y")}
	for _, k := range keys {
		require.NoError(t, m.Publisher().Publish(ctx, core.Input(k)))
	}
	require.NoError(t, m.Run(ctx))
	require.Equal(t, 0, m.Depth())

	require.Equal(t, []transition{
		{"push", "menu", 1},
		{"push", "command palette", 2},
		{"pop", "command palette", 1},
		{"pop", "menu", 0},
		{"push", "confirm", 1},
		{"pop", "confirm", 0},
		{"push", "menu", 1},
		{"pop", "menu", 0},
		{"push", "confirm", 1},
		{"pop", "confirm", 0},
	}, log.trace)
}

func TestPaletteCommandChangesManagerTickRate(t *testing.T) {
	var out bytes.Buffer
	b := terminal.NewANSIBackend(&out, -1)
	b.SetSize(60, 12)
	clock := &Clock{}
	menu := NewMenu(3, DemoCommands(clock, 3))
	m, err := core.Open(b, core.DefaultSettings(), menu, core.WithTickRate(time.Hour))
	require.NoError(t, err)
	clock.Bind(m)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	keys := []tea.KeyMsg{runes("p")}
	for _, r := range "faster" {
		keys = append(keys, runes(string(r)))
	}
	// enter runs the command, x dismisses its notice, q then y quits.
	keys = append(keys, key(tea.KeyEnter), runes("x"), runes("q"), runes("y"))
	for _, k := range keys {
		require.NoError(t, m.Publisher().Publish(ctx, core.Input(k)))
	}
	require.NoError(t, m.Run(ctx))
	require.Equal(t, 30*time.Minute, m.TickRate())
}
