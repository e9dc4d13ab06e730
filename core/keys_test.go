package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"screen:menu"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "screen:menu") {
		t.Fatalf("expected ctrl+k in screen:menu")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "screen:palette") {
		t.Fatalf("did not expect ctrl+k in screen:palette")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "screen:palette") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestKeyRegistryIgnoresUnnamedInput(t *testing.T) {
	reg := NewKeyRegistry(EscapeBindings())
	if reg.IsAction(42, ActionClose, "window") {
		t.Fatalf("non-key payload should never match")
	}
	if !reg.IsAction(" ESC ", ActionClose, "window") {
		t.Fatalf("key names should be normalized")
	}
	if len(reg.BindingsForScope("anything")) != 1 {
		t.Fatalf("escape binding should apply to every scope")
	}
}

type scopedStub struct{ *stubWindow }

func (scopedStub) Scope() string { return "screen:palette" }

func TestMatcherUsesTopWindowScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{{Keys: []string{"esc"}, Action: ActionClose, Scopes: []string{"screen:palette"}}})
	match := reg.Matcher(ActionClose)
	if !match(scopedStub{&stubWindow{}}, tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Fatalf("expected esc to close the palette")
	}
	if match(&stubWindow{name: "menu"}, tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Fatalf("esc should not close windows outside the bound scope")
	}
}

func TestKeyRegistrySpaceKey(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{{Keys: []string{"space"}, Action: "pause"}})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "pause", "screen:countdown") {
		t.Fatalf("space key should match the space binding")
	}
	if reg.IsAction("", "pause", "screen:countdown") {
		t.Fatalf("empty key name should not match")
	}
}
