package core

import (
	"fmt"
	"slices"
	"strings"
)

// ActionClose is the action consulted by the built-in escape policy.
const ActionClose = "close"

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry maps key names to coordinator actions. Input payloads are
// matched through their String form, so any decoder whose events print as
// key names ("esc", "ctrl+c", "q") works.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(input any, action, scope string) bool {
	name, ok := KeyName(input)
	if !ok {
		return false
	}
	pressed := normalizeKey(name)
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

// Matcher adapts the registry to WithEscapeKey for the given action, scoped
// by the window currently on top.
func (r *KeyRegistry) Matcher(action string) func(top Window, input any) bool {
	return func(top Window, input any) bool {
		return r.IsAction(input, action, ScopeOf(top))
	}
}

// EscapeBindings builds the default close binding for the escape policy.
func EscapeBindings(keys ...string) []KeyBinding {
	if len(keys) == 0 {
		keys = []string{"esc"}
	}
	return []KeyBinding{{Keys: keys, Action: ActionClose, Description: "close window", Scopes: []string{"*"}}}
}

// KeyName returns the printable key name of an input payload.
func KeyName(input any) (string, bool) {
	switch v := input.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
