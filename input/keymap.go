package input

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is a gameplay input consumed by the simulation
type Action uint8

const (
	ActionFire Action = iota
	ActionMoveLeft
	ActionMoveRight
)

var actionNames = map[Action]string{
	ActionFire:      "fire",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
}

func (a Action) String() string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "unknown"
}

// ParseAction resolves a config action name
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// KeyName normalizes a tcell key event to a binding name
// Runes are lower-cased ("a", "space"), special keys use tcell names lower-cased ("left", "ctrl-c")
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		r := unicode.ToLower(ev.Rune())
		if r == ' ' {
			return "space"
		}
		return string(r)
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return strings.ToLower(name)
	}
	return fmt.Sprintf("key-%d", ev.Key())
}

// IsCtrl reports whether the event is a control chord
// Enter and Tab share codes with Ctrl-M and Ctrl-I, so only the modifier is trusted
func IsCtrl(ev *tcell.EventKey) bool {
	return ev.Modifiers()&tcell.ModCtrl != 0
}

// KeyMap binds key names to actions
type KeyMap struct {
	bindings map[string]Action
}

// DefaultBindings is the stock layout: arrows, a/d and h/l to move, space or up to fire
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"fire":       {"space", "up", "w", "k"},
		"move_left":  {"left", "a", "h"},
		"move_right": {"right", "d", "l"},
	}
}

// DefaultKeyMap builds the stock layout
func DefaultKeyMap() *KeyMap {
	m, _ := NewKeyMap(DefaultBindings())
	return m
}

// NewKeyMap builds a keymap from action name to key names
// A key bound to two actions is an error
func NewKeyMap(bindings map[string][]string) (*KeyMap, error) {
	m := &KeyMap{bindings: make(map[string]Action)}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, key := range bindings[name] {
			key = strings.ToLower(strings.TrimSpace(key))
			if prev, ok := m.bindings[key]; ok && prev != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", key, prev, action)
			}
			m.bindings[key] = action
		}
	}
	return m, nil
}

// Lookup returns the action bound to a key name
func (m *KeyMap) Lookup(key string) (Action, bool) {
	a, ok := m.bindings[key]
	return a, ok
}

// LookupEvent returns the action bound to a tcell key event
func (m *KeyMap) LookupEvent(ev *tcell.EventKey) (Action, bool) {
	return m.Lookup(KeyName(ev))
}
