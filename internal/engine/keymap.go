package engine

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/consolebird/internal/config"
	"github.com/vovakirdan/consolebird/internal/core"
)

// KeyMap holds the key bindings of a session.
// It implements help.KeyMap so hosts can render it with bubbles/help.
type KeyMap struct {
	Jump key.Binding
	Quit key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(keys config.Keys) KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(keys.Jump...),
			key.WithHelp(helpKeys(keys.Jump), "flap"),
		),
		Quit: key.NewBinding(
			key.WithKeys(keys.Quit...),
			key.WithHelp(helpKeys(keys.Quit), "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// helpKeys joins key names for display, spelling out the space bar.
func helpKeys(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "/"
		}
		if n == " " {
			n = "space"
		}
		out += n
	}
	return out
}

// KeyMapper translates key presses to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the configured bindings.
func NewKeyMapper(keys config.Keys) *KeyMapper {
	return &KeyMapper{keys: NewKeyMap(keys)}
}

// KeyMap returns the bindings the mapper matches against.
func (km *KeyMapper) KeyMap() KeyMap {
	return km.keys
}

// MapKey translates a key to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(k core.Key) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(k, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(k, km.keys.Jump):
		return core.ActionJump, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key press.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(k core.Key, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(k)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
