package tui

import (
	"github.com/vovakirdan/consolebird/internal/core"
)

// maxPendingKeys bounds the key queue between Update calls and ticks.
const maxPendingKeys = 16

// screenTerminal implements engine.Terminal on a virtual core.Screen.
// Its size follows tea.WindowSizeMsg and its keys come from tea.KeyMsg.
type screenTerminal struct {
	screen  *core.Screen
	pending []core.Key
}

func newScreenTerminal() *screenTerminal {
	return &screenTerminal{screen: core.NewScreen(0, 0)}
}

func (t *screenTerminal) resize(width, height int) {
	t.screen.Resize(max(width, 0), max(height, 0))
}

func (t *screenTerminal) pushKey(k core.Key) {
	if len(t.pending) < maxPendingKeys {
		t.pending = append(t.pending, k)
	}
}

func (t *screenTerminal) Size() (int, int, error) {
	return t.screen.Width(), t.screen.Height(), nil
}

func (t *screenTerminal) Clear() error {
	t.screen.Clear()
	t.screen.MoveCursor(0, 0)
	return nil
}

func (t *screenTerminal) MoveCursor(row, col int) error {
	t.screen.MoveCursor(row, col)
	return nil
}

func (t *screenTerminal) Write(text string) error {
	t.screen.Write(text)
	return nil
}

func (t *screenTerminal) PollKey() (core.Key, bool) {
	if len(t.pending) == 0 {
		return "", false
	}
	k := t.pending[0]
	t.pending = t.pending[1:]
	return k, true
}
