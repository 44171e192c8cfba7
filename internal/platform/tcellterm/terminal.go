// Package tcellterm hosts consolebird on a gdamore/tcell screen.
package tcellterm

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/consolebird/internal/config"
	"github.com/vovakirdan/consolebird/internal/core"
)

// Terminal implements engine.Terminal on a tcell.Screen.
// The screen must already be initialized.
type Terminal struct {
	screen   tcell.Screen
	styles   map[rune]tcell.Style
	keys     chan core.Key
	row, col int
}

// NewTerminal wraps screen, colouring the configured glyphs.
func NewTerminal(screen tcell.Screen, cfg config.Config) *Terminal {
	return &Terminal{
		screen: screen,
		styles: map[rune]tcell.Style{
			cfg.PlayerGlyph(): tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
			cfg.WallGlyph():   tcell.StyleDefault.Foreground(tcell.ColorGreen),
			cfg.GroundGlyph(): tcell.StyleDefault.Foreground(tcell.ColorOlive),
		},
		keys: make(chan core.Key, 16),
	}
}

// Start forwards key events until the screen is finalized.
// Resize events only trigger a full redraw; the driver samples Size itself.
func (t *Terminal) Start() {
	go func() {
		for {
			ev := t.screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if k, ok := keyName(ev); ok {
					select {
					case t.keys <- k:
					default:
					}
				}
			}
		}
	}()
}

// keyName converts a tcell key event to Bubble Tea key notation.
func keyName(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return core.Key(string(ev.Rune())), true
	case tcell.KeyCtrlC:
		return "ctrl+c", true
	case tcell.KeyUp:
		return "up", true
	case tcell.KeyDown:
		return "down", true
	case tcell.KeyLeft:
		return "left", true
	case tcell.KeyRight:
		return "right", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyEscape:
		return "esc", true
	}
	return "", false
}

// Size returns the screen dimensions.
func (t *Terminal) Size() (int, int, error) {
	w, h := t.screen.Size()
	return w, h, nil
}

// Clear blanks the screen.
func (t *Terminal) Clear() error {
	t.screen.Clear()
	t.row, t.col = 0, 0
	return nil
}

// MoveCursor positions the next Write.
func (t *Terminal) MoveCursor(row, col int) error {
	t.row, t.col = row, col
	return nil
}

// Write draws text at the cursor and shows the result.
// Cells outside the screen are dropped by tcell.
func (t *Terminal) Write(text string) error {
	for _, r := range text {
		if r == '\n' {
			t.row++
			t.col = 0
			continue
		}
		style, ok := t.styles[r]
		if !ok {
			style = tcell.StyleDefault
		}
		t.screen.SetContent(t.col, t.row, r, nil, style)
		t.col++
	}
	t.screen.Show()
	return nil
}

// PollKey returns the next pending key without blocking.
func (t *Terminal) PollKey() (core.Key, bool) {
	select {
	case k := <-t.keys:
		return k, true
	default:
		return "", false
	}
}
