// Package engine runs a consolebird session against an abstract terminal.
// It owns the frame loop and the Running / WaitingForResize / GameOver state
// machine; platform packages only supply a Terminal and a Ticker.
package engine

import (
	"errors"

	"github.com/vovakirdan/consolebird/internal/core"
)

// ErrTerminal wraps every failure reported by a Terminal. Terminal errors are
// fatal: the session stops and the error is returned to the caller.
var ErrTerminal = errors.New("engine: terminal failure")

// Terminal is the output and input surface a session draws on.
// Rows and columns are zero-based with row 0 at the top.
type Terminal interface {
	// Size returns the current terminal dimensions in cells.
	Size() (width, height int, err error)

	// Clear blanks the whole terminal.
	Clear() error

	// MoveCursor positions the cursor for the next Write.
	MoveCursor(row, col int) error

	// Write outputs text at the cursor. A newline moves to column 0 of the next row.
	Write(text string) error

	// PollKey returns the next pending key press without blocking.
	PollKey() (core.Key, bool)
}
