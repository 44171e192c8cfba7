// Package rawterm hosts consolebird on a raw-mode terminal using
// golang.org/x/term and plain ANSI escape sequences.
package rawterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/vovakirdan/consolebird/internal/core"
)

const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
)

// Terminal implements engine.Terminal on a file descriptor in raw mode.
type Terminal struct {
	out      io.Writer
	sizeFd   int
	inFd     int
	oldState *term.State
	keys     chan core.Key
	numBuf   [20]byte // Scratch buffer for cursor sequences
}

// Open puts stdin into raw mode, hides the cursor and starts reading keys.
// Close must be called to restore the terminal.
func Open(in, out *os.File) (*Terminal, error) {
	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, errors.New("rawterm: stdin is not a terminal")
	}

	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("rawterm: enable raw mode: %w", err)
	}

	t := newTerminal(out, int(out.Fd()))
	t.inFd = inFd
	t.oldState = oldState

	if _, err := io.WriteString(out, seqHideCursor+seqClear); err != nil {
		_ = term.Restore(inFd, oldState)
		return nil, fmt.Errorf("rawterm: write: %w", err)
	}

	t.startReader(bufio.NewReader(in))
	return t, nil
}

func newTerminal(out io.Writer, sizeFd int) *Terminal {
	return &Terminal{
		out:    out,
		sizeFd: sizeFd,
		keys:   make(chan core.Key, 16),
	}
}

// startReader forwards key presses from r. Keys are dropped while the
// channel is full. The goroutine stays blocked on r after Close until the
// next byte arrives or the process exits.
func (t *Terminal) startReader(r io.Reader) {
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, k := range parseKeys(buf[:n]) {
				select {
				case t.keys <- k:
				default:
				}
			}
			if err != nil {
				return
			}
		}
	}()
}

// Close shows the cursor and restores the terminal mode.
func (t *Terminal) Close() error {
	_, werr := io.WriteString(t.out, seqShowCursor+"\r\n")
	if t.oldState != nil {
		if err := term.Restore(t.inFd, t.oldState); err != nil {
			return fmt.Errorf("rawterm: restore: %w", err)
		}
	}
	if werr != nil {
		return fmt.Errorf("rawterm: write: %w", werr)
	}
	return nil
}

// Size returns the terminal dimensions.
func (t *Terminal) Size() (int, int, error) {
	w, h, err := term.GetSize(t.sizeFd)
	if err != nil {
		return 0, 0, fmt.Errorf("rawterm: size: %w", err)
	}
	return w, h, nil
}

// Clear blanks the terminal and homes the cursor.
func (t *Terminal) Clear() error {
	return t.write(seqClear)
}

// MoveCursor positions the cursor. Coordinates are zero-based.
func (t *Terminal) MoveCursor(row, col int) error {
	var sb strings.Builder
	sb.WriteString("\033[")
	sb.Write(strconv.AppendInt(t.numBuf[:0], int64(row+1), 10))
	sb.WriteByte(';')
	sb.Write(strconv.AppendInt(t.numBuf[:0], int64(col+1), 10))
	sb.WriteByte('H')
	return t.write(sb.String())
}

// Write outputs text in a single write. Raw mode disables output
// processing, so newlines are expanded to CR LF.
func (t *Terminal) Write(text string) error {
	return t.write(strings.ReplaceAll(text, "\n", "\r\n"))
}

func (t *Terminal) write(s string) error {
	if _, err := io.WriteString(t.out, s); err != nil {
		return fmt.Errorf("rawterm: write: %w", err)
	}
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
