package engine

import (
	"errors"
	"strings"
	"time"

	"github.com/vovakirdan/consolebird/internal/core"
)

// call records one Terminal method invocation.
type call struct {
	op       string
	row, col int
	text     string
}

// fakeTerminal records every call and replays queued keys, one per poll.
// An empty key stands for a poll with nothing pending.
type fakeTerminal struct {
	width, height int
	keys          []core.Key
	calls         []call
	writeErr      error
	sizeErr       error
	row, col      int
}

func newFakeTerminal(w, h int) *fakeTerminal {
	return &fakeTerminal{width: w, height: h}
}

func (f *fakeTerminal) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return f.width, f.height, nil
}

func (f *fakeTerminal) Clear() error {
	f.calls = append(f.calls, call{op: "clear"})
	return nil
}

func (f *fakeTerminal) MoveCursor(row, col int) error {
	f.row, f.col = row, col
	f.calls = append(f.calls, call{op: "move", row: row, col: col})
	return nil
}

func (f *fakeTerminal) Write(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.calls = append(f.calls, call{op: "write", row: f.row, col: f.col, text: text})
	return nil
}

func (f *fakeTerminal) PollKey() (core.Key, bool) {
	if len(f.keys) == 0 {
		return "", false
	}
	k := f.keys[0]
	f.keys = f.keys[1:]
	return k, k != ""
}

func (f *fakeTerminal) writes() []call {
	var out []call
	for _, c := range f.calls {
		if c.op == "write" {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeTerminal) lastWrite() call {
	w := f.writes()
	if len(w) == 0 {
		return call{}
	}
	return w[len(w)-1]
}

func (f *fakeTerminal) countWrites(substr string) int {
	n := 0
	for _, c := range f.writes() {
		if strings.Contains(c.text, substr) {
			n++
		}
	}
	return n
}

func (f *fakeTerminal) reset() {
	f.calls = nil
}

// fakeTicker is fed by the test.
type fakeTicker struct {
	ch      chan time.Time
	stopped bool
}

func newFakeTicker(buffer int) *fakeTicker {
	return &fakeTicker{ch: make(chan time.Time, buffer)}
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() { t.stopped = true }

var errBrokenPipe = errors.New("broken pipe")
