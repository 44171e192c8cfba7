package rawterm

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/consolebird/internal/core"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []core.Key
	}{
		{"space", []byte(" "), []core.Key{" "}},
		{"letters", []byte("qw"), []core.Key{"q", "w"}},
		{"ctrl+c", []byte{0x03}, []core.Key{"ctrl+c"}},
		{"enter", []byte{'\r'}, []core.Key{"enter"}},
		{"arrows", []byte("\x1b[A\x1b[D"), []core.Key{"up", "left"}},
		{"lone escape", []byte{0x1b}, []core.Key{"esc"}},
		{"mixed", []byte(" \x1b[Bq"), []core.Key{" ", "down", "q"}},
		{"utf8", []byte("é"), []core.Key{"é"}},
		{"empty", nil, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseKeys(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("parseKeys(%q) = %q, expected %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestTerminalOutput(t *testing.T) {
	var out bytes.Buffer
	term := newTerminal(&out, -1)

	if err := term.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := term.MoveCursor(0, 0); err != nil {
		t.Fatalf("MoveCursor() error = %v", err)
	}
	if err := term.MoveCursor(12, 35); err != nil {
		t.Fatalf("MoveCursor() error = %v", err)
	}
	if err := term.Write("ab\ncd"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	expected := seqClear + "\033[1;1H" + "\033[13;36H" + "ab\r\ncd"
	if out.String() != expected {
		t.Errorf("output = %q, expected %q", out.String(), expected)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestTerminalWriteError(t *testing.T) {
	term := newTerminal(failingWriter{}, -1)
	if err := term.Write("x"); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("Write() error = %v, expected io.ErrClosedPipe", err)
	}
}

func TestSizeWithoutTerminal(t *testing.T) {
	term := newTerminal(io.Discard, -1)
	if _, _, err := term.Size(); err == nil {
		t.Error("Size() should fail on an invalid descriptor")
	}
}

func TestReaderForwardsKeys(t *testing.T) {
	term := newTerminal(io.Discard, -1)
	term.startReader(bytes.NewReader([]byte(" q")))

	var got []core.Key
	deadline := time.After(time.Second)
	for len(got) < 2 {
		if k, ok := term.PollKey(); ok {
			got = append(got, k)
			continue
		}
		select {
		case <-deadline:
			t.Fatalf("received %q before timeout, expected 2 keys", got)
		case <-time.After(time.Millisecond):
		}
	}

	if got[0] != " " || got[1] != "q" {
		t.Errorf("keys = %q, expected [\" \" \"q\"]", got)
	}
	if _, ok := term.PollKey(); ok {
		t.Error("PollKey should report nothing once drained")
	}
}
