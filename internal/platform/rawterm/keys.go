package rawterm

import (
	"unicode/utf8"

	"github.com/vovakirdan/consolebird/internal/core"
)

// parseKeys splits raw terminal input into key names.
// Arrow keys arrive as CSI sequences: ESC [ <code>.
func parseKeys(buf []byte) []core.Key {
	var keys []core.Key
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if i+2 < len(buf) && buf[i+1] == '[' {
				if name, ok := csiKeys[buf[i+2]]; ok {
					keys = append(keys, name)
					i += 2
					continue
				}
			}
			keys = append(keys, "esc")
			continue
		}

		if name, ok := controlKeys[b]; ok {
			keys = append(keys, name)
			continue
		}

		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError {
			continue
		}
		keys = append(keys, core.Key(string(r)))
		i += size - 1
	}
	return keys
}

var csiKeys = map[byte]core.Key{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
}

var controlKeys = map[byte]core.Key{
	0x03: "ctrl+c",
	0x04: "ctrl+d",
	0x09: "tab",
	0x0d: "enter",
	0x7f: "backspace",
}
