package config

import (
	_ "embed"
)

//go:embed defaults/consolebird.yaml
var defaultYAML []byte

// Default returns the built-in consolebird configuration.
func Default() Config {
	return Config{
		Board: Board{
			Height:  20,
			GapSize: 7,
		},
		Obstacles: Obstacles{
			Spacing:       16,
			InitialOffset: 25,
			Prefill:       10,
			ScrollSpeed:   4,
		},
		Player: Player{
			Column: 5,
			StartY: 13, // two thirds of the board
		},
		Physics: Physics{
			Gravity:     -10,
			JumpHeight:  3,
			MaxVelocity: 12,
		},
		Timing: Timing{
			TargetFPS: 30,
		},
		Glyphs: Glyphs{
			Player: "●",
			Wall:   "▊",
			Ground: "▇",
		},
		Keys: Keys{
			Jump: []string{" "},
			Quit: []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
