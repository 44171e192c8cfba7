// Package config provides YAML/TOML-based game configuration loading and
// validation for consolebird.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains every tunable of a consolebird session.
type Config struct {
	Board     Board     `yaml:"board" toml:"board"`
	Obstacles Obstacles `yaml:"obstacles" toml:"obstacles"`
	Player    Player    `yaml:"player" toml:"player"`
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Timing    Timing    `yaml:"timing" toml:"timing"`
	Glyphs    Glyphs    `yaml:"glyphs" toml:"glyphs"`
	Keys      Keys      `yaml:"keys" toml:"keys"`
}

// Board defines the playable world, independent of the terminal size.
type Board struct {
	Height  int `yaml:"height" toml:"height"`
	GapSize int `yaml:"gap_size" toml:"gap_size"`
}

// Obstacles defines obstacle generation and scrolling.
type Obstacles struct {
	Spacing       int     `yaml:"spacing" toml:"spacing"`
	InitialOffset int     `yaml:"initial_offset" toml:"initial_offset"`
	Prefill       int     `yaml:"prefill" toml:"prefill"`
	ScrollSpeed   float64 `yaml:"scroll_speed" toml:"scroll_speed"` // columns per second
}

// Player defines where the player lives on screen.
type Player struct {
	Column int     `yaml:"column" toml:"column"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
}

// Physics defines vertical movement. Positive values point up.
type Physics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpHeight  float64 `yaml:"jump_height" toml:"jump_height"`
	MaxVelocity float64 `yaml:"max_velocity" toml:"max_velocity"`
}

// Timing defines the loop cadence.
type Timing struct {
	TargetFPS int `yaml:"target_fps" toml:"target_fps"`
}

// Glyphs defines the characters used by the rasterizer.
type Glyphs struct {
	Player string `yaml:"player" toml:"player"`
	Wall   string `yaml:"wall" toml:"wall"`
	Ground string `yaml:"ground" toml:"ground"`
}

// Keys lists key names (bubbletea notation) bound to game actions.
type Keys struct {
	Jump []string `yaml:"jump" toml:"jump"`
	Quit []string `yaml:"quit" toml:"quit"`
}

// FrameInterval returns the fixed tick interval for the configured frame rate.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.TargetFPS)
}

// MaxFrameTime is the longest frame that still scrolls at most one column.
func (c Config) MaxFrameTime() time.Duration {
	return time.Duration(float64(time.Second) / c.Obstacles.ScrollSpeed)
}

// MinWidth is the narrowest terminal the game renders into.
func (c Config) MinWidth() int {
	return c.Board.Height
}

// MinHeight is the shortest terminal the game renders into: the board plus the ground row.
func (c Config) MinHeight() int {
	return c.Board.Height + 1
}

// PlayerGlyph returns the first rune of the player glyph.
func (c Config) PlayerGlyph() rune { return firstRune(c.Glyphs.Player) }

// WallGlyph returns the first rune of the wall glyph.
func (c Config) WallGlyph() rune { return firstRune(c.Glyphs.Wall) }

// GroundGlyph returns the first rune of the ground glyph.
func (c Config) GroundGlyph() rune { return firstRune(c.Glyphs.Ground) }

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

// Validate reports every setting that would make the game unplayable.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Height < 3 {
		errs = append(errs, fmt.Errorf("board.height must be at least 3, got %d", c.Board.Height))
	}
	if c.Board.GapSize < 1 {
		errs = append(errs, fmt.Errorf("board.gap_size must be positive, got %d", c.Board.GapSize))
	}
	// gapStart is drawn from [1, height-gap_size), which must not be empty
	if c.Board.Height-c.Board.GapSize-1 < 1 {
		errs = append(errs, fmt.Errorf("board.gap_size %d leaves no room for a gap in height %d",
			c.Board.GapSize, c.Board.Height))
	}
	if c.Obstacles.Spacing < 1 {
		errs = append(errs, fmt.Errorf("obstacles.spacing must be positive, got %d", c.Obstacles.Spacing))
	}
	if c.Obstacles.Prefill < 1 {
		errs = append(errs, fmt.Errorf("obstacles.prefill must be positive, got %d", c.Obstacles.Prefill))
	}
	if c.Obstacles.ScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.scroll_speed must be positive, got %g", c.Obstacles.ScrollSpeed))
	}
	if c.Player.Column < 0 || c.Player.Column >= c.MinWidth() {
		errs = append(errs, fmt.Errorf("player.column must be in [0, %d), got %d", c.MinWidth(), c.Player.Column))
	}
	if c.Physics.MaxVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_velocity must be positive, got %g", c.Physics.MaxVelocity))
	}
	if c.Timing.TargetFPS < 1 {
		errs = append(errs, fmt.Errorf("timing.target_fps must be positive, got %d", c.Timing.TargetFPS))
	}
	if c.Glyphs.Player == "" || c.Glyphs.Wall == "" || c.Glyphs.Ground == "" {
		errs = append(errs, errors.New("glyphs.player, glyphs.wall and glyphs.ground must be set"))
	}
	if len(c.Keys.Jump) == 0 {
		errs = append(errs, errors.New("keys.jump must list at least one key"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
