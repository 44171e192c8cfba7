package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/consolebird/internal/config"
)

// Session is everything a platform backend needs to host one game.
type Session struct {
	Config config.Config
	Seed   int64
	Logger *log.Logger
}

// NewDriver creates a driver for this session on the given terminal.
func (s Session) NewDriver(term Terminal) *Driver {
	return NewDriver(s.Config, term, WithSeed(s.Seed), WithLogger(s.Logger))
}
