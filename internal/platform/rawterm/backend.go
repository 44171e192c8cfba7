package rawterm

import (
	"context"
	"errors"
	"os"

	"github.com/vovakirdan/consolebird/internal/engine"
	"github.com/vovakirdan/consolebird/internal/registry"
)

// BackendID is the registry ID of the raw terminal backend.
const BackendID = "raw"

func init() {
	registry.Register(BackendID, func() registry.Backend { return &Backend{} })
}

// Backend plays on the controlling terminal with ANSI escape sequences.
// The game-over screen stays visible after exit.
type Backend struct{}

// ID implements registry.Backend.
func (b *Backend) ID() string { return BackendID }

// Title implements registry.Backend.
func (b *Backend) Title() string { return "Raw ANSI terminal (golang.org/x/term)" }

// Play implements registry.Backend.
func (b *Backend) Play(ctx context.Context, s engine.Session) (engine.Result, error) {
	t, err := Open(os.Stdin, os.Stdout)
	if err != nil {
		return engine.Result{}, err
	}

	d := s.NewDriver(t)
	runErr := d.Run(ctx, engine.NewTicker(s.Config.FrameInterval()))
	closeErr := t.Close()

	return d.Result(), errors.Join(runErr, closeErr)
}
