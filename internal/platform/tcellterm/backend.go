package tcellterm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/consolebird/internal/engine"
	"github.com/vovakirdan/consolebird/internal/registry"
)

// BackendID is the registry ID of the tcell backend.
const BackendID = "tcell"

// gameOverHold is how long the game-over screen stays up before teardown.
const gameOverHold = 2 * time.Second

func init() {
	registry.Register(BackendID, func() registry.Backend { return &Backend{out: os.Stdout} })
}

// Backend plays on a full-screen tcell surface. The screen is torn down on
// exit, so the final score is also printed afterwards.
type Backend struct {
	out io.Writer
}

// ID implements registry.Backend.
func (b *Backend) ID() string { return BackendID }

// Title implements registry.Backend.
func (b *Backend) Title() string { return "Full-screen tcell terminal (gdamore/tcell)" }

// Play implements registry.Backend.
func (b *Backend) Play(ctx context.Context, s engine.Session) (engine.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return engine.Result{}, fmt.Errorf("tcellterm: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return engine.Result{}, fmt.Errorf("tcellterm: init screen: %w", err)
	}

	res, err := b.play(ctx, screen, s)
	screen.Fini()

	if err == nil && !res.Quit {
		fmt.Fprintf(b.out, "Game Over! Score: %d\n", res.Score)
	}
	return res, err
}

// play runs a session on an initialized screen without finalizing it.
func (b *Backend) play(ctx context.Context, screen tcell.Screen, s engine.Session) (engine.Result, error) {
	screen.HideCursor()

	t := NewTerminal(screen, s.Config)
	t.Start()

	d := s.NewDriver(t)
	if err := d.Run(ctx, engine.NewTicker(s.Config.FrameInterval())); err != nil {
		return d.Result(), err
	}

	if d.State() == engine.StateGameOver {
		holdGameOver(ctx, t)
	}
	return d.Result(), nil
}

// holdGameOver keeps the final screen up until a key, timeout or cancel.
func holdGameOver(ctx context.Context, t *Terminal) {
	deadline := time.After(gameOverHold)
	poll := time.NewTicker(20 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline:
			return
		case <-poll.C:
			if _, ok := t.PollKey(); ok {
				return
			}
		}
	}
}
