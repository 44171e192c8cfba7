package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/consolebird/internal/engine"
	"github.com/vovakirdan/consolebird/internal/registry"
)

// BackendID is the registry ID of the Bubble Tea backend.
const BackendID = "tea"

func init() {
	registry.Register(BackendID, func() registry.Backend { return &Backend{out: os.Stdout} })
}

// Backend plays inside a Bubble Tea program on the alternate screen.
type Backend struct {
	out io.Writer
}

// ID implements registry.Backend.
func (b *Backend) ID() string { return BackendID }

// Title implements registry.Backend.
func (b *Backend) Title() string { return "Bubble Tea view with lipgloss colours" }

// Play implements registry.Backend.
func (b *Backend) Play(ctx context.Context, s engine.Session) (engine.Result, error) {
	model := NewModel(s)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return model.Result(), fmt.Errorf("tui: run program: %w", err)
	}

	m := final.(Model)
	res := m.Result()
	if m.Err() != nil {
		return res, m.Err()
	}
	if !res.Quit {
		fmt.Fprintf(b.out, "Game Over! Score: %d\n", res.Score)
	}
	return res, nil
}
