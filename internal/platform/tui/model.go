package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/consolebird/internal/core"
	"github.com/vovakirdan/consolebird/internal/engine"
)

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// gameOverHold is how long the game-over screen stays up before quitting.
const gameOverHold = 2 * time.Second

// Model is the Bubble Tea model hosting one session.
type Model struct {
	driver   *engine.Driver
	term     *screenTerminal
	keys     engine.KeyMap
	help     help.Model
	styles   GlyphStyles
	interval time.Duration
	lastTick time.Time
	finished bool
	err      error
}

// NewModel creates a model for the session.
func NewModel(s engine.Session) Model {
	term := newScreenTerminal()
	d := s.NewDriver(term)

	return Model{
		driver:   d,
		term:     term,
		keys:     d.KeyMap(),
		help:     help.New(),
		styles:   NewGlyphStyles(s.Config),
		interval: s.Config.FrameInterval(),
	}
}

// Result returns the session outcome.
func (m Model) Result() engine.Result {
	return m.driver.Result()
}

// Err returns the terminal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.term.resize(msg.Width, msg.Height-footerHeight)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues a key for the next tick. Any key dismisses the game-over screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, tea.Quit
	}
	m.term.pushKey(core.Key(msg.String()))
	return m, nil
}

// handleTick advances the driver by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}

	var frame time.Duration
	if !m.lastTick.IsZero() {
		frame = now.Sub(m.lastTick)
	}
	m.lastTick = now

	done, err := m.driver.Tick(frame)
	if err != nil {
		m.err = err
		m.finished = true
		return m, tea.Quit
	}
	if !done {
		return m, tickCmd(m.interval)
	}

	m.finished = true
	if m.driver.Result().Quit {
		return m, tea.Quit
	}
	return m, tea.Tick(gameOverHold, func(time.Time) tea.Msg {
		return tea.Quit()
	})
}

// View renders the virtual screen and the help footer.
func (m Model) View() string {
	if m.term.screen.Width() == 0 {
		return ""
	}
	return RenderScreen(m.term.screen, m.styles) + "\n" + m.help.View(m.keys)
}
