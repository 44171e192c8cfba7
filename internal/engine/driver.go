package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/consolebird/internal/config"
	"github.com/vovakirdan/consolebird/internal/core"
	"github.com/vovakirdan/consolebird/internal/games/flappy"
)

// State is the driver's position in the session lifecycle.
type State int

const (
	StateRunning          State = iota
	StateWaitingForResize       // Terminal changed or is too small
	StateGameOver               // Terminal state, the session is finished
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWaitingForResize:
		return "waiting for resize"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

const (
	msgTooSmall = "Window too small!"
	msgGameOver = "Game Over!"
)

// Result summarizes a finished session.
type Result struct {
	Score  int
	Reason flappy.EndReason
	Quit   bool // Ended by the quit key rather than by losing
}

// Driver runs one session: it samples input and terminal size, steps the
// game, rasterizes the frame buffer and flushes it to the terminal.
// A Driver is not safe for concurrent use; one loop owns it.
type Driver struct {
	cfg    config.Config
	term   Terminal
	keys   *KeyMapper
	game   *flappy.Game
	buf    *core.FrameBuffer
	logger *log.Logger
	seed   int64

	state  State
	width  int // Last sampled terminal size
	height int
	quit   bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the session logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSeed sets the obstacle RNG seed. Zero picks a time-based seed.
func WithSeed(seed int64) Option {
	return func(d *Driver) {
		d.seed = seed
	}
}

// NewDriver creates a driver for a fresh game on the given terminal.
func NewDriver(cfg config.Config, term Terminal, opts ...Option) *Driver {
	d := &Driver{
		cfg:    cfg,
		term:   term,
		keys:   NewKeyMapper(cfg.Keys),
		logger: log.New(io.Discard),
		width:  -1,
		height: -1,
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.seed == 0 {
		d.seed = time.Now().UnixNano()
	}

	d.game = flappy.New(cfg, d.seed)
	d.buf = core.NewFrameBuffer(0, cfg.Board.Height, cfg.GroundGlyph())
	return d
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return d.state
}

// Seed returns the RNG seed in use.
func (d *Driver) Seed() int64 {
	return d.seed
}

// KeyMap returns the session's key bindings.
func (d *Driver) KeyMap() KeyMap {
	return d.keys.KeyMap()
}

// Result reports the outcome so far.
func (d *Driver) Result() Result {
	st := d.game.State()
	return Result{
		Score:  st.Score,
		Reason: st.Reason,
		Quit:   d.quit,
	}
}

// Run drives the session from ticker events until the game ends, the quit
// key is pressed, a terminal error occurs or ctx is cancelled.
func (d *Driver) Run(ctx context.Context, ticker Ticker) error {
	defer ticker.Stop()

	d.logger.Info("session started",
		"seed", d.seed,
		"fps", d.cfg.Timing.TargetFPS,
		"board", fmt.Sprintf("%dx%d", d.cfg.MinWidth(), d.cfg.Board.Height))

	var last time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C():
			var frame time.Duration
			if !last.IsZero() {
				frame = now.Sub(last)
			}
			last = now

			done, err := d.Tick(frame)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// Tick advances the session by one frame of frameTime. It returns true once
// the session is over. Frame time is clamped so the world never scrolls more
// than one column per tick.
func (d *Driver) Tick(frameTime time.Duration) (bool, error) {
	if d.state == StateGameOver || d.quit {
		return true, nil
	}

	in := core.NewInputFrame()
	if k, ok := d.term.PollKey(); ok {
		if d.keys.MapKeyToFrame(k, &in) {
			d.quit = true
			d.logger.Info("quit requested", "score", d.game.State().Score)
			return true, nil
		}
	}

	w, h, err := d.term.Size()
	if err != nil {
		return true, fmt.Errorf("%w: size: %w", ErrTerminal, err)
	}
	if w != d.width || h != d.height {
		d.logger.Debug("terminal resized", "width", w, "height", h)
		d.width, d.height = w, h
		d.state = StateWaitingForResize
		if !d.fits(w, h) {
			d.logger.Warn("window too small",
				"width", w, "height", h,
				"min_width", d.cfg.MinWidth(), "min_height", d.cfg.MinHeight())
		}
	}

	if d.state == StateWaitingForResize {
		if !d.fits(w, h) {
			return false, d.renderTooSmall(w, h)
		}
		if err := d.term.Clear(); err != nil {
			return true, fmt.Errorf("%w: clear: %w", ErrTerminal, err)
		}
		d.buf.Resize(w)
		d.state = StateRunning
		d.logger.Info("playing", "width", w, "height", h)
	}

	return d.frame(clampFrame(frameTime, d.cfg.MaxFrameTime()), in)
}

func clampFrame(frameTime, limit time.Duration) time.Duration {
	if frameTime < 0 {
		return 0
	}
	return min(frameTime, limit)
}

func (d *Driver) fits(w, h int) bool {
	return w >= d.cfg.MinWidth() && h >= d.cfg.MinHeight()
}

// frame runs one Running tick: step, rasterize, flush.
func (d *Driver) frame(frameTime time.Duration, in core.InputFrame) (bool, error) {
	d.buf.Clear()
	res := d.game.Step(frameTime, in, d.buf)
	if res.Passed > 0 {
		d.logger.Debug("obstacle passed", "score", res.Score)
	}

	if err := d.flush(d.buf.Serialize()); err != nil {
		return true, err
	}

	if !res.GameOver {
		return false, nil
	}

	d.state = StateGameOver
	d.logger.Info("game over", "score", res.Score, "reason", res.Reason)
	return true, d.renderGameOver(res.Score)
}

// flush writes a whole frame with a single Write from the origin.
func (d *Driver) flush(text string) error {
	if err := d.term.MoveCursor(0, 0); err != nil {
		return fmt.Errorf("%w: move cursor: %w", ErrTerminal, err)
	}
	if err := d.term.Write(text); err != nil {
		return fmt.Errorf("%w: write: %w", ErrTerminal, err)
	}
	return nil
}

func (d *Driver) renderTooSmall(w, h int) error {
	if err := d.term.Clear(); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrTerminal, err)
	}
	return d.writeCentered(h/2, w, msgTooSmall)
}

func (d *Driver) renderGameOver(score int) error {
	if err := d.term.Clear(); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrTerminal, err)
	}

	mid := d.height / 2
	if err := d.writeCentered(mid, d.width, msgGameOver); err != nil {
		return err
	}
	if err := d.writeCentered(mid+1, d.width, fmt.Sprintf("Score: %d", score)); err != nil {
		return err
	}

	if err := d.term.MoveCursor(max(d.height-1, 0), 0); err != nil {
		return fmt.Errorf("%w: move cursor: %w", ErrTerminal, err)
	}
	return nil
}

func (d *Driver) writeCentered(row, width int, text string) error {
	col := max((width-lipgloss.Width(text))/2, 0)
	if err := d.term.MoveCursor(row, col); err != nil {
		return fmt.Errorf("%w: move cursor: %w", ErrTerminal, err)
	}
	if err := d.term.Write(text); err != nil {
		return fmt.Errorf("%w: write: %w", ErrTerminal, err)
	}
	return nil
}
