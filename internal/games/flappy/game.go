// Package flappy implements the consolebird simulation: a bird falling under
// gravity that must fly through the gaps of an endless stream of walls.
// It draws into a core.FrameBuffer and has no terminal dependencies.
package flappy

import (
	"math"
	"time"

	"github.com/vovakirdan/consolebird/internal/config"
	"github.com/vovakirdan/consolebird/internal/core"
)

// EndReason tells why a session ended.
type EndReason int

const (
	ReasonNone      EndReason = iota
	ReasonFell                // Dropped below the board floor
	ReasonFlewAway            // Rose above the board top
	ReasonCollision           // Hit a wall
)

// String returns a human-readable reason.
func (r EndReason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonFell:
		return "fell"
	case ReasonFlewAway:
		return "flew off top"
	case ReasonCollision:
		return "hit obstacle"
	default:
		return "unknown"
	}
}

// GameState is everything that changes during a session. It is owned by a
// single Game and only touched from the loop that steps it.
type GameState struct {
	Player       Player
	Obstacles    *Stream
	ScrollOffset float64 // Total columns scrolled
	Score        int
	GameOver     bool
	Reason       EndReason
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	Score    int
	GameOver bool
	Reason   EndReason
	Passed   int // Obstacles passed this tick
}

// Game implements the consolebird game logic.
type Game struct {
	cfg    config.Config
	state  GameState
	player rune
	wall   rune
}

// New creates a game ready to play with the given RNG seed.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		cfg:    cfg,
		player: cfg.PlayerGlyph(),
		wall:   cfg.WallGlyph(),
	}
	g.Reset(seed)
	return g
}

// Reset starts a fresh session and prefills the obstacle stream.
func (g *Game) Reset(seed int64) {
	gen := NewGenerator(seed, g.cfg.Obstacles.Spacing, g.cfg.Board.Height, g.cfg.Board.GapSize)
	stream := NewStream(g.cfg.Obstacles.Prefill, gen)
	stream.Generate(g.cfg.Obstacles.Prefill)

	g.state = GameState{
		Player:    Player{Y: g.cfg.Player.StartY},
		Obstacles: stream,
	}
}

// State returns the current game state.
func (g *Game) State() *GameState {
	return &g.state
}

// Step advances the game by frameTime and draws the result into buf.
// Player physics run first, then obstacles scroll, draw and collide.
func (g *Game) Step(frameTime time.Duration, in core.InputFrame, buf *core.FrameBuffer) StepResult {
	if g.state.GameOver {
		return g.result(0)
	}

	frameMs := float64(frameTime) / float64(time.Millisecond)

	g.stepPlayer(frameMs, in.Has(core.ActionJump), buf)
	passed := g.stepObstacles(frameMs, buf)

	return g.result(passed)
}

func (g *Game) result(passed int) StepResult {
	return StepResult{
		Score:    g.state.Score,
		GameOver: g.state.GameOver,
		Reason:   g.state.Reason,
		Passed:   passed,
	}
}

// end sets the game-over flag. The first reason wins.
func (g *Game) end(reason EndReason) {
	if g.state.GameOver {
		return
	}
	g.state.GameOver = true
	g.state.Reason = reason
}

// stepPlayer integrates the player and draws it unless it left the board.
func (g *Game) stepPlayer(frameMs float64, jump bool, buf *core.FrameBuffer) {
	phys := g.cfg.Physics
	p := &g.state.Player

	p.Integrate(frameMs, jump, phys.Gravity, phys.JumpHeight, phys.MaxVelocity)

	switch {
	case p.Y < 0:
		g.end(ReasonFell)
		return
	case p.Y > float64(g.cfg.Board.Height):
		g.end(ReasonFlewAway)
		return
	}

	buf.Set(g.cfg.Player.Column, p.Row(), g.player)
}

// stepObstacles scrolls the world, draws visible walls and judges the one at
// the player's column. Returns the number of obstacles passed.
func (g *Game) stepObstacles(frameMs float64, buf *core.FrameBuffer) int {
	g.state.ScrollOffset += g.cfg.Obstacles.ScrollSpeed * frameMs / 1000
	scrolled := int(math.Floor(g.state.ScrollOffset))

	// A player that already left the board still sees the walls of its last frame
	judge := !g.state.GameOver
	gapSize := g.cfg.Board.GapSize
	passed := 0

	for i, o := range g.state.Obstacles.Obstacles() {
		col := ScreenColumn(o, g.cfg.Obstacles.InitialOffset, scrolled)
		if col < 0 || col >= buf.Width() {
			continue
		}

		g.drawWall(buf, col, o)

		if !judge || col != g.cfg.Player.Column {
			continue
		}

		if Collides(g.state.Player.Y, o, gapSize) {
			g.end(ReasonCollision)
			return passed
		}

		// Only the head can be passed; anything behind it is still ahead of the player
		if i != 0 {
			continue
		}
		g.state.Obstacles.Dequeue()
		g.state.Obstacles.Generate(1)
		g.state.Score++
		passed++
	}

	return passed
}

// drawWall fills the obstacle column except for its gap rows.
func (g *Game) drawWall(buf *core.FrameBuffer, col int, o Obstacle) {
	for y := 0; y < buf.Height(); y++ {
		if o.InGap(y, g.cfg.Board.GapSize) {
			continue
		}
		buf.Set(col, y, g.wall)
	}
}
