package flappy

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/consolebird/internal/config"
	"github.com/vovakirdan/consolebird/internal/core"
)

// floatingConfig disables gravity so tests can pin the player in place.
func floatingConfig() config.Config {
	cfg := config.Default()
	cfg.Physics.Gravity = 0
	return cfg
}

func newBuffer(cfg config.Config, width int) *core.FrameBuffer {
	return core.NewFrameBuffer(width, cfg.Board.Height, cfg.GroundGlyph())
}

// alignHead scrolls the world so the head obstacle sits at column col.
func alignHead(t *testing.T, g *Game, col int) Obstacle {
	t.Helper()
	head, ok := g.state.Obstacles.Head()
	if !ok {
		t.Fatal("stream is empty")
	}
	g.state.ScrollOffset = float64(g.cfg.Obstacles.InitialOffset + head.Distance - col)
	return head
}

func TestPassInsideGap(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	head := alignHead(t, g, cfg.Player.Column)
	g.state.Player = Player{Y: float64(head.GapStart + 1)}

	result := g.Step(0, core.NewInputFrame(), newBuffer(cfg, 80))

	if result.GameOver {
		t.Fatalf("player inside the gap should survive, reason %v", result.Reason)
	}
	if result.Score != 1 || result.Passed != 1 {
		t.Errorf("Score = %d, Passed = %d, expected 1 and 1", result.Score, result.Passed)
	}
	if g.state.Obstacles.Len() != cfg.Obstacles.Prefill {
		t.Errorf("stream length = %d, expected %d after replacement", g.state.Obstacles.Len(), cfg.Obstacles.Prefill)
	}

	newHead, _ := g.state.Obstacles.Head()
	if newHead.Distance != cfg.Obstacles.Spacing {
		t.Errorf("new head distance = %d, expected %d", newHead.Distance, cfg.Obstacles.Spacing)
	}
	all := g.state.Obstacles.Obstacles()
	tail := all[len(all)-1]
	if want := cfg.Obstacles.Prefill * cfg.Obstacles.Spacing; tail.Distance != want {
		t.Errorf("replacement distance = %d, expected %d", tail.Distance, want)
	}
}

func TestCollisionOutsideGap(t *testing.T) {
	tests := []struct {
		name   string
		offset func(o Obstacle, gapSize int) float64
	}{
		{"below gap", func(o Obstacle, _ int) float64 { return float64(o.GapStart - 1) }},
		{"above gap", func(o Obstacle, gapSize int) float64 { return float64(o.GapEnd(gapSize) + 1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := floatingConfig()
			g := New(cfg, 1)
			head := alignHead(t, g, cfg.Player.Column)
			g.state.Player = Player{Y: tc.offset(head, cfg.Board.GapSize)}

			result := g.Step(0, core.NewInputFrame(), newBuffer(cfg, 80))

			if !result.GameOver {
				t.Fatal("player outside the gap should collide")
			}
			if result.Reason != ReasonCollision {
				t.Errorf("Reason = %v, expected %v", result.Reason, ReasonCollision)
			}
			if result.Score != 0 {
				t.Errorf("Score = %d, expected no increment on collision", result.Score)
			}
			if got, _ := g.state.Obstacles.Head(); got != head {
				t.Errorf("head changed on collision: %+v -> %+v", head, got)
			}
		})
	}
}

func TestCollidesBoundaries(t *testing.T) {
	o := Obstacle{Distance: 0, GapStart: 4}
	gap := 7

	tests := []struct {
		name     string
		y        float64
		expected bool
	}{
		{"well below", 0, true},
		{"just below gap start", 3.999, true},
		{"at gap start", 4, false},
		{"inside", 7.5, false},
		{"last open row", 10.9, false},
		{"at gap end", 11, false},
		{"just above gap end", 11.001, true},
		{"well above", 19, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(tc.y, o, gap); got != tc.expected {
				t.Errorf("Collides(%g) = %v, expected %v", tc.y, got, tc.expected)
			}
		})
	}
}

func TestFallOffBottom(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	g.state.Player = Player{Y: 0.001, Velocity: -1}

	buf := newBuffer(cfg, 80)
	result := g.Step(2*time.Millisecond, core.NewInputFrame(), buf)

	if math.Abs(g.state.Player.Y-(-0.001)) > 1e-9 {
		t.Fatalf("Y = %g, expected -0.001", g.state.Player.Y)
	}
	if !result.GameOver || result.Reason != ReasonFell {
		t.Errorf("GameOver = %v, Reason = %v, expected true and %v", result.GameOver, result.Reason, ReasonFell)
	}
	if strings.ContainsRune(buf.Serialize(), cfg.PlayerGlyph()) {
		t.Error("player should not be drawn once out of bounds")
	}
}

func TestFlyOffTop(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	top := float64(cfg.Board.Height)
	g.state.Player = Player{Y: top, Velocity: 1}

	result := g.Step(time.Millisecond, core.NewInputFrame(), newBuffer(cfg, 80))

	if math.Abs(g.state.Player.Y-(top+0.001)) > 1e-9 {
		t.Fatalf("Y = %g, expected %g", g.state.Player.Y, top+0.001)
	}
	if !result.GameOver || result.Reason != ReasonFlewAway {
		t.Errorf("GameOver = %v, Reason = %v, expected true and %v", result.GameOver, result.Reason, ReasonFlewAway)
	}
}

func TestTopEdgeIsInBounds(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	g.state.Player = Player{Y: float64(cfg.Board.Height)}

	result := g.Step(0, core.NewInputFrame(), newBuffer(cfg, 80))

	if result.GameOver {
		t.Errorf("Y == board height should still be in bounds, reason %v", result.Reason)
	}
}

func TestJumpAddsImpulseOnTopOfGravity(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Gravity = -10
	cfg.Physics.JumpHeight = 3

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)

	t.Run("zero frame", func(t *testing.T) {
		g := New(cfg, 1)
		g.state.Player = Player{Y: 10}
		g.Step(0, jump, newBuffer(cfg, 80))

		if g.state.Player.Velocity != math.Sqrt(60) {
			t.Errorf("Velocity = %v, expected sqrt(60) = %v", g.state.Player.Velocity, math.Sqrt(60))
		}
	})

	t.Run("with gravity term", func(t *testing.T) {
		g := New(cfg, 1)
		g.state.Player = Player{Y: 10}
		g.Step(33*time.Millisecond, jump, newBuffer(cfg, 80))

		expected := -10.0*33/1000 + math.Sqrt(60)
		if math.Abs(g.state.Player.Velocity-expected) > 1e-12 {
			t.Errorf("Velocity = %v, expected %v", g.state.Player.Velocity, expected)
		}
	})
}

func TestGravityPullsDown(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, 1)
	g.state.Player = Player{Y: 10}

	g.Step(100*time.Millisecond, core.NewInputFrame(), newBuffer(cfg, 80))

	if g.state.Player.Velocity >= 0 {
		t.Errorf("Velocity = %v, expected negative under gravity", g.state.Player.Velocity)
	}
	if g.state.Player.Y >= 10 {
		t.Errorf("Y = %v, expected player to fall below 10", g.state.Player.Y)
	}
}

func TestVelocityNeverExceedsCap(t *testing.T) {
	cfg := config.Default()
	phys := cfg.Physics
	p := Player{Y: 10}

	for i := 0; i < 5000; i++ {
		frameMs := float64(i % 251)
		p.Integrate(frameMs, i%3 != 0, phys.Gravity, phys.JumpHeight, phys.MaxVelocity)
		if p.Velocity > phys.MaxVelocity {
			t.Fatalf("tick %d: Velocity = %v exceeds cap %v", i, p.Velocity, phys.MaxVelocity)
		}
	}
}

func TestRepeatedJumpsHitCap(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, 1)
	g.state.Player = Player{Y: 1}

	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)
	for i := 0; i < 3; i++ {
		g.Step(0, jump, newBuffer(cfg, 80))
	}

	if g.state.Player.Velocity != cfg.Physics.MaxVelocity {
		t.Errorf("Velocity = %v, expected clamp to %v", g.state.Player.Velocity, cfg.Physics.MaxVelocity)
	}
}

func TestWallLeavesGapOpen(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 3)
	head := alignHead(t, g, 12)
	g.state.Player = Player{Y: 10}

	buf := newBuffer(cfg, 80)
	g.Step(0, core.NewInputFrame(), buf)

	for y := 0; y < cfg.Board.Height; y++ {
		got := buf.Get(12, y)
		if head.InGap(y, cfg.Board.GapSize) {
			if got != core.Empty {
				t.Errorf("row %d is in the gap but holds %q", y, got)
			}
		} else if got != cfg.WallGlyph() {
			t.Errorf("row %d should be wall, got %q", y, got)
		}
	}
}

func TestPlayerDrawnAtFloorOfPosition(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	g.state.Player = Player{Y: 7.9}

	buf := newBuffer(cfg, 80)
	g.Step(0, core.NewInputFrame(), buf)

	if buf.Get(cfg.Player.Column, 7) != cfg.PlayerGlyph() {
		t.Errorf("player should be drawn at row 7, got %q", buf.Get(cfg.Player.Column, 7))
	}
}

func TestOffscreenObstaclesStayResident(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	g.state.Player = Player{Y: 10}

	// Only the first obstacle (column 25) fits in a 30-column screen
	buf := newBuffer(cfg, 30)
	g.Step(0, core.NewInputFrame(), buf)

	if g.state.Obstacles.Len() != cfg.Obstacles.Prefill {
		t.Errorf("stream length = %d, expected %d", g.state.Obstacles.Len(), cfg.Obstacles.Prefill)
	}
	walls := 0
	for x := 0; x < buf.Width(); x++ {
		if buf.Get(x, 0) == cfg.WallGlyph() || buf.Get(x, cfg.Board.Height-1) == cfg.WallGlyph() {
			walls++
		}
	}
	if walls != 1 {
		t.Errorf("found %d wall columns, expected 1", walls)
	}
}

func TestScrollSpeed(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	g.state.Player = Player{Y: 10}

	g.Step(250*time.Millisecond, core.NewInputFrame(), newBuffer(cfg, 80))

	if g.state.ScrollOffset != 1 {
		t.Errorf("ScrollOffset = %v, expected 1 after 250ms at 4 columns/s", g.state.ScrollOffset)
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	cfg := floatingConfig()
	g := New(cfg, 1)
	g.state.Player = Player{Y: -1}
	g.Step(0, core.NewInputFrame(), newBuffer(cfg, 80))

	before := g.state.ScrollOffset
	result := g.Step(time.Second, core.NewInputFrame(), newBuffer(cfg, 80))

	if !result.GameOver || result.Reason != ReasonFell {
		t.Errorf("result = %+v, expected the first game over to stand", result)
	}
	if g.state.ScrollOffset != before {
		t.Error("world should not scroll after game over")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.Default()

	run := func() (GameState, []Obstacle) {
		g := New(cfg, 12345)
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%9 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Step(33*time.Millisecond, in, newBuffer(cfg, 80)).GameOver {
				break
			}
		}
		return g.state, g.state.Obstacles.Obstacles()
	}

	s1, o1 := run()
	s2, o2 := run()

	if s1.Player != s2.Player || s1.Score != s2.Score || s1.Reason != s2.Reason || s1.ScrollOffset != s2.ScrollOffset {
		t.Errorf("Determinism failed: %+v vs %+v", s1, s2)
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("Determinism failed: obstacle %d differs, %+v vs %+v", i, o1[i], o2[i])
		}
	}
}

func TestGameReset(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, 42)

	for i := 0; i < 200; i++ {
		g.Step(33*time.Millisecond, core.NewInputFrame(), newBuffer(cfg, 80))
	}

	g.Reset(42)

	if g.state.Score != 0 || g.state.GameOver || g.state.Reason != ReasonNone {
		t.Errorf("Reset should clear score and game over, got %+v", g.state)
	}
	if g.state.ScrollOffset != 0 {
		t.Errorf("Reset should clear scroll offset, got %v", g.state.ScrollOffset)
	}
	if g.state.Player != (Player{Y: cfg.Player.StartY}) {
		t.Errorf("Reset should place player at start, got %+v", g.state.Player)
	}
	if g.state.Obstacles.Len() != cfg.Obstacles.Prefill {
		t.Errorf("Reset should prefill %d obstacles, got %d", cfg.Obstacles.Prefill, g.state.Obstacles.Len())
	}
}
