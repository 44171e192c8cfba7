package flappy

import (
	"math/rand"
)

// Obstacle is a wall column with a gap for the player to pass through.
// Obstacles are immutable once generated.
type Obstacle struct {
	Distance int // World column relative to the first obstacle
	GapStart int // Lowest open row of the gap
}

// GapEnd returns the first wall row above the gap.
func (o Obstacle) GapEnd(gapSize int) int {
	return o.GapStart + gapSize
}

// InGap reports whether row y is left open by the obstacle.
func (o Obstacle) InGap(y, gapSize int) bool {
	return y >= o.GapStart && y < o.GapEnd(gapSize)
}

// Generator produces obstacles at a fixed spacing with a random gap height.
// The generation index is never reset, so distances keep growing across
// pass/regenerate cycles.
type Generator struct {
	rng         *rand.Rand
	spacing     int
	boardHeight int
	gapSize     int
	generated   int
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(seed int64, spacing, boardHeight, gapSize int) *Generator {
	return &Generator{
		rng:         rand.New(rand.NewSource(seed)),
		spacing:     spacing,
		boardHeight: boardHeight,
		gapSize:     gapSize,
	}
}

// Next creates the next obstacle in generation order.
func (g *Generator) Next() Obstacle {
	// GapStart in [1, boardHeight-gapSize) keeps the whole gap inside the board
	span := g.boardHeight - g.gapSize - 1
	gapStart := 1
	if span > 0 {
		gapStart = 1 + g.rng.Intn(span)
	}

	o := Obstacle{
		Distance: g.generated * g.spacing,
		GapStart: gapStart,
	}
	g.generated++
	return o
}

// Generated returns how many obstacles have ever been created.
func (g *Generator) Generated() int {
	return g.generated
}

// Stream is the FIFO of live obstacles, oldest at the head.
// It is a fixed-capacity ring buffer: passing an obstacle frees exactly the
// slot its replacement takes.
type Stream struct {
	ring []Obstacle
	head int
	size int
	gen  *Generator
}

// NewStream creates an empty stream holding at most capacity obstacles.
func NewStream(capacity int, gen *Generator) *Stream {
	if capacity < 1 {
		capacity = 1
	}
	return &Stream{
		ring: make([]Obstacle, capacity),
		gen:  gen,
	}
}

// Generate appends up to count new obstacles to the tail.
// Returns how many were appended; it stops early when the ring is full.
func (s *Stream) Generate(count int) int {
	added := 0
	for i := 0; i < count; i++ {
		if s.size == len(s.ring) {
			break
		}
		s.push(s.gen.Next())
		added++
	}
	return added
}

func (s *Stream) push(o Obstacle) bool {
	if s.size == len(s.ring) {
		return false
	}
	s.ring[(s.head+s.size)%len(s.ring)] = o
	s.size++
	return true
}

// Dequeue removes and returns the head obstacle.
func (s *Stream) Dequeue() (Obstacle, bool) {
	if s.size == 0 {
		return Obstacle{}, false
	}
	o := s.ring[s.head]
	s.ring[s.head] = Obstacle{}
	s.head = (s.head + 1) % len(s.ring)
	s.size--
	return o, true
}

// Head returns the oldest live obstacle.
func (s *Stream) Head() (Obstacle, bool) {
	if s.size == 0 {
		return Obstacle{}, false
	}
	return s.ring[s.head], true
}

// Len returns the number of live obstacles.
func (s *Stream) Len() int {
	return s.size
}

// Cap returns the ring capacity.
func (s *Stream) Cap() int {
	return len(s.ring)
}

// Obstacles returns a snapshot of the live obstacles in enqueue order.
// Safe to range over while the stream is modified.
func (s *Stream) Obstacles() []Obstacle {
	out := make([]Obstacle, s.size)
	for i := range out {
		out[i] = s.ring[(s.head+i)%len(s.ring)]
	}
	return out
}

// ScreenColumn projects an obstacle's world position onto the screen.
func ScreenColumn(o Obstacle, baseOffset int, scrolled int) int {
	return baseOffset + o.Distance - scrolled
}
