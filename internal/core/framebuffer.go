package core

import "strings"

// Empty marks a cell nothing was drawn into this frame.
const Empty rune = 0

// FrameBuffer is the per-frame world raster: width columns by a fixed number
// of board rows. Row 0 is the bottom of the board.
type FrameBuffer struct {
	width  int
	height int
	ground rune
	cells  [][]rune
}

// NewFrameBuffer creates a cleared buffer. ground is repeated across the
// extra row Serialize appends below the board.
func NewFrameBuffer(width, height int, ground rune) *FrameBuffer {
	b := &FrameBuffer{
		width:  Max(width, 0),
		height: Max(height, 0),
		ground: ground,
	}
	b.allocate()
	return b
}

func (b *FrameBuffer) allocate() {
	b.cells = make([][]rune, b.height)
	for y := range b.cells {
		b.cells[y] = make([]rune, b.width)
	}
}

// Width returns the number of columns.
func (b *FrameBuffer) Width() int {
	return b.width
}

// Height returns the number of board rows (the ground row is not counted).
func (b *FrameBuffer) Height() int {
	return b.height
}

// Resize reallocates the buffer for a new terminal width. Content is dropped.
func (b *FrameBuffer) Resize(width int) {
	width = Max(width, 0)
	if width == b.width {
		b.Clear()
		return
	}
	b.width = width
	b.allocate()
}

// Clear resets every cell to Empty.
func (b *FrameBuffer) Clear() {
	for y := range b.cells {
		row := b.cells[y]
		for x := range row {
			row[x] = Empty
		}
	}
}

// Set writes a glyph. Out-of-bounds coordinates are silently ignored.
func (b *FrameBuffer) Set(x, y int, r rune) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y][x] = r
}

// Get returns the glyph at (x, y), or Empty outside the buffer.
func (b *FrameBuffer) Get(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Empty
	}
	return b.cells[y][x]
}

// Serialize renders the board top row first, one line per row, followed by
// a ground row of the full width. Empty cells become spaces.
func (b *FrameBuffer) Serialize() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * (b.height + 1) * 3)

	for y := b.height - 1; y >= 0; y-- {
		for _, r := range b.cells[y] {
			if r == Empty {
				r = ' '
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	for x := 0; x < b.width; x++ {
		sb.WriteRune(b.ground)
	}
	return sb.String()
}
