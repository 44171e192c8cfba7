package flappy

// Collides reports whether a player at height y hits an obstacle whose column
// it occupies. The gap is closed on both ends: y == GapStart and
// y == GapStart+gapSize are both safe.
func Collides(y float64, o Obstacle, gapSize int) bool {
	return y < float64(o.GapStart) || y > float64(o.GapEnd(gapSize))
}
