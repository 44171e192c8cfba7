package flappy

import "math"

// Player is the vertical state of the bird. Y grows upward from the board floor.
type Player struct {
	Y        float64 // Vertical position in board rows
	Velocity float64 // Rows per second, positive is up
}

// JumpImpulse is the velocity needed to rise jumpHeight rows against gravity.
func JumpImpulse(gravity, jumpHeight float64) float64 {
	return math.Sqrt(2 * math.Abs(gravity) * jumpHeight)
}

// Integrate advances the player by frameMs milliseconds.
// Gravity is applied first, then the jump impulse on top of it, then the
// upward cap. Downward speed is not limited.
func (p *Player) Integrate(frameMs float64, jump bool, gravity, jumpHeight, maxVelocity float64) {
	p.Velocity += gravity * frameMs / 1000
	if jump {
		p.Velocity += JumpImpulse(gravity, jumpHeight)
	}
	p.Velocity = math.Min(p.Velocity, maxVelocity)
	p.Y += p.Velocity * frameMs / 1000
}

// Row returns the board row the player occupies.
func (p Player) Row() int {
	return int(math.Floor(p.Y))
}
