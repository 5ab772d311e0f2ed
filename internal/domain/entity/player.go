// Package entity holds the player entity driven by the playing scene.
package entity

// Player is the player's world-space state. Position is the top-left
// of the collision box in pixels.
type Player struct {
	X, Y   float64
	Width  int
	Height int

	Speed       float64 // pixels per second
	FacingRight bool

	Health    int
	MaxHealth int

	// IframeTimer grants brief invulnerability after hazard damage.
	IframeTimer float64
}

// NewPlayer creates a player at the given pixel position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:           float64(x),
		Y:           float64(y),
		Width:       24,
		Height:      28,
		Speed:       120,
		FacingRight: true,
		Health:      100,
		MaxHealth:   100,
	}
}

// SetPos places the player at a pixel position (map spawn points).
func (p *Player) SetPos(x, y int) {
	p.X = float64(x)
	p.Y = float64(y)
}

// Box returns the collision box in integer pixels.
func (p *Player) Box() (x, y, w, h int) {
	return int(p.X), int(p.Y), p.Width, p.Height
}

// CenterX returns the box center X in world pixels.
func (p *Player) CenterX() float64 { return p.X + float64(p.Width)/2 }

// CenterY returns the box center Y in world pixels.
func (p *Player) CenterY() float64 { return p.Y + float64(p.Height)/2 }

// IsInvincible reports whether hazard damage is currently ignored.
func (p *Player) IsInvincible() bool { return p.IframeTimer > 0 }

// Update ticks down the player's timers.
func (p *Player) Update(dt float64) {
	if p.IframeTimer > 0 {
		p.IframeTimer -= dt
		if p.IframeTimer < 0 {
			p.IframeTimer = 0
		}
	}
}

// TakeDamage applies damage and starts the invulnerability window.
// Damage while invincible is ignored.
func (p *Player) TakeDamage(amount int, iframes float64) bool {
	if p.IsInvincible() {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.IframeTimer = iframes
	return true
}
