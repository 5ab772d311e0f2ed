package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(100, 200)

	require.NotNil(t, p)
	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.Equal(t, 100, p.Health)
	assert.True(t, p.FacingRight)

	x, y, w, h := p.Box()
	assert.Equal(t, 100, x)
	assert.Equal(t, 200, y)
	assert.Equal(t, 24, w)
	assert.Equal(t, 28, h)

	assert.Equal(t, 112.0, p.CenterX())
	assert.Equal(t, 214.0, p.CenterY())
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := NewPlayer(0, 0)

	assert.True(t, p.TakeDamage(30, 1.0))
	assert.Equal(t, 70, p.Health)
	assert.True(t, p.IsInvincible())

	// Damage during i-frames is ignored.
	assert.False(t, p.TakeDamage(30, 1.0))
	assert.Equal(t, 70, p.Health)

	// Timer runs down and damage applies again.
	p.Update(0.5)
	assert.True(t, p.IsInvincible())
	p.Update(0.6)
	assert.False(t, p.IsInvincible())
	assert.True(t, p.TakeDamage(100, 1.0))
	assert.Equal(t, 0, p.Health, "health clamps at zero")
}
