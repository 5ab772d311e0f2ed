// Package game runs the ebiten loop and routes each frame to the
// current scene.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tidegate/emberwood/internal/application/scene"
)

// Game owns the active scene and implements ebiten.Game. A non-nil
// scene returned from Update replaces the current one, with
// OnExit/OnEnter called around the handoff.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New wraps the initial scene and enters it immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene by one fixed step and performs any
// scene handoff it requests.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw hands the frame to the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout reports the fixed logical resolution regardless of the
// window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
