// Package scene defines the contract between the game loop and its
// screens.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game. The loop calls Update once per
// frame with the step in seconds; returning a non-nil Scene hands the
// loop over to it, and returning an error stops the game. OnEnter and
// OnExit bracket a scene's time as the active screen.
type Scene interface {
	Update(dt float64) (next Scene, err error)
	Draw(screen *ebiten.Image)
	OnEnter()
	OnExit()
}
