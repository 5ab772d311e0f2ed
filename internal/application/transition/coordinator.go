// Package transition sequences cross-map transitions: screen fades,
// portal shrink/grow animation, and the map swap in between.
package transition

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Phase is the coordinator's state machine value.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseFadingIn
	PhasePortalShrinking
	PhasePortalGrowing
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFadingOut:
		return "fading-out"
	case PhaseFadingIn:
		return "fading-in"
	case PhasePortalShrinking:
		return "portal-shrinking"
	case PhasePortalGrowing:
		return "portal-growing"
	default:
		return "unknown"
	}
}

// ErrTransitionInFlight is returned by StartTransition while a
// transition is already running. The request is ignored, not queued.
var ErrTransitionInFlight = errors.New("transition already in flight")

// MapSwapper performs the actual map swap: make the target map's grid
// and interactable set current, place the player at the spawn point,
// and reconcile the new set with the progression state.
type MapSwapper interface {
	SwapTo(mapID string, spawnX, spawnY int) error
}

// Options tune a single transition.
type Options struct {
	// PortalStyle additionally animates the player scale from 1 to 0
	// and back, symmetric to the fade.
	PortalStyle bool
	// SourceMap records where the transition started, for symmetric
	// portal animation on the way out.
	SourceMap string
}

// phaseDuration is the length of each half of a transition in seconds.
const phaseDuration = 0.6

// Coordinator drives a map transition from a player's interaction to
// the new map being current. One instance lives for the whole session;
// it re-enters idle after each completed transition. At most one
// transition is in flight at a time.
type Coordinator struct {
	swapper MapSwapper
	log     *zap.Logger

	phase   Phase
	elapsed float64

	targetMap string
	spawnX    int
	spawnY    int
	sourceMap string
	portal    bool
}

// NewCoordinator creates a coordinator over the given swapper. A nil
// logger disables logging.
func NewCoordinator(swapper MapSwapper, log *zap.Logger) *Coordinator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Coordinator{swapper: swapper, log: log}
}

// Phase returns the current phase.
func (c *Coordinator) Phase() Phase { return c.phase }

// Idle reports whether no transition is in flight. Drivers must check
// this before routing a new transition request.
func (c *Coordinator) Idle() bool { return c.phase == PhaseIdle }

// StartTransition begins a transition to the target map. While a
// transition is in flight the request is ignored and
// ErrTransitionInFlight is returned; nothing is queued.
func (c *Coordinator) StartTransition(targetMap string, spawnX, spawnY int, opts Options) error {
	if c.phase != PhaseIdle {
		c.log.Warn("transition request ignored",
			zap.String("target", targetMap),
			zap.Stringer("phase", c.phase))
		return ErrTransitionInFlight
	}

	c.targetMap = targetMap
	c.spawnX = spawnX
	c.spawnY = spawnY
	c.sourceMap = opts.SourceMap
	c.portal = opts.PortalStyle
	c.elapsed = 0
	if opts.PortalStyle {
		c.phase = PhasePortalShrinking
	} else {
		c.phase = PhaseFadingOut
	}

	c.log.Info("transition started",
		zap.String("target", targetMap),
		zap.Bool("portal", opts.PortalStyle))
	return nil
}

// Update advances the transition by dt seconds. The map swap happens
// exactly once, at the moment the screen is fully obscured. A swap
// failure (unknown map) un-obscures the screen on the source map and is
// returned to the caller.
func (c *Coordinator) Update(dt float64) error {
	switch c.phase {
	case PhaseIdle:
		return nil
	case PhaseFadingOut, PhasePortalShrinking:
		c.elapsed += dt
		if c.elapsed < phaseDuration {
			return nil
		}
		err := c.swapper.SwapTo(c.targetMap, c.spawnX, c.spawnY)
		c.elapsed = 0
		if c.portal {
			c.phase = PhasePortalGrowing
		} else {
			c.phase = PhaseFadingIn
		}
		if err != nil {
			c.log.Error("map swap failed", zap.String("target", c.targetMap), zap.Error(err))
			return err
		}
		c.log.Info("map swapped", zap.String("map", c.targetMap))
		return nil
	case PhaseFadingIn, PhasePortalGrowing:
		c.elapsed += dt
		if c.elapsed >= phaseDuration {
			c.phase = PhaseIdle
			c.elapsed = 0
		}
		return nil
	default:
		return nil
	}
}

// FadeAlpha returns the screen obscure amount in [0,1]: 0 clear, 1
// fully obscured. Portal-style transitions fade alongside the scale
// animation.
func (c *Coordinator) FadeAlpha() float64 {
	switch c.phase {
	case PhaseFadingOut, PhasePortalShrinking:
		return clamp01(c.elapsed / phaseDuration)
	case PhaseFadingIn, PhasePortalGrowing:
		return clamp01(1 - c.elapsed/phaseDuration)
	default:
		return 0
	}
}

// PlayerScale returns the normalized player scale for portal-style
// transitions: easing from 1 to 0 while shrinking, back to 1 while
// growing. Plain fades keep the scale at 1.
func (c *Coordinator) PlayerScale() float64 {
	if !c.portal {
		return 1
	}
	switch c.phase {
	case PhasePortalShrinking:
		return 1 - ease(clamp01(c.elapsed/phaseDuration))
	case PhasePortalGrowing:
		return ease(clamp01(c.elapsed / phaseDuration))
	default:
		return 1
	}
}

// ease is a sine ease-out over [0,1].
func ease(p float64) float64 {
	return math.Sin(p * math.Pi / 2)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
