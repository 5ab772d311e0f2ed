// Package interact implements the interactable-object state machine
// that mediates all player/world interaction: chests, doors, portals,
// scrolls, signs, shrines, and decorative props.
package interact

import (
	"fmt"
	"math"

	"github.com/tidegate/emberwood/internal/domain/progress"
)

// Kind identifies an interactable variant. The set is closed: Interact
// dispatches over it with a total switch.
type Kind int

const (
	KindChest Kind = iota
	KindDoor
	KindNPCSign
	KindScroll
	KindCaveEntrance
	KindPortal
	KindClassIcon
	KindStrategyIcon
	KindAncientPath
	KindEasternPath
	KindFurniture
)

// String returns the kind name used in map bundles and logs.
func (k Kind) String() string {
	switch k {
	case KindChest:
		return "chest"
	case KindDoor:
		return "door"
	case KindNPCSign:
		return "npc_sign"
	case KindScroll:
		return "scroll"
	case KindCaveEntrance:
		return "cave_entrance"
	case KindPortal:
		return "portal"
	case KindClassIcon:
		return "class_icon"
	case KindStrategyIcon:
		return "strategy_icon"
	case KindAncientPath:
		return "ancient_path"
	case KindEasternPath:
		return "eastern_path"
	case KindFurniture:
		return "furniture"
	default:
		return "unknown"
	}
}

// Payload is the kind-specific immutable configuration of an
// interactable. It is plain data: rendering behavior lives in the
// renderer, keyed by kind.
type Payload struct {
	// Chests
	ChestID           string
	ItemID            string
	GoldAmount        int
	ContentsText      string
	TriggersEnemyWave bool

	// Doors, caves, portals, paths
	Destination string
	SpawnX      int
	SpawnY      int
	RequiresKey bool

	// Signs
	Text string

	// Scrolls
	SpellID      string
	TutorialText string

	// Class/strategy shrines
	ChoiceData string

	// Upstream visibility gating (consulted by the set pre-filter, not
	// by Interact itself).
	QuestRequired string
	QuestMinimum  int
}

// Interaction radii in pixels. Large features (archways, portals) get a
// generous margin; small props do not.
const (
	nearRadiusDefault = 40.0
	nearRadiusWide    = 64.0
)

const defaultAnimRate = 3.0 // full open/close in ~1/3 s

// Interactable is one interactive object placed on a map. Instances are
// created at map build time and live for the whole session; map
// switches only change which set is current.
type Interactable struct {
	Kind    Kind
	Payload Payload

	// Axis-aligned bounding box in world pixels.
	X      int
	Y      int
	Width  int
	Height int

	// Open/close animation value in [0,1], approaching Target at Rate
	// per second without overshooting.
	Anim   float64
	Target float64
	Rate   float64

	// Consumed is set once a one-shot interaction (chest, scroll) has
	// fired; the primary reward never fires again.
	Consumed bool

	// EmitterActive toggles an associated particle emitter. Cosmetic;
	// the core only flips the flag.
	EmitterActive bool
}

// New creates an interactable with the default animation rate.
func New(kind Kind, x, y, width, height int, payload Payload) *Interactable {
	return &Interactable{
		Kind:          kind,
		Payload:       payload,
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		Rate:          defaultAnimRate,
		EmitterActive: kind == KindScroll || kind == KindPortal,
	}
}

// Update advances the open/close animation toward its target, clamped
// so it never passes it. This is the only continuous-time behavior an
// interactable has.
func (it *Interactable) Update(dt float64) {
	if it.Anim == it.Target {
		return
	}
	step := it.Rate * dt
	if it.Anim < it.Target {
		it.Anim = math.Min(it.Anim+step, it.Target)
	} else {
		it.Anim = math.Max(it.Anim-step, it.Target)
	}
}

// IsPlayerNear reports whether the player is within interaction range
// of the box's center. The radius is kind-dependent unless an override
// is given.
func (it *Interactable) IsPlayerNear(playerX, playerY float64, override ...float64) bool {
	radius := it.interactRadius()
	if len(override) > 0 {
		radius = override[0]
	}
	cx := float64(it.X) + float64(it.Width)/2
	cy := float64(it.Y) + float64(it.Height)/2
	dx := playerX - cx
	dy := playerY - cy
	return dx*dx+dy*dy <= radius*radius
}

func (it *Interactable) interactRadius() float64 {
	switch it.Kind {
	case KindDoor, KindCaveEntrance, KindPortal, KindScroll,
		KindClassIcon, KindAncientPath, KindEasternPath:
		return nearRadiusWide
	default:
		return nearRadiusDefault
	}
}

// Interact dispatches on the kind and produces exactly one outcome.
// All GameState mutation happens here, synchronously; the caller sees
// no partial application.
func (it *Interactable) Interact(gs progress.GameState) Outcome {
	switch it.Kind {
	case KindChest:
		return it.interactChest(gs)
	case KindDoor:
		if it.Payload.RequiresKey && gs.IsHouseDoorLocked() {
			return TextMessage{Text: "The door is locked."}
		}
		it.Target = 1
		return MapTransitionRequested{
			TargetMap: it.Payload.Destination,
			SpawnX:    it.Payload.SpawnX,
			SpawnY:    it.Payload.SpawnY,
		}
	case KindNPCSign:
		return TextMessage{Text: it.Payload.Text}
	case KindScroll:
		return it.interactScroll(gs)
	case KindCaveEntrance, KindAncientPath, KindEasternPath:
		return MapTransitionRequested{
			TargetMap: it.Payload.Destination,
			SpawnX:    it.Payload.SpawnX,
			SpawnY:    it.Payload.SpawnY,
		}
	case KindPortal:
		return MapTransitionRequested{
			TargetMap:   it.Payload.Destination,
			SpawnX:      it.Payload.SpawnX,
			SpawnY:      it.Payload.SpawnY,
			PortalStyle: true,
		}
	case KindClassIcon:
		return it.interactChoice(gs, "class")
	case KindStrategyIcon:
		return it.interactChoice(gs, "strategy")
	default: // furniture and other decorative kinds
		return NoOp{}
	}
}

func (it *Interactable) interactChest(gs progress.GameState) Outcome {
	if it.Consumed || gs.IsChestOpened(it.Payload.ChestID) {
		return TextMessage{Text: "The chest is empty."}
	}

	gs.OpenChest(it.Payload.ChestID)
	it.Consumed = true
	it.Target = 1

	if it.Payload.TriggersEnemyWave {
		return TriggerEvent{Event: EventEnemyWave}
	}
	if it.Payload.ItemID != "" {
		gs.AddItem(it.Payload.ItemID)
		return ItemGranted{ItemID: it.Payload.ItemID}
	}
	if it.Payload.GoldAmount > 0 {
		gs.AddGold(it.Payload.GoldAmount)
		return GoldGranted{Amount: it.Payload.GoldAmount}
	}
	return ChestOpened{Contents: it.Payload.ContentsText}
}

func (it *Interactable) interactScroll(gs progress.GameState) Outcome {
	if it.Consumed || gs.HasSpell(it.Payload.SpellID) {
		return TextMessage{Text: "The scroll's letters have faded away."}
	}

	gs.LearnSpell(it.Payload.SpellID)
	it.Consumed = true
	it.EmitterActive = false
	return SpellLearned{
		SpellID:      it.Payload.SpellID,
		TutorialText: it.Payload.TutorialText,
	}
}

func (it *Interactable) interactChoice(gs progress.GameState, kind string) Outcome {
	if chosen := gs.Choice(kind); chosen != "" {
		return TextMessage{Text: fmt.Sprintf("You have already chosen the way of the %s.", chosen)}
	}
	return ChoiceOffered{ChoiceKind: kind, ChoiceData: it.Payload.ChoiceData}
}

// SyncWithGameState reconciles the instance with prior progression
// after its map becomes current. Chests recorded as opened snap
// straight to the fully open state so re-entering a map never replays
// the opening animation.
func (it *Interactable) SyncWithGameState(gs progress.GameState) {
	if it.Kind != KindChest {
		return
	}
	if gs.IsChestOpened(it.Payload.ChestID) {
		it.Anim = 1
		it.Target = 1
		it.Consumed = true
	}
}
