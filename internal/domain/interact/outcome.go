package interact

// Outcome is the closed set of results an interaction can produce.
// Every kind maps to exactly one outcome-producing branch; callers
// switch on the concrete type.
type Outcome interface {
	isOutcome()
}

// TextMessage is informational only: signs, looted chests, locked
// doors, spent scrolls.
type TextMessage struct {
	Text string
}

// ItemGranted reports an inventory grant that has already been applied
// to GameState. The outcome exists for UI feedback only.
type ItemGranted struct {
	ItemID string
}

// GoldGranted reports a gold grant that has already been applied.
type GoldGranted struct {
	Amount int
}

// SpellLearned reports a newly learned spell plus its tutorial text.
type SpellLearned struct {
	SpellID      string
	TutorialText string
}

// ChestOpened reports a chest opening, with a description of its
// contents for the message box.
type ChestOpened struct {
	Contents string
}

// EventKind names a world event surfaced by an interaction.
type EventKind string

// EventEnemyWave is raised by trapped chests.
const EventEnemyWave EventKind = "enemy_wave"

// TriggerEvent asks the driver to fire a world event.
type TriggerEvent struct {
	Event EventKind
}

// MapTransitionRequested asks the driver to start a cross-map
// transition. PortalStyle transitions additionally animate the player
// scale alongside the screen fade.
type MapTransitionRequested struct {
	TargetMap   string
	SpawnX      int
	SpawnY      int
	PortalStyle bool
}

// ChoiceOffered is produced by class and strategy shrines while the
// corresponding choice is still unset.
type ChoiceOffered struct {
	ChoiceKind string
	ChoiceData string
}

// NoOp is produced by kinds with no interact behavior.
type NoOp struct{}

func (TextMessage) isOutcome()            {}
func (ItemGranted) isOutcome()            {}
func (GoldGranted) isOutcome()            {}
func (SpellLearned) isOutcome()           {}
func (ChestOpened) isOutcome()            {}
func (TriggerEvent) isOutcome()           {}
func (MapTransitionRequested) isOutcome() {}
func (ChoiceOffered) isOutcome()          {}
func (NoOp) isOutcome()                   {}
