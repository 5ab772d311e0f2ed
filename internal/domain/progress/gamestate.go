// Package progress holds the player's persistent progression state:
// inventory, gold, learned spells, quest flags, and the choices made at
// class and strategy shrines. Interactables read and mutate it only
// through the GameState interface.
package progress

// GameState is the query/mutation surface the interaction core uses.
type GameState interface {
	IsChestOpened(id string) bool
	OpenChest(id string)

	HasSpell(name string) bool
	LearnSpell(name string)

	HasItem(name string) bool
	AddItem(name string)

	AddGold(amount int)
	Gold() int

	IsHouseDoorLocked() bool
	UnlockHouseDoor()

	// Free-form named flags used for quest gating.
	Flag(name string) bool
	SetFlag(name string)

	// Named string choices (class, strategy). Empty means unset.
	Choice(kind string) string
	SetChoice(kind, value string)
}

// State is the in-memory GameState used for a play session.
type State struct {
	openedChests map[string]bool
	spells       map[string]bool
	items        map[string]bool
	flags        map[string]bool
	choices      map[string]string
	gold         int
	houseLocked  bool
}

// NewState returns a fresh progression state. House doors start locked
// until the key quest flag is granted.
func NewState() *State {
	return &State{
		openedChests: make(map[string]bool),
		spells:       make(map[string]bool),
		items:        make(map[string]bool),
		flags:        make(map[string]bool),
		choices:      make(map[string]string),
		houseLocked:  true,
	}
}

func (s *State) IsChestOpened(id string) bool { return s.openedChests[id] }
func (s *State) OpenChest(id string)          { s.openedChests[id] = true }

func (s *State) HasSpell(name string) bool { return s.spells[name] }
func (s *State) LearnSpell(name string)    { s.spells[name] = true }

func (s *State) HasItem(name string) bool { return s.items[name] }
func (s *State) AddItem(name string)      { s.items[name] = true }

func (s *State) AddGold(amount int) { s.gold += amount }
func (s *State) Gold() int          { return s.gold }

func (s *State) IsHouseDoorLocked() bool { return s.houseLocked }
func (s *State) UnlockHouseDoor()        { s.houseLocked = false }

func (s *State) Flag(name string) bool { return s.flags[name] }
func (s *State) SetFlag(name string)   { s.flags[name] = true }

func (s *State) Choice(kind string) string    { return s.choices[kind] }
func (s *State) SetChoice(kind, value string) { s.choices[kind] = value }
