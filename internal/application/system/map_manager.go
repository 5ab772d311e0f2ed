package system

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tidegate/emberwood/internal/domain/progress"
)

// ErrUnknownMap is returned when a swap targets an unregistered map id.
var ErrUnknownMap = errors.New("unknown map id")

// Manager holds every built map and tracks which one is current. It
// implements the transition coordinator's swap step: make the target
// set current, reposition the player, and reconcile the new set with
// the progression state.
type Manager struct {
	maps    map[string]*Map
	current *Map
	gs      progress.GameState
	log     *zap.Logger

	// OnSwap is called after a swap with the spawn position for the
	// new map. The driver uses it to reposition the player.
	OnSwap func(spawnX, spawnY int)
}

// NewManager creates a manager over the given progression state. A nil
// logger disables logging.
func NewManager(gs progress.GameState, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		maps: make(map[string]*Map),
		gs:   gs,
		log:  log,
	}
}

// Register adds a built map to the registry.
func (m *Manager) Register(mp *Map) {
	m.maps[mp.ID] = mp
}

// Current returns the current map, or nil before the first swap.
func (m *Manager) Current() *Map { return m.current }

// Get looks up a registered map by id.
func (m *Manager) Get(mapID string) (*Map, bool) {
	mp, ok := m.maps[mapID]
	return mp, ok
}

// CurrentID returns the current map id, or "" before the first swap.
func (m *Manager) CurrentID() string {
	if m.current == nil {
		return ""
	}
	return m.current.ID
}

// SwapTo makes the given map current. Every interactable in the new
// set is synced with the progression state so already-opened chests
// appear open without replaying their animation.
func (m *Manager) SwapTo(mapID string, spawnX, spawnY int) error {
	mp, ok := m.maps[mapID]
	if !ok {
		return ErrUnknownMap
	}

	m.current = mp
	for _, it := range mp.Interactables {
		it.SyncWithGameState(m.gs)
	}
	if m.OnSwap != nil {
		m.OnSwap(spawnX, spawnY)
	}

	m.log.Info("map now current",
		zap.String("map", mapID),
		zap.Int("spawnX", spawnX),
		zap.Int("spawnY", spawnY))
	return nil
}
