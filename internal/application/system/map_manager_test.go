package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidegate/emberwood/internal/domain/interact"
	"github.com/tidegate/emberwood/internal/domain/progress"
	"github.com/tidegate/emberwood/internal/infrastructure/config"
)

func TestManager_SwapTo(t *testing.T) {
	gs := progress.NewState()
	m := NewManager(gs, nil)
	m.Register(BuildMap(townBundle()))
	m.Register(BuildMap(&config.MapBundle{ID: "caves", Size: config.MapSizeConfig{Width: 2, Height: 2, TileSize: 32}}))

	assert.Nil(t, m.Current())
	assert.Equal(t, "", m.CurrentID())

	var gotX, gotY int
	m.OnSwap = func(spawnX, spawnY int) {
		gotX, gotY = spawnX, spawnY
	}

	require.NoError(t, m.SwapTo("town", 48, 96))
	assert.Equal(t, "town", m.CurrentID())
	assert.Equal(t, 48, gotX)
	assert.Equal(t, 96, gotY)

	require.NoError(t, m.SwapTo("caves", 16, 16))
	assert.Equal(t, "caves", m.CurrentID())
}

func TestManager_SwapTo_UnknownMap(t *testing.T) {
	m := NewManager(progress.NewState(), nil)
	m.Register(BuildMap(townBundle()))
	require.NoError(t, m.SwapTo("town", 0, 0))

	err := m.SwapTo("nowhere", 0, 0)
	assert.ErrorIs(t, err, ErrUnknownMap)
	assert.Equal(t, "town", m.CurrentID(), "failed swap leaves the current map in place")
}

func TestManager_SwapTo_SyncsChests(t *testing.T) {
	gs := progress.NewState()
	gs.OpenChest("town_chest_1")

	m := NewManager(gs, nil)
	m.Register(BuildMap(townBundle()))
	require.NoError(t, m.SwapTo("town", 0, 0))

	chest := m.Current().Interactables[0]
	require.Equal(t, interact.KindChest, chest.Kind)
	assert.Equal(t, 1.0, chest.Anim, "already-opened chest snaps open on swap")
	assert.True(t, chest.Consumed)
}

func TestVisibleInteractables(t *testing.T) {
	gs := progress.NewState()
	open := interact.New(interact.KindNPCSign, 0, 0, 16, 16, interact.Payload{Text: "hi"})
	gated := interact.New(interact.KindScroll, 0, 0, 16, 16, interact.Payload{
		SpellID:       "fireball",
		QuestRequired: "met_elder",
	})
	pricey := interact.New(interact.KindChest, 0, 0, 32, 32, interact.Payload{
		ChestID:      "vault",
		QuestMinimum: 100,
	})
	set := []*interact.Interactable{open, gated, pricey}

	visible := VisibleInteractables(set, gs)
	assert.Equal(t, []*interact.Interactable{open}, visible)

	gs.SetFlag("met_elder")
	gs.AddGold(100)
	visible = VisibleInteractables(set, gs)
	assert.Len(t, visible, 3)
}
