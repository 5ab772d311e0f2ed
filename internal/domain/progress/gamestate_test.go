package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Chests(t *testing.T) {
	s := NewState()

	assert.False(t, s.IsChestOpened("town_chest_1"))
	s.OpenChest("town_chest_1")
	assert.True(t, s.IsChestOpened("town_chest_1"))
	assert.False(t, s.IsChestOpened("town_chest_2"))
}

func TestState_SpellsAndItems(t *testing.T) {
	s := NewState()

	assert.False(t, s.HasSpell("fireball"))
	s.LearnSpell("fireball")
	assert.True(t, s.HasSpell("fireball"))

	assert.False(t, s.HasItem("rusty key"))
	s.AddItem("rusty key")
	assert.True(t, s.HasItem("rusty key"))
}

func TestState_Gold(t *testing.T) {
	s := NewState()

	s.AddGold(25)
	s.AddGold(10)
	assert.Equal(t, 35, s.Gold())
}

func TestState_HouseDoor(t *testing.T) {
	s := NewState()

	assert.True(t, s.IsHouseDoorLocked())
	s.UnlockHouseDoor()
	assert.False(t, s.IsHouseDoorLocked())
}

func TestState_FlagsAndChoices(t *testing.T) {
	s := NewState()

	assert.False(t, s.Flag("met_elder"))
	s.SetFlag("met_elder")
	assert.True(t, s.Flag("met_elder"))

	assert.Equal(t, "", s.Choice("class"))
	s.SetChoice("class", "ranger")
	assert.Equal(t, "ranger", s.Choice("class"))
	assert.Equal(t, "", s.Choice("strategy"))
}
