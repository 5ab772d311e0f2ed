package system

import (
	"github.com/tidegate/emberwood/internal/domain/interact"
	"github.com/tidegate/emberwood/internal/domain/progress"
)

// VisibleInteractables filters a map's interactable set down to the
// ones currently active for the player. Gating payload fields are
// consulted here, upstream of Interact: an object with QuestRequired
// set is hidden until that flag is granted, and QuestMinimum hides it
// below that gold amount.
func VisibleInteractables(set []*interact.Interactable, gs progress.GameState) []*interact.Interactable {
	out := make([]*interact.Interactable, 0, len(set))
	for _, it := range set {
		if it.Payload.QuestRequired != "" && !gs.Flag(it.Payload.QuestRequired) {
			continue
		}
		if it.Payload.QuestMinimum > 0 && gs.Gold() < it.Payload.QuestMinimum {
			continue
		}
		out = append(out, it)
	}
	return out
}
