// Package system builds runtime maps from bundles and manages which
// map is current.
package system

import (
	"strconv"

	"github.com/tidegate/emberwood/internal/domain/interact"
	"github.com/tidegate/emberwood/internal/domain/world"
	"github.com/tidegate/emberwood/internal/infrastructure/config"
)

// Map is one built map: the grid, its interactable set, and the default
// spawn point. Instances are static per map; switching maps changes
// which one is current.
type Map struct {
	ID            string
	Name          string
	Grid          *world.TileGrid
	Interactables []*interact.Interactable
	SpawnX        int
	SpawnY        int
}

// defaultTileSize backstops bundles with a missing or zero size block.
// Spatial queries and the renderer divide by the tile size.
const defaultTileSize = 32

// BuildMap converts a map bundle into a runtime Map. Malformed layer
// keys and unknown object kinds degrade to empty/furniture rather than
// failing the build.
func BuildMap(bundle *config.MapBundle) *Map {
	layers := map[string]world.LayerTable{
		world.LayerGround:      buildLayer(bundle.Layers.Ground),
		world.LayerCollision:   buildLayer(bundle.Layers.Collision),
		world.LayerRoofs:       buildLayer(bundle.Layers.Roofs),
		world.LayerWater:       buildLayer(bundle.Layers.Water),
		world.LayerDecorations: buildLayer(bundle.Layers.Decorations),
	}

	hazards := make([]world.HazardZone, 0, len(bundle.Hazards))
	for _, h := range bundle.Hazards {
		hazards = append(hazards, world.HazardZone{
			Kind:   h.Kind,
			X:      h.X,
			Y:      h.Y,
			Width:  h.Width,
			Height: h.Height,
			Damage: h.Damage,
		})
	}

	size := bundle.Size
	if size.TileSize <= 0 {
		size.TileSize = defaultTileSize
	}
	grid := world.NewTileGrid(size.Width, size.Height, size.TileSize, layers, hazards)

	interactables := make([]*interact.Interactable, 0, len(bundle.Objects))
	for _, obj := range bundle.Objects {
		interactables = append(interactables, buildObject(obj))
	}

	return &Map{
		ID:            bundle.ID,
		Name:          bundle.Name,
		Grid:          grid,
		Interactables: interactables,
		SpawnX:        bundle.PlayerSpawn.X,
		SpawnY:        bundle.PlayerSpawn.Y,
	}
}

// buildLayer converts a string-keyed bundle table into a sparse layer
// table. Keys that do not parse as integers are dropped.
func buildLayer(table config.LayerTable) world.LayerTable {
	if len(table) == 0 {
		return nil
	}
	out := make(world.LayerTable, len(table))
	for colKey, rows := range table {
		col, err := strconv.Atoi(colKey)
		if err != nil {
			continue
		}
		outRows := make(map[int]int, len(rows))
		for rowKey, code := range rows {
			row, err := strconv.Atoi(rowKey)
			if err != nil {
				continue
			}
			outRows[row] = code
		}
		if len(outRows) > 0 {
			out[col] = outRows
		}
	}
	return out
}

func buildObject(obj config.ObjectConfig) *interact.Interactable {
	payload := interact.Payload{
		ChestID:           obj.ChestID,
		ItemID:            obj.ItemID,
		GoldAmount:        obj.Gold,
		ContentsText:      obj.Contents,
		TriggersEnemyWave: obj.TriggersEnemyWave,
		Destination:       obj.Destination,
		SpawnX:            obj.SpawnX,
		SpawnY:            obj.SpawnY,
		RequiresKey:       obj.RequiresKey,
		Text:              obj.Text,
		SpellID:           obj.SpellID,
		TutorialText:      obj.TutorialText,
		ChoiceData:        obj.ChoiceData,
		QuestRequired:     obj.QuestRequired,
		QuestMinimum:      obj.QuestMinimum,
	}
	return interact.New(kindFromString(obj.Kind), obj.X, obj.Y, obj.Width, obj.Height, payload)
}

func kindFromString(kind string) interact.Kind {
	switch kind {
	case "chest":
		return interact.KindChest
	case "door":
		return interact.KindDoor
	case "npc_sign":
		return interact.KindNPCSign
	case "scroll":
		return interact.KindScroll
	case "cave_entrance":
		return interact.KindCaveEntrance
	case "portal":
		return interact.KindPortal
	case "class_icon":
		return interact.KindClassIcon
	case "strategy_icon":
		return interact.KindStrategyIcon
	case "ancient_path":
		return interact.KindAncientPath
	case "eastern_path":
		return interact.KindEasternPath
	default:
		return interact.KindFurniture
	}
}
