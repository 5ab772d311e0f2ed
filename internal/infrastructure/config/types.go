package config

// MapBundle is the root config for map JSON files. Every layer table is
// optional; an omitted layer is treated as fully empty.
type MapBundle struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Size        MapSizeConfig  `json:"size"`
	PlayerSpawn PositionConfig `json:"playerSpawn"`
	Layers      LayersConfig   `json:"layers"`
	Hazards     []HazardConfig `json:"hazards"`
	Objects     []ObjectConfig `json:"objects"`
}

type MapSizeConfig struct {
	Width    int `json:"width"`    // tiles
	Height   int `json:"height"`   // tiles
	TileSize int `json:"tileSize"` // pixels per tile edge
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LayerTable is a sparse column -> row -> tile-code table. JSON object
// keys are strings; the map builder parses them back to integers.
type LayerTable map[string]map[string]int

type LayersConfig struct {
	Ground      LayerTable `json:"ground"`
	Collision   LayerTable `json:"collision"`
	Roofs       LayerTable `json:"roofs"`
	Water       LayerTable `json:"water"`
	Decorations LayerTable `json:"decorations"`
}

// HazardConfig is a rectangular hazard zone (lava, spikes, ...).
type HazardConfig struct {
	Kind   string `json:"kind"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Damage int    `json:"damage,omitempty"`
}

// ObjectConfig places one interactable on the map. The payload fields
// used depend on the kind; unused fields stay at their zero value.
type ObjectConfig struct {
	Kind   string `json:"kind"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	ChestID           string `json:"chestId,omitempty"`
	ItemID            string `json:"itemId,omitempty"`
	Gold              int    `json:"gold,omitempty"`
	Contents          string `json:"contents,omitempty"`
	TriggersEnemyWave bool   `json:"triggersEnemyWave,omitempty"`

	Destination string `json:"destination,omitempty"`
	SpawnX      int    `json:"spawnX,omitempty"`
	SpawnY      int    `json:"spawnY,omitempty"`
	RequiresKey bool   `json:"requiresKey,omitempty"`

	Text         string `json:"text,omitempty"`
	SpellID      string `json:"spellId,omitempty"`
	TutorialText string `json:"tutorialText,omitempty"`
	ChoiceData   string `json:"choiceData,omitempty"`

	QuestRequired string `json:"questRequired,omitempty"`
	QuestMinimum  int    `json:"questMinimum,omitempty"`
}
