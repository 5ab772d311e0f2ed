package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const townJSON = `{
	"id": "town",
	"name": "Emberwood Town",
	"size": {"width": 3, "height": 3, "tileSize": 32},
	"playerSpawn": {"x": 48, "y": 48},
	"layers": {
		"collision": {"1": {"1": 2}},
		"water": {"2": {"0": 1, "1": 2}}
	},
	"hazards": [
		{"kind": "lava", "x": 64, "y": 0, "width": 32, "height": 32, "damage": 10}
	],
	"objects": [
		{"kind": "chest", "x": 0, "y": 0, "width": 32, "height": 32, "chestId": "town_chest_1", "gold": 50},
		{"kind": "door", "x": 32, "y": 0, "width": 32, "height": 48, "destination": "caves", "spawnX": 16, "spawnY": 16}
	]
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/town.json":  {Data: []byte(townJSON)},
		"maps/caves.json": {Data: []byte(`{"id": "caves", "size": {"width": 2, "height": 2, "tileSize": 32}}`)},
		"maps/notes.txt":  {Data: []byte("not a map")},
	}
}

func TestLoader_LoadMap(t *testing.T) {
	loader := NewFSLoader(testFS(), "")

	bundle, err := loader.LoadMap("town")
	require.NoError(t, err)

	assert.Equal(t, "town", bundle.ID)
	assert.Equal(t, "Emberwood Town", bundle.Name)
	assert.Equal(t, 3, bundle.Size.Width)
	assert.Equal(t, 32, bundle.Size.TileSize)
	assert.Equal(t, 48, bundle.PlayerSpawn.X)

	assert.Equal(t, 2, bundle.Layers.Collision["1"]["1"])
	assert.Equal(t, 1, bundle.Layers.Water["2"]["0"])
	assert.Nil(t, bundle.Layers.Ground, "omitted layers stay nil")

	require.Len(t, bundle.Hazards, 1)
	assert.Equal(t, "lava", bundle.Hazards[0].Kind)
	assert.Equal(t, 10, bundle.Hazards[0].Damage)

	require.Len(t, bundle.Objects, 2)
	assert.Equal(t, "chest", bundle.Objects[0].Kind)
	assert.Equal(t, 50, bundle.Objects[0].Gold)
	assert.Equal(t, "caves", bundle.Objects[1].Destination)
}

func TestLoader_LoadMap_DefaultsIDToName(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/harbor.json": {Data: []byte(`{"size": {"width": 1, "height": 1, "tileSize": 32}}`)},
	}
	loader := NewFSLoader(fsys, "")

	bundle, err := loader.LoadMap("harbor")
	require.NoError(t, err)
	assert.Equal(t, "harbor", bundle.ID)
}

func TestLoader_LoadMap_Missing(t *testing.T) {
	loader := NewFSLoader(testFS(), "")

	_, err := loader.LoadMap("nowhere")
	assert.Error(t, err)
}

func TestLoader_LoadMap_Malformed(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/bad.json": {Data: []byte(`{"size": `)},
	}
	loader := NewFSLoader(fsys, "")

	_, err := loader.LoadMap("bad")
	assert.Error(t, err)
}

func TestLoader_LoadAllMaps(t *testing.T) {
	loader := NewFSLoader(testFS(), "")

	bundles, err := loader.LoadAllMaps()
	require.NoError(t, err)
	require.Len(t, bundles, 2, "non-json files are skipped")

	ids := []string{bundles[0].ID, bundles[1].ID}
	assert.Contains(t, ids, "town")
	assert.Contains(t, ids, "caves")
}

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, 320, settings.Window.Width)
	assert.Equal(t, "town", settings.Game.StartMap)
	assert.Equal(t, "info", settings.Logging.Level)
}

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 240, settings.Window.Height)
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("window:\n  width: 640\ngame:\n  start_map: caves\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, 640, settings.Window.Width)
	assert.Equal(t, 240, settings.Window.Height, "unset fields keep defaults")
	assert.Equal(t, "caves", settings.Game.StartMap)
	assert.Equal(t, "debug", settings.Logging.Level)
}
