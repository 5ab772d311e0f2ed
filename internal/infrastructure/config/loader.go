// Package config loads map bundles (JSON) and user settings (YAML).
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Loader loads map bundles from JSON files using the fs.FS interface,
// so tests can feed an in-memory filesystem.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a loader over an fs.FS.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadMap loads a map bundle JSON file from maps/<name>.json.
func (l *Loader) LoadMap(name string) (*MapBundle, error) {
	path := "maps/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	var bundle MapBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}

	if bundle.ID == "" {
		bundle.ID = name
	}
	return &bundle, nil
}

// LoadAllMaps loads every map bundle listed in maps/.
func (l *Loader) LoadAllMaps() ([]*MapBundle, error) {
	entries, err := fs.ReadDir(l.fsys, "maps")
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}

	var bundles []*MapBundle
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		bundle, err := l.LoadMap(strings.TrimSuffix(name, ".json"))
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}
