package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds user-facing game settings.
type Settings struct {
	Window  WindowSettings  `yaml:"window"`
	Audio   AudioSettings   `yaml:"audio"`
	Game    GameSettings    `yaml:"game"`
	Logging LoggingSettings `yaml:"logging"`
}

type WindowSettings struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"`
}

type AudioSettings struct {
	MasterVolume float64 `yaml:"master_volume"`
	Muted        bool    `yaml:"muted"`
}

type GameSettings struct {
	StartMap string `yaml:"start_map"`
}

type LoggingSettings struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:  320,
			Height: 240,
			Scale:  2,
		},
		Audio: AudioSettings{
			MasterVolume: 0.8,
		},
		Game: GameSettings{
			StartMap: "town",
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// LoadSettings loads settings with priority defaults < file. A missing
// file is not an error; the defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return settings, nil
}
