package config

import (
	_ "embed"
)

//go:embed defaults/fireworks.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration, identical to the embedded YAML.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  160,
			Height: 60,
			FPS:    20,
		},
		Show: ShowConfig{
			MaxFireworks:    7,
			MinFireworkSize: 5,
			MaxFireworkSize: 15,
			SpawnMinMS:      100,
			SpawnMaxMS:      500,
		},
		Backend: "tea",
		History: HistoryConfig{
			DBPath: "~/.fireworks/history.db",
		},
	}
}
