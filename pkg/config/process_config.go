package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ProcessConfig is the on-disk shape of the simulator's process config:
// currently just the serial port to open. Grounded on the reference
// source's Configuration dataclass.
type ProcessConfig struct {
	Port string `json:"port"`
}

// LoadProcessConfig reads and decodes a process config JSON file from path.
func LoadProcessConfig(path string) (*ProcessConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read process config %s: %w", path, err)
	}
	var cfg ProcessConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse process config %s: %w", path, err)
	}
	return &cfg, nil
}
