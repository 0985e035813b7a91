package ctcp

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the codec's single piece of configuration: the shared 32-bit
// key. It is JSON-tagged and persisted the way transports/obfs4's
// statefile.go persists its jsonServerState.
type Config struct {
	Key uint32 `json:"key"`
}

// DefaultConfig returns a Config using DefaultKey.
func DefaultConfig() Config {
	return Config{Key: DefaultKey}
}

// LoadConfig reads a Config from a JSON file at path. A missing file is not
// an error: DefaultConfig is returned instead, matching statefile.go's
// behavior of falling back to freshly generated state when none exists.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("ctcp: opening config %q: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("ctcp: parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as JSON, creating or truncating the file.
func SaveConfig(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ctcp: creating config %q: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("ctcp: writing config %q: %w", path, err)
	}
	return nil
}
