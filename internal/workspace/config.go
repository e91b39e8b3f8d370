package workspace

import (
	"encoding/json"
	"fmt"
)

// SettingsSection is the key the server's settings live under in the
// client's configuration.
const SettingsSection = "robotLsp"

// Config is the server's workspace configuration.
type Config struct {
	// ExcludePatterns are doublestar globs of paths workspace-wide
	// searches leave out, relative to each workspace folder.
	ExcludePatterns []string `json:"excludePatterns"`

	// Workers caps the number of pool workers behind background feature
	// work. Zero keeps the built-in default.
	Workers int `json:"workers"`
}

// ParseSettings extracts the server's section from a
// didChangeConfiguration settings value. A missing section yields the
// zero configuration.
func ParseSettings(settings any) (Config, error) {
	if settings == nil {
		return Config{}, nil
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return Config{}, fmt.Errorf("encode settings: %w", err)
	}
	var wrapper struct {
		Section Config `json:"robotLsp"`
	}
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return Config{}, fmt.Errorf("decode settings: %w", err)
	}
	return wrapper.Section, nil
}
