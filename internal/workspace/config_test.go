package workspace

import "testing"

func TestParseSettings(t *testing.T) {
	settings := map[string]any{
		"robotLsp": map[string]any{
			"excludePatterns": []any{"**/output/**", "**/.cache/**"},
			"workers":         float64(4),
		},
		"editor": map[string]any{"tabSize": float64(4)},
	}

	cfg, err := ParseSettings(settings)
	if err != nil {
		t.Fatalf("ParseSettings returned error: %v", err)
	}
	if len(cfg.ExcludePatterns) != 2 || cfg.ExcludePatterns[0] != "**/output/**" {
		t.Errorf("ExcludePatterns = %v", cfg.ExcludePatterns)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestParseSettingsDefaults(t *testing.T) {
	tests := []struct {
		name     string
		settings any
	}{
		{name: "nil settings", settings: nil},
		{name: "missing section", settings: map[string]any{"editor": true}},
		{name: "empty section", settings: map[string]any{"robotLsp": map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseSettings(tt.settings)
			if err != nil {
				t.Fatalf("ParseSettings returned error: %v", err)
			}
			if len(cfg.ExcludePatterns) != 0 || cfg.Workers != 0 {
				t.Errorf("ParseSettings = %+v, want the zero configuration", cfg)
			}
		})
	}
}

func TestParseSettingsMalformed(t *testing.T) {
	if _, err := ParseSettings(map[string]any{"robotLsp": "fast"}); err == nil {
		t.Error("ParseSettings accepted a non-object section")
	}

	// A value that cannot be encoded at all
	if _, err := ParseSettings(map[string]any{"robotLsp": func() {}}); err == nil {
		t.Error("ParseSettings accepted an unencodable value")
	}
}
