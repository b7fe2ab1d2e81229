package typograf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the externally owned configuration the engine reads. The
// zero value means "auto-detect locale, shipped rule defaults".
type Settings struct {
	// Locale selects a typography convention. Empty, "auto" or an
	// unrecognized value means detect from the text.
	Locale string `yaml:"locale"`
	// Rules holds sparse per-rule overrides keyed by rule id. Absent ids
	// fall back to the rule's shipped default; ids matching no rule have
	// no effect.
	Rules map[string]bool `yaml:"rules"`
}

// enabled resolves the effective state for a rule: explicit override wins,
// otherwise the shipped default.
func (s Settings) enabled(rule Rule) bool {
	if value, ok := s.Rules[rule.ID]; ok {
		return value
	}
	return rule.Enabled
}

// ParseSettings decodes YAML settings.
func ParseSettings(data []byte) (Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("typograf: parse settings: %w", err)
	}
	return settings, nil
}

// LoadSettings reads and decodes a YAML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("typograf: read %s: %w", path, err)
	}
	return ParseSettings(data)
}
