package typograf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSettings(t *testing.T) {
	data := []byte("locale: ru\nrules:\n  ru/yo/basic: false\n  common/layout/orphan: true\n")

	settings, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("ParseSettings: %v", err)
	}
	if settings.Locale != "ru" {
		t.Fatalf("locale = %q", settings.Locale)
	}
	if enabled, ok := settings.Rules["ru/yo/basic"]; !ok || enabled {
		t.Fatalf("rules[ru/yo/basic] = %v, %v", enabled, ok)
	}
	if enabled := settings.Rules["common/layout/orphan"]; !enabled {
		t.Fatal("rules[common/layout/orphan] should be true")
	}
}

func TestParseSettingsInvalid(t *testing.T) {
	if _, err := ParseSettings([]byte("locale: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("locale: fr\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.Locale != "fr" {
		t.Fatalf("locale = %q", settings.Locale)
	}

	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected read error")
	}
}

func TestSettingsEnabledFallsBackToDefault(t *testing.T) {
	rule := Rule{ID: "x/special/demo", Enabled: true}

	if !(Settings{}).enabled(rule) {
		t.Fatal("absent override should use shipped default")
	}
	if (Settings{Rules: map[string]bool{"x/special/demo": false}}).enabled(rule) {
		t.Fatal("explicit false should win")
	}
	rule.Enabled = false
	if !(Settings{Rules: map[string]bool{"x/special/demo": true}}).enabled(rule) {
		t.Fatal("explicit true should win")
	}
}
