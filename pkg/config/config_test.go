package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"weekplan/pkg/planner"
)

func TestLoadWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg, styles, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file written: %v", err)
	}
	if cfg.StylesFile != filepath.Join(dir, "styles.json") {
		t.Fatalf("unexpected styles file %q", cfg.StylesFile)
	}
	if _, err := os.Stat(cfg.StylesFile); err != nil {
		t.Fatalf("expected styles file written: %v", err)
	}
	if cfg.StartView != "overview" || !cfg.ShowClock || cfg.ResultsDriver != "sqlite3" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ResultsDSN != filepath.Join(dir, "results.db") {
		t.Fatalf("unexpected results dsn %q", cfg.ResultsDSN)
	}
	if styles.AccentColor != "205" {
		t.Fatalf("unexpected accent color %q", styles.AccentColor)
	}
	if th := styles.Theme(planner.Monday); th.From != "#667eea" {
		t.Fatalf("unexpected monday theme %+v", th)
	}
}

func TestLoadReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	stylesPath := filepath.Join(dir, "custom-styles.json")

	configJSON := `{
  "styles_file": "` + filepath.ToSlash(stylesPath) + `",
  "start_view": "friday",
  "show_clock": false,
  "keymap": {"QuitApp": "x"}
}`
	stylesJSON := `{
  "accent_color": "33",
  "themes": {"monday": {"from": "#000000", "to": "#ffffff"}}
}`
	if err := os.WriteFile(path, []byte(configJSON), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(stylesPath, []byte(stylesJSON), 0644); err != nil {
		t.Fatalf("write styles: %v", err)
	}

	cfg, styles, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StartView != "friday" || cfg.ShowClock {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.KeyMap["quitapp"] != "x" {
		t.Fatalf("expected keymap override, got %v", cfg.KeyMap)
	}
	if cfg.ClockFormat == "" {
		t.Fatalf("expected clock format default to survive partial config")
	}
	if styles.AccentColor != "33" || styles.BorderColor != "240" {
		t.Fatalf("unexpected styles %+v", styles)
	}
	if th := styles.Theme(planner.Monday); th.From != "#000000" || th.To != "#ffffff" {
		t.Fatalf("unexpected monday theme %+v", th)
	}
	if th := styles.Theme(planner.Tuesday); th.From != "#f093fb" {
		t.Fatalf("expected tuesday to fall back to template theme, got %+v", th)
	}
}

func TestLoadRejectsUnknownStartView(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{"start_view": "funday"}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "funday") {
		t.Fatalf("expected start_view error, got %v", err)
	}
}
