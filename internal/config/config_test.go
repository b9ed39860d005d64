package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/matrix-rain/internal/effect"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test effect defaults
	if cfg.Effect.CharacterDensity != 1.0 {
		t.Errorf("expected character density 1.0, got %f", cfg.Effect.CharacterDensity)
	}
	if cfg.Effect.FallSpeed != 1.0 {
		t.Errorf("expected fall speed 1.0, got %f", cfg.Effect.FallSpeed)
	}
	if cfg.Effect.TrailLength != 8.0 {
		t.Errorf("expected trail length 8.0, got %f", cfg.Effect.TrailLength)
	}
	if cfg.Effect.BaseColor != [3]float32{0, 1, 0.3} {
		t.Errorf("expected green base color, got %v", cfg.Effect.BaseColor)
	}

	// Test classifier defaults
	if cfg.Classifier.FloorMaxDeg != 30 {
		t.Errorf("expected floor cutoff 30, got %f", cfg.Classifier.FloorMaxDeg)
	}
	if cfg.Classifier.CeilingMinDeg != 150 {
		t.Errorf("expected ceiling cutoff 150, got %f", cfg.Classifier.CeilingMinDeg)
	}

	// Test graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestDefaultEffectSettingsValidate(t *testing.T) {
	// The shipped defaults must build a valid frame as-is.
	if _, err := effect.NewParams(Default().Effect.Settings()); err != nil {
		t.Errorf("default effect config should validate, got: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
effect:
  character_density: 2.5
  fall_speed: 0.8
  glow_intensity: 1.5
  base_color: [0.1, 0.9, 0.2]
  highlight_color: [0.8, 1.0, 0.9]
  character_scale: 1.2
  trail_length: 14.0

classifier:
  floor_max_deg: 25
  ceiling_min_deg: 155
  wall_band_deg: 20

graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

logging:
  level: "debug"
  log_file: "rain.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Effect.CharacterDensity != 2.5 {
		t.Errorf("expected character density 2.5, got %f", cfg.Effect.CharacterDensity)
	}
	if cfg.Effect.BaseColor != [3]float32{0.1, 0.9, 0.2} {
		t.Errorf("expected base color [0.1 0.9 0.2], got %v", cfg.Effect.BaseColor)
	}
	if cfg.Classifier.FloorMaxDeg != 25 {
		t.Errorf("expected floor cutoff 25, got %f", cfg.Classifier.FloorMaxDeg)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
effect:
  fall_speed: 2.0
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Effect.FallSpeed != 2.0 {
		t.Errorf("expected fall speed 2.0, got %f", cfg.Effect.FallSpeed)
	}
	// Untouched sections keep their defaults.
	if cfg.Effect.TrailLength != 8.0 {
		t.Errorf("expected trail length 8.0, got %f", cfg.Effect.TrailLength)
	}
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved", "config.yaml")

	cfg := Default()
	cfg.Effect.GlowIntensity = 0.5
	cfg.Graphics.Width = 800

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Effect.GlowIntensity != 0.5 {
		t.Errorf("expected glow 0.5 after round trip, got %f", loaded.Effect.GlowIntensity)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800 after round trip, got %d", loaded.Graphics.Width)
	}
}
