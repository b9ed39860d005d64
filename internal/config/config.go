// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/matrix-rain/internal/effect"
	"github.com/Faultbox/matrix-rain/internal/surface"
	"github.com/Faultbox/matrix-rain/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Effect     EffectConfig       `yaml:"effect"`
	Classifier surface.Thresholds `yaml:"classifier"`
	Graphics   GraphicsConfig     `yaml:"graphics"`
	Logging    LoggingConfig      `yaml:"logging"`
}

// EffectConfig holds the rain effect tuning. Values are validated when
// the control driver builds the first frame, not at load time.
type EffectConfig struct {
	CharacterDensity float32    `yaml:"character_density"`
	FallSpeed        float32    `yaml:"fall_speed"`
	GlowIntensity    float32    `yaml:"glow_intensity"`
	BaseColor        [3]float32 `yaml:"base_color"`
	HighlightColor   [3]float32 `yaml:"highlight_color"`
	CharacterScale   float32    `yaml:"character_scale"`
	TrailLength      float32    `yaml:"trail_length"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. The effect
// section mirrors effect.DefaultSettings.
func Default() *Config {
	s := effect.DefaultSettings()
	return &Config{
		Effect: EffectConfig{
			CharacterDensity: s.CharacterDensity,
			FallSpeed:        s.FallSpeed,
			GlowIntensity:    s.GlowIntensity,
			BaseColor:        [3]float32{s.BaseColor.X, s.BaseColor.Y, s.BaseColor.Z},
			HighlightColor:   [3]float32{s.HighlightColor.X, s.HighlightColor.Y, s.HighlightColor.Z},
			CharacterScale:   s.CharacterScale,
			TrailLength:      s.TrailLength,
		},
		Classifier: surface.DefaultThresholds(),
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the effect section into driver settings. Per-frame
// fields (time, seed, surface) keep their zero defaults; the driver
// stamps them each frame.
func (e EffectConfig) Settings() effect.Settings {
	s := effect.DefaultSettings()
	s.CharacterDensity = e.CharacterDensity
	s.FallSpeed = e.FallSpeed
	s.GlowIntensity = e.GlowIntensity
	s.BaseColor = math.Vec3{X: e.BaseColor[0], Y: e.BaseColor[1], Z: e.BaseColor[2]}
	s.HighlightColor = math.Vec3{X: e.HighlightColor[0], Y: e.HighlightColor[1], Z: e.HighlightColor[2]}
	s.CharacterScale = e.CharacterScale
	s.TrailLength = e.TrailLength
	return s
}
