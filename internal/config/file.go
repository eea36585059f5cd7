// internal/config/file.go
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config — полная конфигурация приложения.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Trail  TrailConfig  `yaml:"trail"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig описывает поверхность, на которой рисуется след.
type WindowConfig struct {
	// Overlay: прозрачное окно поверх всех, не перехватывающее мышь.
	Overlay bool   `yaml:"overlay" env:"TRAIL_OVERLAY"`
	Width   int    `yaml:"width" env:"TRAIL_WIDTH"`
	Height  int    `yaml:"height" env:"TRAIL_HEIGHT"`
	TPS     int    `yaml:"tps" env:"TRAIL_TPS"`
	HUD     bool   `yaml:"hud" env:"TRAIL_HUD"`
	Title   string `yaml:"title" env:"TRAIL_TITLE"`
}

// TrailConfig — все настраиваемые параметры следа.
type TrailConfig struct {
	SpawnBatch     int     `yaml:"spawn_batch" env:"TRAIL_SPAWN_BATCH"`
	SpeedMin       float64 `yaml:"speed_min" env:"TRAIL_SPEED_MIN"`
	SpeedMax       float64 `yaml:"speed_max" env:"TRAIL_SPEED_MAX"`
	LifeMin        float64 `yaml:"life_min" env:"TRAIL_LIFE_MIN"`
	LifeMax        float64 `yaml:"life_max" env:"TRAIL_LIFE_MAX"`
	SizeMin        float64 `yaml:"size_min" env:"TRAIL_SIZE_MIN"`
	SizeMax        float64 `yaml:"size_max" env:"TRAIL_SIZE_MAX"`
	HueMin         float64 `yaml:"hue_min" env:"TRAIL_HUE_MIN"`
	HueMax         float64 `yaml:"hue_max" env:"TRAIL_HUE_MAX"`
	Attraction     float64 `yaml:"attraction" env:"TRAIL_ATTRACTION"`
	Damping        float64 `yaml:"damping" env:"TRAIL_DAMPING"`
	GlowFactor     float64 `yaml:"glow_factor" env:"TRAIL_GLOW_FACTOR"`
	GlowIntensity  float64 `yaml:"glow_intensity" env:"TRAIL_GLOW_INTENSITY"`
	MaxDeviceScale float64 `yaml:"max_device_scale" env:"TRAIL_MAX_DEVICE_SCALE"`
	Seed           int64   `yaml:"seed" env:"TRAIL_SEED"`
}

// LogConfig настраивает zap.
type LogConfig struct {
	Level string `yaml:"level" env:"TRAIL_LOG_LEVEL"`
}

// DefaultConfig возвращает конфигурацию, собранную из констант пакета.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Overlay: true,
			Width:   ScreenWidth,
			Height:  ScreenHeight,
			TPS:     TPS,
			Title:   "Ambient Trail",
		},
		Trail: DefaultTrail(),
		Log:   LogConfig{Level: "info"},
	}
}

// DefaultTrail возвращает параметры следа по умолчанию.
func DefaultTrail() TrailConfig {
	return TrailConfig{
		SpawnBatch:     SpawnBatch,
		SpeedMin:       SpeedMin,
		SpeedMax:       SpeedMax,
		LifeMin:        LifeMin,
		LifeMax:        LifeMax,
		SizeMin:        SizeMin,
		SizeMax:        SizeMax,
		HueMin:         HueMin,
		HueMax:         HueMax,
		Attraction:     Attraction,
		Damping:        Damping,
		GlowFactor:     GlowFactor,
		GlowIntensity:  GlowIntensity,
		MaxDeviceScale: MaxDeviceScale,
	}
}

// Load читает YAML поверх значений по умолчанию, затем применяет TRAIL_* из окружения.
// Пустой путь означает "только значения по умолчанию и окружение".
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save записывает конфигурацию в YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate проверяет всю конфигурацию.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window config: size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid window config: tps %d", c.Window.TPS)
	}
	if err := c.Trail.Validate(); err != nil {
		return fmt.Errorf("invalid trail config: %w", err)
	}
	return nil
}

// Validate проверяет диапазоны следа. Пустой диапазон (min == max) допустим.
func (t TrailConfig) Validate() error {
	var errs []error
	// NaN и ±Inf проходят любые сравнения ниже, отсекаем их сразу
	finite := []struct {
		name string
		v    float64
	}{
		{"speed_min", t.SpeedMin}, {"speed_max", t.SpeedMax},
		{"life_min", t.LifeMin}, {"life_max", t.LifeMax},
		{"size_min", t.SizeMin}, {"size_max", t.SizeMax},
		{"hue_min", t.HueMin}, {"hue_max", t.HueMax},
		{"attraction", t.Attraction},
		{"damping", t.Damping},
		{"glow_factor", t.GlowFactor},
		{"glow_intensity", t.GlowIntensity},
		{"max_device_scale", t.MaxDeviceScale},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%s must be finite, got %v", f.name, f.v))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if t.SpawnBatch <= 0 {
		errs = append(errs, fmt.Errorf("spawn_batch must be positive, got %d", t.SpawnBatch))
	}
	ranges := []struct {
		name     string
		min, max float64
	}{
		{"speed", t.SpeedMin, t.SpeedMax},
		{"life", t.LifeMin, t.LifeMax},
		{"size", t.SizeMin, t.SizeMax},
		{"hue", t.HueMin, t.HueMax},
	}
	for _, r := range ranges {
		if r.min > r.max {
			errs = append(errs, fmt.Errorf("%s_min %.3f exceeds %s_max %.3f", r.name, r.min, r.name, r.max))
		}
	}
	if t.SpeedMin < 0 {
		errs = append(errs, fmt.Errorf("speed_min must not be negative"))
	}
	if t.LifeMin < 1 {
		errs = append(errs, fmt.Errorf("life_min must be at least one tick, got %.3f", t.LifeMin))
	}
	if t.SizeMin <= 0 {
		errs = append(errs, fmt.Errorf("size_min must be positive"))
	}
	if t.Damping <= 0 || t.Damping >= 1 {
		errs = append(errs, fmt.Errorf("damping must be in (0, 1), got %.3f", t.Damping))
	}
	if t.Attraction < 0 {
		errs = append(errs, fmt.Errorf("attraction must not be negative"))
	}
	if t.GlowFactor <= 0 {
		errs = append(errs, fmt.Errorf("glow_factor must be positive"))
	}
	if t.GlowIntensity < 0 || t.GlowIntensity > 1 {
		errs = append(errs, fmt.Errorf("glow_intensity must be in [0, 1], got %.3f", t.GlowIntensity))
	}
	if t.MaxDeviceScale < 1 {
		errs = append(errs, fmt.Errorf("max_device_scale must be at least 1"))
	}
	return errors.Join(errs...)
}
