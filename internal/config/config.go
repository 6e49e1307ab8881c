package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SpecPath          string
	LibraryPath       string
	PlanOutput        string
	Width             int
	Height            int
	FPS               int
	Workers           int // 0 = по числу логических ядер
	TransitionSeconds float64
	TransitionID      string
	Preset            string
	Locale            string
	Seed              int64 // 0 = случайный
	LogLevel          string
	LogFile           string
	ShowStats         bool
	BuildVersion      string
}

// Canvas is a named output size
type Canvas struct {
	Width, Height int
}

// Presets are the three target canvases
var Presets = map[string]Canvas{
	"9:16": {1080, 1920},
	"1:1":  {1080, 1080},
	"16:9": {1920, 1080},
}

func Default() *Config {
	return &Config{
		LibraryPath:       "assets/library.yaml",
		Width:             1080,
		Height:            1920,
		FPS:               30,
		TransitionSeconds: 0.25,
		Preset:            "9:16",
		Locale:            "en",
		LogLevel:          "info",
		BuildVersion:      "dev",
	}
}

// ApplyPreset sets the canvas from a preset name; an empty name is a no-op.
func (c *Config) ApplyPreset(name string) error {
	if name == "" {
		return nil
	}
	canvas, ok := Presets[name]
	if !ok {
		return fmt.Errorf("неизвестный пресет %q (9:16, 1:1, 16:9)", name)
	}
	c.Preset = name
	c.Width, c.Height = canvas.Width, canvas.Height
	return nil
}

// FromEnv overlays ADREEL_* variables on cfg. The .env files (default
// ".env") are loaded first if present; they never override the real
// environment.
func FromEnv(cfg *Config, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("ошибка чтения .env: %w", err)
	}

	cfg.SpecPath = getEnv("ADREEL_SPEC", cfg.SpecPath)
	cfg.LibraryPath = getEnv("ADREEL_LIBRARY", cfg.LibraryPath)
	cfg.PlanOutput = getEnv("ADREEL_PLAN_OUTPUT", cfg.PlanOutput)
	cfg.TransitionID = getEnv("ADREEL_TRANSITION_ID", cfg.TransitionID)
	cfg.Locale = getEnv("ADREEL_LOCALE", cfg.Locale)
	cfg.LogLevel = getEnv("ADREEL_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFile = getEnv("ADREEL_LOG_FILE", cfg.LogFile)

	var errs []error
	cfg.Width = getEnvInt("ADREEL_WIDTH", cfg.Width, &errs)
	cfg.Height = getEnvInt("ADREEL_HEIGHT", cfg.Height, &errs)
	cfg.FPS = getEnvInt("ADREEL_FPS", cfg.FPS, &errs)
	cfg.Workers = getEnvInt("ADREEL_WORKERS", cfg.Workers, &errs)
	cfg.Seed = int64(getEnvInt("ADREEL_SEED", int(cfg.Seed), &errs))
	cfg.TransitionSeconds = getEnvFloat("ADREEL_TRANSITION", cfg.TransitionSeconds, &errs)

	if preset, ok := os.LookupEnv("ADREEL_PRESET"); ok {
		if err := cfg.ApplyPreset(preset); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("размер кадра должен быть > 0, получено %dx%d", c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps должен быть > 0, получено %d", c.FPS))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers не может быть отрицательным: %d", c.Workers))
	}
	if c.TransitionSeconds < 0 {
		errs = append(errs, fmt.Errorf("переход не может быть отрицательным: %v", c.TransitionSeconds))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvInt(key string, fallback int, errs *[]error) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64, errs *[]error) float64 {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return f
}
