package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds the environment driven configuration for the studio.
type Config struct {
	// Storage
	DBPath      string `env:"ARTSTUDIO_DB_PATH" envDefault:"arts.sqlite"`
	SeedArtists bool   `env:"ARTSTUDIO_SEED_ARTISTS" envDefault:"true"`

	LogLevel string `env:"ARTSTUDIO_LOG_LEVEL" envDefault:"info"`

	// Window
	WindowWidth  int `env:"ARTSTUDIO_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int `env:"ARTSTUDIO_WINDOW_HEIGHT" envDefault:"800"`
	TargetFPS    int `env:"ARTSTUDIO_TARGET_FPS" envDefault:"60"`

	// Canvas
	CanvasWidth  int    `env:"ARTSTUDIO_CANVAS_WIDTH" envDefault:"600"`
	CanvasHeight int    `env:"ARTSTUDIO_CANVAS_HEIGHT" envDefault:"400"`
	SavePath     string `env:"ARTSTUDIO_SAVE_PATH" envDefault:"art.png"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load(files ...string) (*Config, error) {
	// A missing .env is fine; the process environment still applies.
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	cfg.SavePath = strings.TrimSpace(cfg.SavePath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DBPath == "" {
		return errors.New("ARTSTUDIO_DB_PATH must not be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.CanvasWidth, c.CanvasHeight)
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = 60
	}
	if c.SavePath == "" {
		c.SavePath = "art.png"
	}
	return nil
}
