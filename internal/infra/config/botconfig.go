package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BotConfig is the reloadable configuration file. Change detection works on
// the fingerprint of the raw bytes, not on field-by-field diffs.
type BotConfig struct {
	Channels struct {
		Default string `yaml:"default"` // daily-ready broadcasts, feed announcements
		Log     string `yaml:"log"`     // operator error mirror
	} `yaml:"channels"`

	Daily struct {
		Time string `yaml:"time"` // "HH:MM", interpreted in UTC
	} `yaml:"daily"`

	PollIntervalSeconds int `yaml:"poll_interval_seconds"`

	Powerup struct {
		MinMinutes int `yaml:"min_minutes"`
		MaxMinutes int `yaml:"max_minutes"`
	} `yaml:"powerup"`

	Feed struct {
		Owner string `yaml:"owner"`
		Repo  string `yaml:"repo"`
	} `yaml:"feed"`

	Presence string `yaml:"presence"`
}

func (c *BotConfig) applyDefaults() {
	if c.Daily.Time == "" {
		c.Daily.Time = "09:00"
	}
	if c.PollIntervalSeconds <= 0 {
		c.PollIntervalSeconds = 120
	}
	if c.Powerup.MinMinutes <= 0 {
		c.Powerup.MinMinutes = 30
	}
	if c.Powerup.MaxMinutes < c.Powerup.MinMinutes {
		c.Powerup.MaxMinutes = c.Powerup.MinMinutes * 3
	}
}

func (c *BotConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

func parseBotConfig(b []byte) (*BotConfig, error) {
	var cfg BotConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func loadBotConfig(path string) (*BotConfig, string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parseBotConfig(b)
	if err != nil {
		return nil, "", err
	}
	return cfg, fingerprint(b), nil
}
