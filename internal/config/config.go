// engine/internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port" json:"port"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	History struct {
		PageSize int `yaml:"page_size" json:"page_size"`
	} `yaml:"history" json:"history"`

	Tracking struct {
		DefaultTab string `yaml:"default_tab" json:"default_tab"`
	} `yaml:"tracking" json:"tracking"`

	Catalog struct {
		SeedOnStart    bool `yaml:"seed_on_start" json:"seed_on_start"`
		RefreshSeconds int  `yaml:"refresh_seconds" json:"refresh_seconds"`
	} `yaml:"catalog" json:"catalog"`

	RateLimit struct {
		PerSecond float64 `yaml:"per_second" json:"per_second"`
		Burst     int     `yaml:"burst" json:"burst"`
	} `yaml:"rate_limit" json:"rate_limit"`

	// Labels swaps display labels, keyed by status value ("completed", ...)
	// or "all" for the all-status tab.
	Labels map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

func Default() Config {
	var cfg Config
	cfg.App.Port = 38472
	cfg.History.PageSize = 3
	cfg.Tracking.DefaultTab = "On the way"
	cfg.Catalog.SeedOnStart = true
	cfg.Catalog.RefreshSeconds = 300
	cfg.RateLimit.PerSecond = 20
	cfg.RateLimit.Burst = 40
	return cfg
}

// Load reads path over Default, so keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
