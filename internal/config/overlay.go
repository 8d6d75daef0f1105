// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LabelsFile is the optional labels.yml next to config.yml.
type LabelsFile struct {
	Locale string            `yaml:"locale"`
	Labels map[string]string `yaml:"labels"`
}

// OverlayLabels merges labels from labelsPath over cfg.Labels.
func OverlayLabels(cfg *Config, labelsPath string) error {
	b, err := os.ReadFile(labelsPath)
	if err != nil {
		// Missing labels file should not kill startup
		return nil
	}

	var lf LabelsFile
	if err := yaml.Unmarshal(b, &lf); err != nil {
		return err
	}

	if len(lf.Labels) == 0 {
		return nil
	}
	if cfg.Labels == nil {
		cfg.Labels = make(map[string]string, len(lf.Labels))
	}
	for k, v := range lf.Labels {
		cfg.Labels[k] = v
	}
	return nil
}
