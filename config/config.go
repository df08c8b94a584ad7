package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/stardrift/parameter"
)

// Settings are the runtime-tunable knobs; everything else is a parameter constant
type Settings struct {
	// TargetFPS is the frame cadence; motion is fixed per frame, so this
	// also sets perceived speed
	TargetFPS int `yaml:"target_fps"`

	// Stars is the starfield size, fixed after startup
	Stars int `yaml:"stars"`

	// Audio enables the ambient pad and event sounds
	Audio bool `yaml:"audio"`

	// Seed drives star placement; 0 means a fixed default layout
	Seed uint64 `yaml:"seed"`
}

// Default returns the settings used when no file is given
func Default() Settings {
	return Settings{
		TargetFPS: parameter.TargetFPSDefault,
		Stars:     parameter.StarCountDefault,
		Audio:     true,
		Seed:      0,
	}
}

// Load reads settings from a YAML file, with defaults for absent keys
// A missing file is not an error, the defaults apply as-is
func Load(path string) (Settings, error) {
	s := Default()

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects values the frame loop cannot run with
func (s Settings) Validate() error {
	if s.TargetFPS < 1 || s.TargetFPS > 240 {
		return fmt.Errorf("target_fps %d out of range 1..240", s.TargetFPS)
	}
	if s.Stars < 0 || s.Stars > 100000 {
		return fmt.Errorf("stars %d out of range 0..100000", s.Stars)
	}
	return nil
}
