package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SpeedRamp scales scroll speed with score: initial + score*increment,
// saturating at max.
type SpeedRamp struct {
	Initial   float64 `yaml:"initial"`
	Increment float64 `yaml:"increment"`
	Max       float64 `yaml:"max"`
}

// Speed returns the scroll speed for the given score. It is monotonic
// non-decreasing in score and never exceeds Max.
func (r SpeedRamp) Speed(score int) float64 {
	return min(r.Initial+float64(max(score, 0))*r.Increment, r.Max)
}

func (r SpeedRamp) validate() error {
	if r.Initial <= 0 {
		return fmt.Errorf("%w: initial speed must be positive", ErrInvalidConfig)
	}
	if r.Increment < 0 {
		return fmt.Errorf("%w: speed increment must not be negative", ErrInvalidConfig)
	}
	if r.Max < r.Initial {
		return fmt.Errorf("%w: max speed %v below initial %v", ErrInvalidConfig, r.Max, r.Initial)
	}
	return nil
}

// PresetTable maps difficulty presets to per-game parameters. Decoding YAML
// into a table merges each named preset field by field over the entry
// already present, so a file can retune one value of one preset.
type PresetTable[P any] map[DifficultyPreset]P

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *PresetTable[P]) UnmarshalYAML(n *yaml.Node) error {
	var raw map[DifficultyPreset]yaml.Node
	if err := n.Decode(&raw); err != nil {
		return err
	}
	if *t == nil {
		*t = PresetTable[P]{}
	}
	for d, node := range raw {
		p := (*t)[d]
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("preset %s: %w", d, err)
		}
		(*t)[d] = p
	}
	return nil
}
