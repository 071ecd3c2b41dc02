package difficulty

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Override holds optional per-preset tuning read from a config file.
// Nil fields keep the compiled value.
type Override struct {
	Gravity                []float64 `yaml:"gravity"`
	BallElasticity         *float64  `yaml:"ball_elasticity"`
	BallFriction           *float64  `yaml:"ball_friction"`
	FlipperElasticity      *float64  `yaml:"flipper_elasticity"`
	FlipperImpulse         *float64  `yaml:"flipper_impulse"`
	FlipperSpringStiffness *float64  `yaml:"flipper_spring_stiffness"`
	FlipperSpringDamping   *float64  `yaml:"flipper_spring_damping"`
	FlipperRestAngle       *float64  `yaml:"flipper_rest_angle"`
	BumperElasticity       *float64  `yaml:"bumper_elasticity"`
	BumperImpulse          *float64  `yaml:"bumper_impulse"`
	PlungerMaxPower        *float64  `yaml:"plunger_max_power"`
	PlungerChargeRate      *float64  `yaml:"plunger_charge_rate"`
	StartingBalls          *int      `yaml:"starting_balls"`
	BallSaverDuration      *float64  `yaml:"ball_saver_duration"`
	ScoreMultiplier        *float64  `yaml:"score_multiplier"`
}

type configFile struct {
	Presets map[string]Override `yaml:"presets"`
}

// Load reads preset overrides from path and merges them over the compiled
// presets. A missing file is not an error: the compiled presets are
// returned unchanged. A malformed file also returns the compiled presets,
// along with the parse error so the caller can log it.
func Load(path string) ([]Preset, error) {
	presets := Presets()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return presets, nil
		}
		return presets, err
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Presets(), err
	}

	for i := range presets {
		ov, ok := cfg.Presets[presets[i].Name]
		if !ok {
			continue
		}
		merge(&presets[i], ov)
	}
	return presets, nil
}

func merge(p *Preset, ov Override) {
	if len(ov.Gravity) == 2 {
		p.GravityX, p.GravityY = ov.Gravity[0], ov.Gravity[1]
	}
	setF(&p.BallElasticity, ov.BallElasticity)
	setF(&p.BallFriction, ov.BallFriction)
	setF(&p.FlipperElasticity, ov.FlipperElasticity)
	setF(&p.FlipperImpulse, ov.FlipperImpulse)
	setF(&p.FlipperSpringStiffness, ov.FlipperSpringStiffness)
	setF(&p.FlipperSpringDamping, ov.FlipperSpringDamping)
	setF(&p.FlipperRestAngle, ov.FlipperRestAngle)
	setF(&p.BumperElasticity, ov.BumperElasticity)
	setF(&p.BumperImpulse, ov.BumperImpulse)
	setF(&p.PlungerMaxPower, ov.PlungerMaxPower)
	setF(&p.PlungerChargeRate, ov.PlungerChargeRate)
	if ov.StartingBalls != nil {
		p.StartingBalls = *ov.StartingBalls
	}
	setF(&p.BallSaverDuration, ov.BallSaverDuration)
	setF(&p.ScoreMultiplier, ov.ScoreMultiplier)
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
