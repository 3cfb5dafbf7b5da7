// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the tunables a player may override from a YAML file.
// Zero-valued fields in the file keep their defaults.
type Settings struct {
	Seed                  int64   `yaml:"seed"`
	Debug                 bool    `yaml:"debug"`
	MaxSlice              float64 `yaml:"max_slice"`
	PlayerHitPoints       int     `yaml:"player_hit_points"`
	PlayerSpeed           float64 `yaml:"player_speed"`
	MissileSpeed          float64 `yaml:"missile_speed"`
	MissileHitPoints      int     `yaml:"missile_hit_points"`
	EnemyMissileHitPoints int     `yaml:"enemy_missile_hit_points"`
	FormationStartSpeed   float64 `yaml:"formation_start_speed"`
	FormationSpeedStep    float64 `yaml:"formation_speed_step"`
	FormationDropSpeed    float64 `yaml:"formation_drop_speed"`
	ShotProbability       float64 `yaml:"shot_probability"`
	ShotProbabilityStep   float64 `yaml:"shot_probability_step"`
	LevelPath             string  `yaml:"level"`
}

// DefaultSettings returns the classic tuning.
func DefaultSettings() Settings {
	return Settings{
		MaxSlice:              MaxSlice,
		PlayerHitPoints:       PlayerHitPoints,
		PlayerSpeed:           PlayerSpeed,
		MissileSpeed:          MissileSpeed,
		MissileHitPoints:      MissileHitPoints,
		EnemyMissileHitPoints: EnemyMissileHitPoints,
		FormationStartSpeed:   FormationStartSpeed,
		FormationSpeedStep:    FormationSpeedStep,
		FormationDropSpeed:    FormationDropSpeed,
		ShotProbability:       ShotProbability,
		ShotProbabilityStep:   ShotProbabilityStep,
	}
}

// LoadSettings reads a YAML file on top of DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.MaxSlice <= 0:
		return fmt.Errorf("%w: max_slice must be positive, got %v", ErrInvalidSettings, s.MaxSlice)
	case s.PlayerHitPoints <= 0:
		return fmt.Errorf("%w: player_hit_points must be positive, got %d", ErrInvalidSettings, s.PlayerHitPoints)
	case s.MissileHitPoints <= 0 || s.EnemyMissileHitPoints <= 0:
		return fmt.Errorf("%w: missile hit points must be positive", ErrInvalidSettings)
	case s.MissileSpeed <= 0:
		return fmt.Errorf("%w: missile_speed must be positive, got %v", ErrInvalidSettings, s.MissileSpeed)
	case s.ShotProbability < 0 || s.ShotProbabilityStep < 0:
		return fmt.Errorf("%w: shot probabilities cannot be negative", ErrInvalidSettings)
	}
	return nil
}
