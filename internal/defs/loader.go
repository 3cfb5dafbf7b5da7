// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/mask"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidLevel is wrapped by every validation failure.
var ErrInvalidLevel = errors.New("invalid level")

//go:embed level.yaml
var defaultLevel []byte

// DefaultLevel returns the built-in level.
func DefaultLevel() (Level, error) {
	lvl, err := ParseLevel(defaultLevel)
	if err != nil {
		return Level{}, fmt.Errorf("built-in level: %w", err)
	}
	return lvl, nil
}

// LoadLevel reads a level file; an empty path selects the built-in level.
func LoadLevel(path string) (Level, error) {
	if path == "" {
		return DefaultLevel()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("failed to read level file: %w", err)
	}
	return ParseLevel(data)
}

// ParseLevel decodes and validates YAML level data. Sections missing from
// the file keep the classic layout.
func ParseLevel(data []byte) (Level, error) {
	lvl := Level{
		Formation: FormationDefinition{Width: config.FormationWidth, Top: config.FormationTop},
		Bunkers: BunkerDefinition{
			Count:        config.BunkerCount,
			BottomOffset: config.BunkerBottomOffset,
			Sprite:       mask.SpriteBunker,
		},
	}
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return Level{}, err
	}
	return lvl, nil
}

func (l Level) Validate() error {
	if l.Formation.Width <= 0 || l.Formation.Width > config.ScreenWidth {
		return fmt.Errorf("%w: formation width %v outside (0, %d]", ErrInvalidLevel, l.Formation.Width, config.ScreenWidth)
	}
	if l.Formation.Top < 0 {
		return fmt.Errorf("%w: formation top %v is negative", ErrInvalidLevel, l.Formation.Top)
	}
	if len(l.Rows) == 0 {
		return fmt.Errorf("%w: no rows", ErrInvalidLevel)
	}
	for i, row := range l.Rows {
		if row.Count <= 0 || row.HitPoints <= 0 {
			return fmt.Errorf("%w: row %d needs a positive count and hit points", ErrInvalidLevel, i)
		}
		if _, err := mask.Sprite(row.Sprite); err != nil {
			return fmt.Errorf("%w: row %d: %w", ErrInvalidLevel, i, err)
		}
		if row.Color < 0 || row.Color >= len(config.EnemyRowColors) {
			return fmt.Errorf("%w: row %d color index %d out of range", ErrInvalidLevel, i, row.Color)
		}
	}
	if l.Bunkers.Count < 0 {
		return fmt.Errorf("%w: negative bunker count", ErrInvalidLevel)
	}
	if l.Bunkers.Count > 0 {
		if _, err := mask.Sprite(l.Bunkers.Sprite); err != nil {
			return fmt.Errorf("%w: bunkers: %w", ErrInvalidLevel, err)
		}
	}
	return nil
}
