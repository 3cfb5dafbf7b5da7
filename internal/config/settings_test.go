package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("seed: 42\ndebug: true\nplayer_hit_points: 60\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", s.Seed)
	}
	if !s.Debug {
		t.Error("Expected debug to be enabled")
	}
	if s.PlayerHitPoints != 60 {
		t.Errorf("Expected player hit points 60, got %d", s.PlayerHitPoints)
	}
	if s.MissileSpeed != MissileSpeed {
		t.Errorf("Expected untouched missile speed %v, got %v", MissileSpeed, s.MissileSpeed)
	}
}

func TestLoadSettingsRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("max_slice: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSettings(path)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("Expected ErrInvalidSettings, got %v", err)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped os.ErrNotExist, got %v", err)
	}
}
