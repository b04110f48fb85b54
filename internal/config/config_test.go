package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dt != 0.02 {
		t.Errorf("expected dt 0.02, got %f", cfg.Dt)
	}
	if cfg.MaxPoints != 500 {
		t.Errorf("expected 500 max points, got %d", cfg.MaxPoints)
	}
	if cfg.MaxTime != 10.0 {
		t.Errorf("expected 10s horizon, got %f", cfg.MaxTime)
	}
	if cfg.Initial.Position != 2.0 {
		t.Errorf("expected initial position 2.0, got %f", cfg.Initial.Position)
	}
	if err := cfg.Oscillator().Params.Validate(); err != nil {
		t.Errorf("default params should be valid: %v", err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spring.yaml")

	cfg := DefaultConfig()
	cfg.Params.Mass = 3.5
	cfg.Params.Damping = 1.2

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Params.Mass != 3.5 {
		t.Errorf("expected mass 3.5, got %f", loaded.Params.Mass)
	}
	if loaded.Params.Damping != 1.2 {
		t.Errorf("expected damping 1.2, got %f", loaded.Params.Damping)
	}
	// Fields absent from the file keep their defaults.
	if loaded.MaxPoints != 500 {
		t.Errorf("expected default max points, got %d", loaded.MaxPoints)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("undamped")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Damping != 0 {
		t.Errorf("expected zero damping, got %f", cfg.Params.Damping)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestGetPreset_Copies(t *testing.T) {
	a := GetPreset("heavy")
	a.Params.Mass = 99

	b := GetPreset("heavy")
	if b.Params.Mass == 99 {
		t.Error("presets must not share state with callers")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("preset names should be sorted")
		}
	}
}
