package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultTuningsAreValid(t *testing.T) {
	for name, tuning := range map[string]Tuning{
		"default":   DefaultTuning(),
		"streaming": StreamingTuning(),
	} {
		if err := tuning.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestDerivedRadii(t *testing.T) {
	tuning := DefaultTuning()
	if got := tuning.ActiveRadius(); got != 750 {
		t.Errorf("ActiveRadius = %v, want 750", got)
	}
	if got := tuning.DespawnRadius(); got != 1300 {
		t.Errorf("DespawnRadius = %v, want 1300", got)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
	}{
		{"zero chunk size", func(t *Tuning) { t.ChunkSize = 0 }},
		{"negative render distance", func(t *Tuning) { t.RenderDistance = -1 }},
		{"shrinking levels", func(t *Tuning) { t.LevelExpGrowth = 0.5 }},
		{"inverted spawn band", func(t *Tuning) { t.SpawnMinRadius, t.SpawnMaxRadius = 700, 600 }},
		{"no spawn cap", func(t *Tuning) { t.MaxEnemies = 0 }},
		{"negative acquisition", func(t *Tuning) { t.AcquisitionRadius = -5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tc.mutate(&tuning)
			if err := tuning.Validate(); !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("Validate = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestLoadTuningOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `{"render_distance": 2, "spawner_enabled": false, "enemies_per_chunk": 4}`)
	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tuning.RenderDistance != 2 || tuning.SpawnerEnabled || tuning.EnemiesPerChunk != 4 {
		t.Fatalf("overlay not applied: %+v", tuning)
	}
	if tuning.ChunkSize != DefaultTuning().ChunkSize {
		t.Fatalf("chunk size lost its default: %v", tuning.ChunkSize)
	}
}

func TestLoadTuningErrors(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := LoadTuning(writeFile(t, `{"chunk_size": `)); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := LoadTuning(writeFile(t, `{"chunk_size": -1}`)); !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("bad value: %v", err)
	}
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("SURVIVOR_TEST_KEY", "")
	if got := GetEnvDefault("SURVIVOR_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("unset = %q", got)
	}
	t.Setenv("SURVIVOR_TEST_KEY", ":9000")
	if got := GetEnvDefault("SURVIVOR_TEST_KEY", "fallback"); got != ":9000" {
		t.Errorf("set = %q", got)
	}
}

func TestPaletteColorWraps(t *testing.T) {
	if PaletteColor(len(PlayerPalette)).Name != PaletteColor(0).Name {
		t.Error("palette index did not wrap")
	}
	if PaletteColor(-1).Name != PaletteColor(len(PlayerPalette)-1).Name {
		t.Error("negative palette index did not wrap")
	}
}
