package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultWeaponLibrary(t *testing.T) {
	lib := DefaultWeaponLibrary()
	if lib.Len() != len(DefaultWeapons) {
		t.Fatalf("Len = %d, want %d", lib.Len(), len(DefaultWeapons))
	}
	starting := lib.Starting()
	if len(starting) != 1 || starting[0].ID != "WEAPON_BASIC" {
		t.Fatalf("Starting = %+v", starting)
	}
	if got := lib.UnlockedAt(3); len(got) != 1 || got[0].ID != "WEAPON_SHOTGUN" {
		t.Fatalf("UnlockedAt(3) = %+v", got)
	}
	if got := lib.UnlockedAt(2); len(got) != 0 {
		t.Fatalf("UnlockedAt(2) = %+v", got)
	}
}

func TestLoadWeaponDefinitions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weapons.json")
	body := `[
		{"id": "PEA", "name": "Pea", "pattern": "BASIC", "attack_speed_ms": 250, "damage": 1, "bullet_size": 2, "bullet_speed": 9, "unlock_level": 1},
		{"id": "FAN", "name": "Fan", "pattern": "SHOTGUN", "attack_speed_ms": 900, "damage": 3, "bullet_size": 4, "bullet_speed": 6, "count": 7, "spread": 0.1, "unlock_level": 2}
	]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	lib, err := LoadWeaponDefinitions(path)
	if err != nil {
		t.Fatalf("LoadWeaponDefinitions: %v", err)
	}
	fan, ok := lib.Get("FAN")
	if !ok || fan.Count != 7 || fan.Pattern != PatternShotgun {
		t.Fatalf("FAN = %+v, %v", fan, ok)
	}
	if got := lib.UnlockedAt(2); len(got) != 1 || got[0].ID != "FAN" {
		t.Fatalf("UnlockedAt(2) = %+v", got)
	}
}

func TestNewWeaponLibraryRejects(t *testing.T) {
	good := DefaultWeapons[0]
	tests := []struct {
		name string
		defs []WeaponDefinition
		want error
	}{
		{"unknown pattern", []WeaponDefinition{{ID: "X", Pattern: "LASER", AttackSpeedMs: 1, BulletSize: 1, BulletSpeed: 1}}, ErrUnknownPattern},
		{"empty id", []WeaponDefinition{{Pattern: PatternBasic, AttackSpeedMs: 1, BulletSize: 1, BulletSpeed: 1}}, ErrInvalidWeapon},
		{"shotgun without count", []WeaponDefinition{{ID: "S", Pattern: PatternShotgun, AttackSpeedMs: 1, BulletSize: 1, BulletSpeed: 1}}, ErrInvalidWeapon},
		{"zero cooldown", []WeaponDefinition{{ID: "Z", Pattern: PatternBasic, BulletSize: 1, BulletSpeed: 1}}, ErrInvalidWeapon},
		{"duplicate", []WeaponDefinition{good, good}, ErrInvalidWeapon},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewWeaponLibrary(tc.defs); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoadWeaponDefinitionsBadFile(t *testing.T) {
	if _, err := LoadWeaponDefinitions(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
