package component

import (
	"math"
	"testing"
	"time"

	"go-survivor/internal/defs"
)

type fixedAngle float64

func (a fixedAngle) Angle() float64 { return float64(a) }

func TestWeaponFiresOnItsOwnSchedule(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	def := defs.WeaponDefinition{
		ID: "W", Name: "w", Pattern: defs.PatternBasic,
		AttackSpeedMs: 1000, Damage: 10, BulletSize: 5, BulletSpeed: 7, UnlockLevel: 1,
	}
	w, err := NewWeapon(def, start)
	if err != nil {
		t.Fatal(err)
	}

	volleys := 0
	step := time.Second / 120
	for now := start; now.Sub(start) <= 3500*time.Millisecond; now = now.Add(step) {
		if shots := w.Update(now, fixedAngle(0)); shots != nil {
			volleys++
		}
	}
	if volleys < 3 || volleys > 4 {
		t.Fatalf("fired %d volleys in 3500ms, want 3 or 4", volleys)
	}
}

func TestShotgunSpread(t *testing.T) {
	p := ShotgunPattern{Bullet: Shot{Size: 5, Speed: 7, Damage: 8}, Count: 5, Spread: 0.2}
	shots := p.Volley(fixedAngle(1))
	if len(shots) != 5 {
		t.Fatalf("volley size = %d", len(shots))
	}
	want := []float64{0.6, 0.8, 1, 1.2, 1.4}
	for i, s := range shots {
		if math.Abs(s.Angle-want[i]) > 1e-9 {
			t.Errorf("shot %d angle = %v, want %v", i, s.Angle, want[i])
		}
		if s.Damage != 8 {
			t.Errorf("shot %d damage = %d", i, s.Damage)
		}
	}
}

func TestNewWeaponRejectsUnknownPattern(t *testing.T) {
	_, err := NewWeapon(defs.WeaponDefinition{ID: "X", Pattern: "LASER"}, time.Time{})
	if err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
}
