package system

import (
	"math"
	"testing"
	"time"

	"go-survivor/internal/component"
	"go-survivor/internal/config"
)

var grunt = component.EnemyStats{Size: 20, Speed: 1, Health: 5, Attack: 10}

func TestNearestWithinAcquisitionRadius(t *testing.T) {
	f := newFixture(t, config.DefaultTuning())
	ts := NewTargetingSystem(f.world, f.tuning)

	f.addEnemy(t, 300, 0, grunt)
	if ts.Update() != nil {
		t.Fatal("acquired a target beyond the radius")
	}

	near := f.addEnemy(t, 0, -100, grunt)
	f.addEnemy(t, 0, 200, grunt)
	if got := ts.Update(); got != near {
		t.Fatalf("target = %v, want the nearest enemy", got)
	}
	if want := -math.Pi / 2; math.Abs(f.world.Player.AimAngle-want) > 1e-9 {
		t.Fatalf("aim = %v, want %v", f.world.Player.AimAngle, want)
	}
}

func TestUnboundedAcquisition(t *testing.T) {
	f := newFixture(t, config.StreamingTuning())
	ts := NewTargetingSystem(f.world, f.tuning)
	far := f.addEnemy(t, 5000, 5000, grunt)
	if ts.Update() != far {
		t.Fatal("unbounded targeting ignored a distant enemy")
	}
}

func TestAutoFireNeedsTargetAndCooldown(t *testing.T) {
	f := newFixture(t, config.DefaultTuning())
	ws := NewWeaponSystem(f.world, f.tuning, f.rng, f.events)

	if ws.AutoFire(epoch, nil) {
		t.Fatal("fired without a target")
	}
	target := f.addEnemy(t, 100, 0, grunt)
	if !ws.AutoFire(epoch, target) {
		t.Fatal("did not fire at a target")
	}
	if ws.AutoFire(epoch.Add(499*time.Millisecond), target) {
		t.Fatal("fired during cooldown")
	}
	if !ws.AutoFire(epoch.Add(500*time.Millisecond), target) {
		t.Fatal("did not fire after cooldown")
	}
	if f.world.Bullets.Len() != 2 {
		t.Fatalf("bullets = %d, want 2", f.world.Bullets.Len())
	}
	b := f.world.Bullets.Items()[0]
	if b.Size != 5 || b.Speed != 7 || b.Damage != 10 {
		t.Fatalf("auto-fire bullet = %+v", b)
	}
}

func TestUpdateWeaponsWithoutWeapons(t *testing.T) {
	f := newFixture(t, config.DefaultTuning())
	ws := NewWeaponSystem(f.world, f.tuning, f.rng, f.events)
	if n := ws.UpdateWeapons(epoch.Add(time.Hour)); n != 0 {
		t.Fatalf("fired %d bullets with no weapons", n)
	}
}
