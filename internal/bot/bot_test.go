package bot

import (
	"slices"
	"testing"
	"time"

	"go-survivor/internal/app"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/input"
	"go-survivor/internal/utils"
)

func steady() *Controller {
	return &Controller{CloseRange: 80, MidRange: 160, StrafeSign: 1}
}

func enemyAt(x, y float64) *component.Enemy {
	return &component.Enemy{Position: component.Position{X: x, Y: y}, Size: 10}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		frame  app.Frame
		wantDX float64
		wantDY float64
	}{
		{
			name:  "nothing around",
			frame: app.Frame{},
		},
		{
			name:   "flee a close enemy",
			frame:  app.Frame{Enemies: []*component.Enemy{enemyAt(50, 0)}},
			wantDX: -1,
		},
		{
			name:   "strafe at mid range",
			frame:  app.Frame{Enemies: []*component.Enemy{enemyAt(120, 0)}},
			wantDY: 1,
		},
		{
			name: "collect jewels when enemies are far",
			frame: app.Frame{
				Enemies: []*component.Enemy{enemyAt(500, 0)},
				Jewels:  []*component.Jewel{{Position: component.Position{X: 0, Y: -40}, Size: 5}},
			},
			wantDY: -1,
		},
		{
			name:   "close in on a lone far enemy",
			frame:  app.Frame{Enemies: []*component.Enemy{enemyAt(-400, 0)}},
			wantDX: -1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := steady().Decide(tc.frame)
			if utils.Distance(a.DX, a.DY, tc.wantDX, tc.wantDY) > 1e-9 {
				t.Errorf("Decide = (%v, %v), want (%v, %v)", a.DX, a.DY, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		action Action
		want   []input.Key
	}{
		{Action{}, nil},
		{Action{DX: 1}, []input.Key{input.KeyRight}},
		{Action{DX: -0.7, DY: -0.7}, []input.Key{input.KeyUp, input.KeyLeft}},
		{Action{DX: 0.3, DY: 0.95}, []input.Key{input.KeyDown}},
	}
	for _, tc := range tests {
		if got := Keys(tc.action); !slices.Equal(got, tc.want) {
			t.Errorf("Keys(%+v) = %v, want %v", tc.action, got, tc.want)
		}
	}
}

func TestDriveReplacesHeldKeys(t *testing.T) {
	keys := input.NewKeySet()
	keys.Apply(input.Event{Key: input.KeyUp, Down: true})

	steady().Drive(keys, app.Frame{Enemies: []*component.Enemy{enemyAt(50, 0)}})
	if keys.Held(input.KeyUp) {
		t.Error("stale key still held")
	}
	if dx, dy := keys.Direction(); dx != -1 || dy != 0 {
		t.Errorf("direction = (%d, %d), want (-1, 0)", dx, dy)
	}
}

func TestNoiseKeepsUnitLength(t *testing.T) {
	c := NewController(utils.NewPRNGService(3))
	for i := 0; i < 100; i++ {
		a := c.Decide(app.Frame{Enemies: []*component.Enemy{enemyAt(30, 30)}})
		if l := utils.Distance(0, 0, a.DX, a.DY); l < 0.999 || l > 1.001 {
			t.Fatalf("action length %v", l)
		}
	}
}

func TestBotPlaysARun(t *testing.T) {
	g, err := app.NewGame(app.Options{Seed: 11})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	g.Start(now)
	c := NewController(utils.NewPRNGService(11))
	keys := input.NewKeySet()

	moved := false
	startX, startY := g.World.Player.X, g.World.Player.Y
	for i := 0; i < 3000 && !g.Over(); i++ {
		c.Drive(keys, g.Frame())
		now = now.Add(time.Second / config.TargetTPS)
		g.Tick(now, keys)
		if g.World.Player.X != startX || g.World.Player.Y != startY {
			moved = true
		}
	}
	if !moved {
		t.Fatal("bot never moved the player")
	}
	if g.Ticks() == 0 {
		t.Fatal("no ticks ran")
	}
}
