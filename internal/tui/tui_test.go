package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-survivor/internal/app"
	"go-survivor/internal/component"
	"go-survivor/internal/input"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestDrawWorldCentersPlayer(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)

	frame := app.Frame{
		Player:  component.Player{Position: component.Position{X: 1000, Y: -500}, Size: 15},
		Enemies: []*component.Enemy{{Position: component.Position{X: 1000 + 5*CellWidth, Y: -500}, Size: 20, Health: 5, MaxHealth: 5}},
	}
	r.DrawWorld(frame)

	if got := runeAt(screen, 40, 12); got != '@' {
		t.Fatalf("cell at the center = %q, want '@'", got)
	}
	if got := runeAt(screen, 45, 12); got != 'E' {
		t.Fatalf("cell right of the player = %q, want 'E'", got)
	}
}

func TestMenuHighlightsSelection(t *testing.T) {
	screen := newScreen(t)
	r := NewRenderer(screen)
	r.DrawStartScreen(1)

	_, h := screen.Size()
	var row strings.Builder
	for x := 0; x < 80; x++ {
		row.WriteRune(runeAt(screen, x, h/2+2))
	}
	if !strings.Contains(row.String(), "> Settings <") {
		t.Fatalf("settings row = %q", row.String())
	}
}

func TestHUDLine(t *testing.T) {
	screen := newScreen(t)
	h := &HUD{}
	h.SetHealth(80, 100)
	h.SetLevel(2)
	h.SetExp(120, 150)
	h.SetScore(35)

	h.Draw(screen)
	if runeAt(screen, 1, 0) == 'H' {
		t.Fatal("hidden HUD was drawn")
	}
	h.SetVisible(true)
	h.Draw(screen)
	if runeAt(screen, 1, 0) != 'H' || runeAt(screen, 2, 0) != 'P' {
		t.Fatal("visible HUD was not drawn")
	}
	if want := " HP 80/100  Lv 2  Exp 120/150  Score 35 "; h.Line() != want {
		t.Fatalf("Line = %q, want %q", h.Line(), want)
	}
}

func TestKeyHold(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	k := NewKeyHold()

	if ev := k.Press(input.KeyLeft, start); len(ev) != 1 || !ev[0].Down {
		t.Fatalf("first press = %v", ev)
	}
	if ev := k.Press(input.KeyLeft, start.Add(30*time.Millisecond)); ev != nil {
		t.Fatalf("repeat press = %v, want nothing", ev)
	}
	if ev := k.Expire(start.Add(HoldTimeout)); len(ev) != 0 {
		t.Fatalf("released too early: %v", ev)
	}
	ev := k.Expire(start.Add(30*time.Millisecond + HoldTimeout))
	if len(ev) != 1 || ev[0].Down || ev[0].Key != input.KeyLeft {
		t.Fatalf("expire = %v", ev)
	}

	if ev := k.Press(input.KeyEnter, start); len(ev) != 2 || !ev[0].Down || ev[1].Down {
		t.Fatalf("enter press = %v, want down then up", ev)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
		ok   bool
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.KeyUp, true},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.KeyEnter, true},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), input.KeyRight, true},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), input.KeyCopy, true},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), "", false},
	}
	for _, tt := range tests {
		got, ok := TranslateKey(tt.ev)
		if got != tt.want || ok != tt.ok {
			t.Errorf("TranslateKey(%v) = %q, %v; want %q, %v", tt.ev.Name(), got, ok, tt.want, tt.ok)
		}
	}
}
