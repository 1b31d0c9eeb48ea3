package spectate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"

	"go-survivor/internal/app"
	"go-survivor/internal/system"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newGame(t *testing.T) *app.Game {
	t.Helper()
	g, err := app.NewGame(app.Options{Seed: 7})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	g.Start(epoch)
	return g
}

func dial(t *testing.T, hub *Hub) (*websocket.Conn, context.Context) {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.CloseNow() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn, ctx
}

func TestSnapshotEncodeDecode(t *testing.T) {
	g := newGame(t)
	feed := NewFeed(NewHub(), g.RunID)
	feed.SetHealth(80, 100)
	feed.SetLevel(3)
	feed.DrawWorld(g.Frame())

	snap := feed.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Screen != ScreenPlaying {
		t.Errorf("screen = %q, want %q", got.Screen, ScreenPlaying)
	}
	if got.HUD.Health != 80 || got.HUD.MaxHealth != 100 || got.HUD.Level != 3 {
		t.Errorf("hud = %+v", got.HUD)
	}
	if got.Player == nil || got.Player.Size != g.World.Player.Size {
		t.Errorf("player = %+v", got.Player)
	}
	if len(got.Jewels) != g.World.Jewels.Len() {
		t.Errorf("jewels = %d, want %d", len(got.Jewels), g.World.Jewels.Len())
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestFeedScreens(t *testing.T) {
	feed := NewFeed(NewHub(), newGame(t).RunID)

	feed.DrawStartScreen(1)
	if s := feed.Snapshot(); s.Screen != ScreenStart || s.Selected != 1 || s.Player != nil {
		t.Errorf("start = %+v", s)
	}
	feed.DrawLoading(0.4)
	if s := feed.Snapshot(); s.Screen != ScreenLoading || s.Progress != 0.4 {
		t.Errorf("loading = %+v", s)
	}
	feed.DrawConfirm(true)
	if s := feed.Snapshot(); s.Screen != ScreenConfirm || s.Selected != 1 {
		t.Errorf("confirm = %+v", s)
	}
	feed.DrawGameOver(system.Summary{Score: 42})
	if s := feed.Snapshot(); s.Screen != ScreenGameOver || s.Summary == nil || s.Summary.Score != 42 {
		t.Errorf("game over = %+v", s)
	}
}

func TestPublishWithoutClients(t *testing.T) {
	feed := NewFeed(NewHub(), newGame(t).RunID)
	if feed.Publish(epoch) {
		t.Fatal("published with nobody listening")
	}
}

func TestPublishReachesClient(t *testing.T) {
	g := newGame(t)
	hub := NewHub()
	conn, ctx := dial(t, hub)
	feed := NewFeed(hub, g.RunID)
	feed.DrawWorld(g.Frame())

	if !feed.Publish(epoch) {
		t.Fatal("first publish was dropped")
	}
	typ, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if typ != websocket.MessageBinary {
		t.Errorf("message type = %v, want binary", typ)
	}
	snap, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if snap.RunID == "" || snap.RunID != g.RunID() {
		t.Errorf("run id = %q, want %q", snap.RunID, g.RunID())
	}
	if snap.Step != 1 {
		t.Errorf("step = %d, want 1", snap.Step)
	}
}

func TestPublishThrottle(t *testing.T) {
	hub := NewHub()
	dial(t, hub)
	feed := NewFeed(hub, newGame(t).RunID)

	sent := 0
	now := epoch
	// 60 steps in one second.
	for i := 0; i < 60; i++ {
		if feed.Publish(now) {
			sent++
		}
		now = now.Add(time.Second / 60)
	}
	if sent > MaxRate {
		t.Fatalf("sent %d snapshots in a second, max %d", sent, MaxRate)
	}
	if sent < MaxRate/2 {
		t.Fatalf("sent only %d snapshots", sent)
	}
}

func TestClientRemovedOnDisconnect(t *testing.T) {
	hub := NewHub()
	conn, _ := dial(t, hub)
	conn.Close(websocket.StatusNormalClosure, "")

	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("client still registered after close")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
