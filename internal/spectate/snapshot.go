// internal/spectate/snapshot.go
package spectate

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"go-survivor/internal/app"
	"go-survivor/internal/system"
)

// Screen names sent to spectators.
const (
	ScreenStart    = "start"
	ScreenSettings = "settings"
	ScreenLoading  = "loading"
	ScreenPlaying  = "playing"
	ScreenPaused   = "paused"
	ScreenConfirm  = "confirm"
	ScreenGameOver = "game_over"
)

// Entity is the wire form of anything round on the map.
type Entity struct {
	ID     uint64  `msgpack:"id"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Size   float64 `msgpack:"size"`
	Health float64 `msgpack:"health,omitempty"` // fraction, enemies only
}

type Effect struct {
	Kind   int     `msgpack:"kind"`
	X      float64 `msgpack:"x"`
	Y      float64 `msgpack:"y"`
	Radius float64 `msgpack:"radius"`
	Fade   float64 `msgpack:"fade"`
}

type Player struct {
	X          float64 `msgpack:"x"`
	Y          float64 `msgpack:"y"`
	Size       float64 `msgpack:"size"`
	AimAngle   float64 `msgpack:"aim"`
	ColorIndex int     `msgpack:"color"`
	Weapons    int     `msgpack:"weapons"`
}

type HUD struct {
	Visible   bool `msgpack:"visible"`
	Health    int  `msgpack:"health"`
	MaxHealth int  `msgpack:"max_health"`
	Level     int  `msgpack:"level"`
	Score     int  `msgpack:"score"`
	Exp       int  `msgpack:"exp"`
	Next      int  `msgpack:"next"`
}

// Snapshot is one frame as seen by spectators. Trees are left out: they
// follow a fixed pattern clients can reproduce.
type Snapshot struct {
	RunID    string          `msgpack:"run_id"`
	Step     uint64          `msgpack:"step"`
	Screen   string          `msgpack:"screen"`
	Selected int             `msgpack:"selected"`
	Progress float64         `msgpack:"progress,omitempty"`
	CameraX  float64         `msgpack:"camera_x"`
	CameraY  float64         `msgpack:"camera_y"`
	Player   *Player         `msgpack:"player,omitempty"`
	Enemies  []Entity        `msgpack:"enemies"`
	Jewels   []Entity        `msgpack:"jewels"`
	Bullets  []Entity        `msgpack:"bullets"`
	Effects  []Effect        `msgpack:"effects"`
	HUD      HUD             `msgpack:"hud"`
	Summary  *system.Summary `msgpack:"summary,omitempty"`
}

// Encode serializes the snapshot as msgpack.
func (s *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a msgpack snapshot.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &s, nil
}

// fillWorld copies the drawable parts of f into s.
func (s *Snapshot) fillWorld(f app.Frame) {
	s.CameraX, s.CameraY = f.CameraX, f.CameraY
	s.Player = &Player{
		X:          f.Player.X,
		Y:          f.Player.Y,
		Size:       f.Player.Size,
		AimAngle:   f.Player.AimAngle,
		ColorIndex: f.Player.ColorIndex,
		Weapons:    len(f.Player.Weapons),
	}
	s.Enemies = s.Enemies[:0]
	for _, e := range f.Enemies {
		s.Enemies = append(s.Enemies, Entity{ID: uint64(e.EntityID), X: e.X, Y: e.Y, Size: e.Size, Health: e.HealthFraction()})
	}
	s.Jewels = s.Jewels[:0]
	for _, j := range f.Jewels {
		s.Jewels = append(s.Jewels, Entity{ID: uint64(j.EntityID), X: j.X, Y: j.Y, Size: j.Size})
	}
	s.Bullets = s.Bullets[:0]
	for _, b := range f.Bullets {
		s.Bullets = append(s.Bullets, Entity{ID: uint64(b.EntityID), X: b.X, Y: b.Y, Size: b.Size})
	}
	s.Effects = s.Effects[:0]
	for _, e := range f.Effects {
		s.Effects = append(s.Effects, Effect{Kind: int(e.Kind), X: e.X, Y: e.Y, Radius: e.Radius, Fade: e.Fade()})
	}
}
