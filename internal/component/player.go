// internal/component/player.go
package component

import (
	"time"

	"go-survivor/internal/config"
	"go-survivor/internal/utils"
)

// Player is the single controllable character.
type Player struct {
	Position
	Size      float64
	Speed     float64
	Health    int
	MaxHealth int

	Level        int
	Exp          int
	NextLevelExp int
	PrevLevelExp int

	Weapons      []*Weapon // append-only
	AimAngle     float64
	LastFireTime time.Time // zero until the first auto-fire shot
	ColorIndex   int       // cosmetic, kept across resets
}

// NewPlayer returns a fresh level-1 player at the origin.
func NewPlayer(t config.Tuning) *Player {
	return &Player{
		Size:         t.PlayerSize,
		Speed:        t.PlayerSpeed,
		Health:       t.PlayerMaxHealth,
		MaxHealth:    t.PlayerMaxHealth,
		Level:        1,
		NextLevelExp: t.FirstLevelExp,
	}
}

func (p *Player) Circle() utils.Circle {
	return utils.Circle{X: p.X, Y: p.Y, R: p.Size}
}

// TakeDamage lowers health. Health may go to zero or below; that is the
// game-over condition, not an error.
func (p *Player) TakeDamage(damage int) {
	p.Health -= damage
}

func (p *Player) Heal() {
	p.Health = p.MaxHealth
}

func (p *Player) Dead() bool {
	return p.Health <= 0
}

// ExpProgress returns how far the player is between the previous and next
// level thresholds, in [0, 1].
func (p *Player) ExpProgress() float64 {
	span := p.NextLevelExp - p.PrevLevelExp
	if span <= 0 {
		return 0
	}
	f := float64(p.Exp-p.PrevLevelExp) / float64(span)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
